package script

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/inhies/go-bytesize"
	"github.com/klauspost/compress/zstd"

	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// Format is the container a script file is stored in.
type Format int

const (
	Plain Format = iota
	Bzip2
	Zstd
)

func (f Format) String() string {
	switch f {
	case Bzip2:
		return "bzip2"
	case Zstd:
		return "zstd"
	default:
		return "plain"
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bz2":
		return Bzip2
	case ".zst", ".zstd":
		return Zstd
	default:
		return Plain
	}
}

// countingReader keeps track of the bytes read through it.
type countingReader struct {
	reader    io.Reader
	bytesRead bytesize.ByteSize
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.reader.Read(p)
	cr.bytesRead += bytesize.ByteSize(n)
	return n, err
}

// Source is a decompressing reader over one script.
type Source struct {
	format Format
	input  *countingReader // compressed bytes
	output *countingReader // script text
	size   bytesize.ByteSize
	close  []func() error
}

// Open opens a script file, choosing the decompressor from its extension.
func Open(path string) (*Source, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, errors.Wrap(err, "opening script")
	}
	stat, err := file.Stat()
	if err != nil {
		file.Close() //nolint:errcheck,gosec // G104: cleanup on error
		return nil, errors.Wrap(err, "opening script")
	}

	src, err := NewSource(file, FormatFromPath(path))
	if err != nil {
		file.Close() //nolint:errcheck,gosec // G104: cleanup on error
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	src.size = bytesize.ByteSize(stat.Size())
	src.close = append(src.close, file.Close)
	return src, nil
}

// NewSource wraps r in the decompressor for format. The caller keeps
// ownership of r.
func NewSource(r io.Reader, format Format) (*Source, error) {
	s := &Source{
		format: format,
		input:  &countingReader{reader: r},
	}

	var text io.Reader
	switch format {
	case Bzip2:
		bz, err := bzip2.NewReader(s.input, nil)
		if err != nil {
			return nil, err
		}
		text = bz
		s.close = append(s.close, bz.Close)
	case Zstd:
		dec, err := zstd.NewReader(s.input)
		if err != nil {
			return nil, err
		}
		text = dec
		s.close = append(s.close, func() error {
			dec.Close()
			return nil
		})
	default:
		text = s.input
	}
	s.output = &countingReader{reader: text}
	return s, nil
}

// Read reads decompressed script text.
func (s *Source) Read(p []byte) (int, error) {
	return s.output.Read(p)
}

// Format returns the container format.
func (s *Source) Format() Format {
	return s.format
}

// Size returns the stored size of the file, or 0 when it is not a file.
func (s *Source) Size() bytesize.ByteSize {
	return s.size
}

// BytesRead returns the amount of script text read so far.
func (s *Source) BytesRead() bytesize.ByteSize {
	return s.output.bytesRead
}

// CompressedRead returns the amount of stored data consumed so far.
func (s *Source) CompressedRead() bytesize.ByteSize {
	return s.input.bytesRead
}

// Close releases the decompressor and then the underlying file.
func (s *Source) Close() error {
	var first error
	for _, fn := range s.close {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}
	s.close = nil
	return first
}
