package worker

import (
	"bytes"

	"github.com/lgbarn/chessmoves-go/internal/config"
	"github.com/lgbarn/chessmoves-go/internal/output"
	"github.com/lgbarn/chessmoves-go/internal/script"
)

// ScriptProcessor returns a ProcessFunc that runs the script named by each
// item. Output is buffered per item so that concurrent scripts never
// interleave on cfg.OutputFile.
func ScriptProcessor(cfg *config.Config) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		var buf bytes.Buffer
		writer := output.NewWriter(&buf, cfg)
		sum, err := script.NewRunner(writer, cfg).RunFile(item.Path)
		if closeErr := writer.Close(); err == nil {
			err = closeErr
		}
		return ProcessResult{
			Path:    item.Path,
			Index:   item.Index,
			Summary: sum,
			Output:  buf.Bytes(),
			Error:   err,
		}
	}
}
