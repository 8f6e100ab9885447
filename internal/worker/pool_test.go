package worker

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/lgbarn/chessmoves-go/internal/config"
	"github.com/lgbarn/chessmoves-go/internal/engine"
	"github.com/lgbarn/chessmoves-go/internal/testutil"
)

// writeScripts writes one script file per entry and returns their paths.
func writeScripts(t *testing.T, scripts ...string) []string {
	t.Helper()
	dir := t.TempDir()
	var paths []string
	for i, text := range scripts {
		path := filepath.Join(dir, "script"+string(rune('a'+i))+".moves")
		if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}
	return paths
}

// runAll submits one item per path and returns the results in Index order.
func runAll(t *testing.T, pool *Pool, paths []string) []ProcessResult {
	t.Helper()
	pool.Start()
	go func() {
		for i, path := range paths {
			pool.Submit(WorkItem{Path: path, Index: i})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, len(paths))
	seen := make([]bool, len(paths))
	for r := range pool.Results() {
		if seen[r.Index] {
			t.Fatalf("duplicate result for item %d", r.Index)
		}
		seen[r.Index] = true
		results[r.Index] = r
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("no result for item %d (%s)", i, paths[i])
		}
	}
	return results
}

func TestNewPool_Options(t *testing.T) {
	process := func(item WorkItem) ProcessResult { return ProcessResult{Index: item.Index} }

	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
		wantStop    bool
	}{
		{"defaults", nil, 1, 10, false},
		{"set", []PoolOption{WithWorkers(8), WithBufferSize(100), WithStopOnError(true)}, 8, 100, true},
		{"invalid sizes ignored", []PoolOption{WithWorkers(0), WithBufferSize(-5)}, 1, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(process, tt.opts...)
			testutil.AssertEqual(t, pool.Workers(), tt.wantWorkers)
			testutil.AssertEqual(t, cap(pool.items), tt.wantBuffer)
			testutil.AssertEqual(t, pool.stopOnError, tt.wantStop)
		})
	}
}

// TestPool_EveryItemOnce runs many items on several workers; run with -race.
func TestPool_EveryItemOnce(t *testing.T) {
	var calls int32
	process := func(item WorkItem) ProcessResult {
		atomic.AddInt32(&calls, 1)
		return ProcessResult{Path: item.Path, Index: item.Index}
	}

	paths := make([]string, 100)
	for i := range paths {
		paths[i] = "game.moves"
	}
	results := runAll(t, NewPool(process, WithWorkers(8), WithBufferSize(16)), paths)

	testutil.AssertEqual(t, int(atomic.LoadInt32(&calls)), len(paths))
	for i, r := range results {
		if r.Index != i || r.Skipped {
			t.Errorf("result %d = %+v", i, r)
		}
	}
}

func TestPool_StopOnError(t *testing.T) {
	errBad := errors.New("bad script")
	process := func(item WorkItem) ProcessResult {
		r := ProcessResult{Path: item.Path, Index: item.Index}
		if item.Path == "bad.moves" {
			r.Error = errBad
		}
		return r
	}
	paths := []string{"good.moves", "bad.moves", "good.moves", "good.moves"}

	t.Run("later items skipped", func(t *testing.T) {
		results := runAll(t, NewPool(process, WithStopOnError(true)), paths)

		testutil.AssertFalse(t, results[0].Skipped, "item before the failure should run")
		testutil.AssertErrorIs(t, results[1].Error, errBad)
		for _, r := range results[2:] {
			testutil.AssertTrue(t, r.Skipped, "item after the failure should be skipped")
			testutil.AssertEqual(t, r.Path, "good.moves")
		}
	})

	t.Run("off by default", func(t *testing.T) {
		results := runAll(t, NewPool(process), paths)
		for _, r := range results {
			testutil.AssertFalse(t, r.Skipped, "no item should be skipped")
		}
	})
}

// TestScriptProcessor runs real scripts through the pool and checks that
// every result carries its own position and output.
func TestScriptProcessor(t *testing.T) {
	paths := writeScripts(t,
		"e2e4\ne7e5\nboard\n",
		"d2d4\nd7d5\nc2c4\nboard\n",
		"g1f3\nshow f3\n",
		"e2e5\n", // rejected
	)

	var log bytes.Buffer
	cfg := config.NewConfigBuilder().WithLog(&log).WithVerbosity(config.Commentary).Build()
	results := runAll(t, NewPool(ScriptProcessor(cfg), WithWorkers(3), WithBufferSize(len(paths))), paths)

	for _, r := range results {
		if r.Error != nil {
			t.Errorf("%s: %v", r.Path, r.Error)
		}
	}

	wantFEN := []string{
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		"rnbqkbnr/ppp1pppp/8/3p4/2PP4/8/PP2PPPP/RNBQKBNR b KQkq c3 0 2",
		"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		engine.InitialFEN,
	}
	for i, r := range results {
		if got := engine.PositionToFEN(r.Summary.Final); got != wantFEN[i] {
			t.Errorf("script %d final FEN = %q; want %q", i, got, wantFEN[i])
		}
	}

	if results[3].Summary.Rejected != 1 || len(results[3].Output) != 0 {
		t.Errorf("rejected script: summary %+v, output %q", results[3].Summary, results[3].Output)
	}
	if !strings.HasSuffix(string(results[0].Output), "White to move\n") {
		t.Errorf("script 0 output = %q", results[0].Output)
	}
	if !strings.Contains(string(results[2].Output), "*") {
		t.Errorf("show output should mark destinations, got %q", results[2].Output)
	}
}

// TestScriptProcessor_Strict stops the run at the first rejected move.
func TestScriptProcessor_Strict(t *testing.T) {
	paths := writeScripts(t,
		"e7e5\nboard\n", // black piece moved with White to move
		"e2e4\nboard\n",
	)

	cfg := config.NewConfigBuilder().WithVerbosity(config.Quiet).StopOnReject(true).Build()
	results := runAll(t, NewPool(ScriptProcessor(cfg), WithStopOnError(cfg.Run.StopOnReject)), paths)

	if results[0].Error == nil {
		t.Error("strict script with a rejected move should fail")
	}
	testutil.AssertEqual(t, len(results[0].Output), 0)
	testutil.AssertTrue(t, results[1].Skipped, "script after a strict failure should be skipped")
	testutil.AssertEqual(t, len(results[1].Output), 0)
}

// TestScriptProcessor_MissingFile reports open failures per item.
func TestScriptProcessor_MissingFile(t *testing.T) {
	cfg := config.NewConfigBuilder().WithVerbosity(config.Quiet).Build()
	process := ScriptProcessor(cfg)

	r := process(WorkItem{Path: filepath.Join(t.TempDir(), "missing.moves"), Index: 7})
	if r.Error == nil {
		t.Error("missing script should report an error")
	}
	if r.Index != 7 {
		t.Errorf("Index = %d; want 7", r.Index)
	}
}
