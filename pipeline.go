// Package typf is a backend-agnostic text rendering engine: a Unicode
// string plus a font selection goes in, a pixel buffer (or vector path
// list) comes out, through a strict Segmenter -> Shaper -> Rasterizer
// pipeline (see SPEC_FULL.md §1-2 for the full contract).
//
// Library code never writes to stdout/stderr on its own; a Backend
// identifies itself through Name.
package typf

import (
	"context"
	"sync"
)

// Backend is a polymorphic unit over the capability set {segment,
// shape, render, name, clear_cache} (spec.md §4.1). Every variant
// {orge, null, coretext, directwrite, ...} implements this same
// interface; Go has no sealed enum, so the *registry* (registry.go),
// not the interface, is the closed part of this design.
type Backend interface {
	// Name identifies the backend, e.g. "orge", "coretext".
	Name() string

	// Segment partitions text into TextRuns (spec.md §4.3). Invalid
	// UTF-8 input is rejected with InvalidInput.
	Segment(text string, lang string, base Direction) ([]TextRun, error)

	// Shape maps a TextRun plus Font to a ShapingResult (spec.md §4.4).
	Shape(run TextRun, font *Font) (*ShapingResult, error)

	// Render rasterizes or vectorizes a ShapingResult per opts
	// (spec.md §4.1, §6).
	Render(shaped *ShapingResult, opts RenderOptions) (RenderOutput, error)

	// RenderText fuses Segment+Shape+Render for the common single-run
	// case; it MAY skip materializing intermediate ShapingResults but
	// MUST still honor opts (spec.md §4.1 "fast path").
	RenderText(text string, font *Font, opts RenderOptions) (RenderOutput, error)

	// ClearCache drains this backend's caches synchronously;
	// in-flight computes complete normally but are not inserted
	// (spec.md §4.5 "clear_cache()").
	ClearCache()
}

// BatchItem is one unit of work for RenderBatch.
type BatchItem struct {
	Text    string
	Font    *Font
	Options RenderOptions
}

// BatchResult pairs a BatchItem's output (or error) with its original
// index, since results may complete out of submission order.
type BatchResult struct {
	Index  int
	Output RenderOutput
	Err    error
}

// RenderBatch fans N independent RenderText calls out over a fixed
// worker pool (spec.md §5 "N independent render calls may execute on N
// worker threads from a shared pool, each holding a reference to the
// same caches and font database"). All workers share the same backend,
// so they share its caches by construction. workers <= 0 defaults to
// one worker per item (bounded to len(items)). Cancelling ctx stops
// dispatching new items but does not abort an item already rendering,
// matching spec.md §5 "the caller may abandon a render ... the
// underlying computation will complete (no forced abort)".
func RenderBatch(ctx context.Context, backend Backend, items []BatchItem, workers int) []BatchResult {
	results := make([]BatchResult, len(items))
	if len(items) == 0 {
		return results
	}
	if workers <= 0 || workers > len(items) {
		workers = len(items)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				item := items[idx]
				out, err := backend.RenderText(item.Text, item.Font, item.Options)
				results[idx] = BatchResult{Index: idx, Output: out, Err: err}
			}
		}()
	}

	for i := range items {
		select {
		case <-ctx.Done():
			results[i] = BatchResult{Index: i, Err: newError(InvalidInput, "batch render cancelled before dispatch", ctx.Err())}
			continue
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	return results
}
