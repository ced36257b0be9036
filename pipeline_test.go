package typf

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
)

// fakeBackend is a minimal Backend stub for RenderBatch tests: no real
// shaping or rasterization, just enough to exercise the fan-out and
// error paths.
type fakeBackend struct {
	calls atomic.Int64
	fail  map[string]bool
}

func (f *fakeBackend) Name() string { return "fake" }
func (f *fakeBackend) Segment(text string, lang string, base Direction) ([]TextRun, error) {
	return []TextRun{{Text: text, Direction: base}}, nil
}
func (f *fakeBackend) Shape(run TextRun, font *Font) (*ShapingResult, error) {
	return &ShapingResult{Text: run.Text, Font: font}, nil
}
func (f *fakeBackend) Render(shaped *ShapingResult, opts RenderOptions) (RenderOutput, error) {
	return newBitmapOutput(&Bitmap{Width: 1, Height: 1}), nil
}
func (f *fakeBackend) RenderText(text string, font *Font, opts RenderOptions) (RenderOutput, error) {
	f.calls.Add(1)
	if f.fail[text] {
		return RenderOutput{}, fmt.Errorf("fake failure for %q", text)
	}
	return newBitmapOutput(&Bitmap{Width: 1, Height: 1}), nil
}
func (f *fakeBackend) ClearCache() {}

func TestRenderBatchRunsEveryItem(t *testing.T) {
	backend := &fakeBackend{}
	items := []BatchItem{
		{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"},
	}

	results := RenderBatch(context.Background(), backend, items, 2)
	if len(results) != len(items) {
		t.Fatalf("got %d results, want %d", len(results), len(items))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d has Index %d", i, r.Index)
		}
		if r.Err != nil {
			t.Errorf("result %d: unexpected error %v", i, r.Err)
		}
		if _, ok := r.Output.Bitmap(); !ok {
			t.Errorf("result %d: expected a bitmap output", i)
		}
	}
	if backend.calls.Load() != int64(len(items)) {
		t.Errorf("RenderText called %d times, want %d", backend.calls.Load(), len(items))
	}
}

func TestRenderBatchPropagatesPerItemErrors(t *testing.T) {
	backend := &fakeBackend{fail: map[string]bool{"bad": true}}
	items := []BatchItem{{Text: "good"}, {Text: "bad"}}

	results := RenderBatch(context.Background(), backend, items, 2)
	if results[0].Err != nil {
		t.Errorf("item 0 should succeed, got %v", results[0].Err)
	}
	if results[1].Err == nil {
		t.Error("item 1 should fail")
	}
}

func TestRenderBatchEmptyInput(t *testing.T) {
	backend := &fakeBackend{}
	results := RenderBatch(context.Background(), backend, nil, 4)
	if len(results) != 0 {
		t.Errorf("expected no results for empty input, got %d", len(results))
	}
}

func TestRenderBatchCancelledContextStillReturnsAllSlots(t *testing.T) {
	// Cancelling before dispatch races against an already-listening
	// worker goroutine (select has no priority between a ready Done()
	// and a ready send), so only the result shape is guaranteed, not
	// which items this run happened to cancel before.
	backend := &fakeBackend{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := []BatchItem{{Text: "a"}, {Text: "b"}, {Text: "c"}}
	results := RenderBatch(ctx, backend, items, 1)

	if len(results) != len(items) {
		t.Fatalf("got %d results, want %d", len(results), len(items))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d has Index %d", i, r.Index)
		}
		if r.Err == nil {
			if _, ok := r.Output.Bitmap(); !ok {
				t.Errorf("item %d: no error but no bitmap output either", i)
			}
		}
	}
}

func TestRenderBatchDefaultsWorkersToItemCount(t *testing.T) {
	backend := &fakeBackend{}
	items := []BatchItem{{Text: "a"}, {Text: "b"}}

	results := RenderBatch(context.Background(), backend, items, 0)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
}
