package typf

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorMessageIncludesInputOnlyWhenSet(t *testing.T) {
	e := newError(InvalidInput, "bad text", nil)
	if strings.Contains(e.Error(), "input:") {
		t.Errorf("expected no input clause, got %q", e.Error())
	}

	withInput := newErrorWithInput(FontNotFound, "missing family", "Comic Sans", nil)
	if !strings.Contains(withInput.Error(), "Comic Sans") {
		t.Errorf("expected input to appear in message, got %q", withInput.Error())
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	e := newError(ShapingFailed, "shaping failed", cause)

	if !errors.Is(e, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	var target *Error
	if !errors.As(e, &target) {
		t.Error("errors.As should find the *Error itself")
	}
	if target.Kind != ShapingFailed {
		t.Errorf("Kind = %v, want ShapingFailed", target.Kind)
	}
}

func TestKindStringCoversEveryConstant(t *testing.T) {
	kinds := []Kind{
		InvalidInput, FontNotFound, FontInvalid, ShapingFailed,
		RasterizationFailed, EncodingFailed, NoBackendAvailable, CacheError,
	}
	seen := make(map[string]bool)
	for _, k := range kinds {
		s := k.String()
		if strings.HasPrefix(s, "Kind(") {
			t.Errorf("Kind %d has no named String() case", int(k))
		}
		if seen[s] {
			t.Errorf("duplicate Kind string %q", s)
		}
		seen[s] = true
	}
}
