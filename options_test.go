package typf

import "testing"

func TestDefaultRenderOptionsValidates(t *testing.T) {
	if err := DefaultRenderOptions().validate(); err != nil {
		t.Errorf("DefaultRenderOptions() should validate, got %v", err)
	}
}

func TestValidateRejectsNonPositiveFontSize(t *testing.T) {
	opts := DefaultRenderOptions()
	opts.FontSize = 0
	if err := opts.validate(); err == nil || err.Kind != InvalidInput {
		t.Errorf("FontSize=0 should be rejected as InvalidInput, got %v", err)
	}
}

func TestValidateRejectsNegativePadding(t *testing.T) {
	opts := DefaultRenderOptions()
	opts.Padding = -1
	if err := opts.validate(); err == nil || err.Kind != InvalidInput {
		t.Errorf("negative Padding should be rejected as InvalidInput, got %v", err)
	}
}

func TestValidateRejectsBadGrayscaleLevel(t *testing.T) {
	opts := DefaultRenderOptions()
	opts.Antialias = AntialiasGrayscale
	opts.GrayscaleLevel = 3
	if err := opts.validate(); err == nil || err.Kind != InvalidInput {
		t.Errorf("GrayscaleLevel=3 should be rejected as InvalidInput, got %v", err)
	}
}

func TestValidateIgnoresGrayscaleLevelWhenAntialiasNone(t *testing.T) {
	opts := DefaultRenderOptions()
	opts.Antialias = AntialiasNone
	opts.GrayscaleLevel = 3
	if err := opts.validate(); err != nil {
		t.Errorf("GrayscaleLevel should be ignored when AntialiasNone, got %v", err)
	}
}

func TestTransparentIsZeroValue(t *testing.T) {
	if Transparent != (Color{}) {
		t.Error("Transparent must be the zero Color")
	}
}
