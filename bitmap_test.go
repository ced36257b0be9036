package typf

import "testing"

func TestRenderOutputAccessorsAreMutuallyExclusive(t *testing.T) {
	bmp := newBitmapOutput(&Bitmap{Width: 1, Height: 1})
	if _, ok := bmp.Bitmap(); !ok {
		t.Error("Bitmap() should report ok for a bitmap output")
	}
	if _, ok := bmp.PNG(); ok {
		t.Error("PNG() should report !ok for a bitmap output")
	}
	if _, ok := bmp.Vector(); ok {
		t.Error("Vector() should report !ok for a bitmap output")
	}

	png := newPNGOutput([]byte{1, 2, 3})
	if data, ok := png.PNG(); !ok || len(data) != 3 {
		t.Errorf("PNG() = %v, %v, want 3 bytes, true", data, ok)
	}
	if _, ok := png.Bitmap(); ok {
		t.Error("Bitmap() should report !ok for a PNG output")
	}

	vec := newVectorOutput([]PathCommand{{Kind: MoveTo}})
	if cmds, ok := vec.Vector(); !ok || len(cmds) != 1 {
		t.Errorf("Vector() = %v, %v, want 1 command, true", cmds, ok)
	}
	if _, ok := vec.PNG(); ok {
		t.Error("PNG() should report !ok for a vector output")
	}
}
