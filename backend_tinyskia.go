package typf

func init() {
	RegisterBackend("tinyskia", newTinySkiaBackend)
}

// newTinySkiaBackend reserves the "tinyskia" slot in the closed backend
// registry set. tiny-skia is a Rust crate with no Go binding anywhere
// in this module's dependency corpus, and fabricating one would mean
// shipping rasterization logic with nothing grounding it — the orge
// backend already covers tiny-skia's role (a pure-software,
// cross-platform scan converter) via a stack this module actually
// imports. Construction always reports NoBackendAvailable.
func newTinySkiaBackend() (Backend, error) {
	return nil, newErrorWithInput(NoBackendAvailable, "tinyskia backend has no Go binding in this build", "tinyskia", nil)
}
