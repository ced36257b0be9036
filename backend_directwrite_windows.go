//go:build windows

package typf

func init() {
	RegisterBackend("directwrite", newDirectWriteBackend)
	prependBackendOrder("directwrite")
}

// newDirectWriteBackend is a placeholder registration for the platform
// backend slot on Windows (spec.md §4.1 selection policy step 2,
// §9 Non-goals: DirectWrite FFI bindings are out of scope for the CORE
// engine). See backend_coretext_darwin.go for the identical rationale.
func newDirectWriteBackend() (Backend, error) {
	return nil, newErrorWithInput(NoBackendAvailable, "directwrite backend is not built into this engine", "directwrite", nil)
}
