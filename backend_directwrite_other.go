//go:build !windows

package typf

func init() {
	RegisterBackend("directwrite", newDirectWriteBackend)
}

// newDirectWriteBackend reports NoBackendAvailable on every non-Windows
// platform, mirroring backend_coretext_other.go's rationale.
func newDirectWriteBackend() (Backend, error) {
	return nil, newErrorWithInput(NoBackendAvailable, "directwrite backend requires Windows", "directwrite", nil)
}
