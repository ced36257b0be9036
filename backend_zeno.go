package typf

func init() {
	RegisterBackend("zeno", newZenoBackend)
}

// newZenoBackend reserves the "zeno" slot in the closed backend
// registry set, for the same reason as backend_tinyskia.go: zeno is a
// Rust crate with no corresponding Go library in this module's
// dependency corpus. Construction always reports NoBackendAvailable.
func newZenoBackend() (Backend, error) {
	return nil, newErrorWithInput(NoBackendAvailable, "zeno backend has no Go binding in this build", "zeno", nil)
}
