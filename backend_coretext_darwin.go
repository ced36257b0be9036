//go:build darwin

package typf

func init() {
	RegisterBackend("coretext", newCoreTextBackend)
	prependBackendOrder("coretext")
}

// newCoreTextBackend is a placeholder registration for the platform
// backend slot on macOS (spec.md §4.1 selection policy step 2's
// "platform default" entry, §9 Non-goals: CoreText/DirectWrite FFI
// bindings are out of scope for the CORE engine). It registers under
// the real platform name so AvailableBackends and auto-selection
// ordering behave as they would once a CoreText binding exists, but
// construction always reports NoBackendAvailable so OpenDefault falls
// through to the orge backend.
func newCoreTextBackend() (Backend, error) {
	return nil, newErrorWithInput(NoBackendAvailable, "coretext backend is not built into this engine", "coretext", nil)
}
