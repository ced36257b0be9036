package typf

import (
	"sort"
	"sync"

	"github.com/typf-go/typf/internal/config"
)

type backendFactory func() (Backend, error)

var (
	registryMu       sync.Mutex
	backendFactories = map[string]backendFactory{}
)

// RegisterBackend adds a named backend factory to the registry. Backend
// implementations call this from a package-level init(), the same
// "register yourself on import" pattern build-tagged platform backends
// need to stay out of non-matching builds.
func RegisterBackend(name string, factory backendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backendFactories[name] = factory
}

// AvailableBackends lists every registered backend name, sorted
// (spec.md §4.1 "list available backends").
func AvailableBackends() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	names := make([]string, 0, len(backendFactories))
	for name := range backendFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open constructs the named backend (spec.md §4.1 "construct a named
// backend"). Fails with NoBackendAvailable if name isn't registered, or
// if the registered factory itself fails (e.g. a platform API that
// isn't present at runtime despite being compiled in).
func Open(name string) (Backend, error) {
	registryMu.Lock()
	factory, ok := backendFactories[name]
	registryMu.Unlock()
	if !ok {
		return nil, newErrorWithInput(NoBackendAvailable, "backend not registered", name, nil)
	}
	b, err := factory()
	if err != nil {
		return nil, newErrorWithInput(NoBackendAvailable, "backend construction failed", name, err)
	}
	return b, nil
}

// OpenDefault constructs the auto-selected default backend, trying
// internal/config's BackendOrder in turn (spec.md §4.1 selection
// policy step 2: platform default, else tiny-skia-class cross-platform,
// else orge, else NoBackendAvailable). Platform backends prepend
// themselves to the default order from a build-tagged init (see
// backend_coretext_darwin.go, backend_directwrite_windows.go).
func OpenDefault() (Backend, error) {
	order := config.GetConfig().BackendOrder
	var lastErr error
	for _, name := range order {
		b, err := Open(name)
		if err == nil {
			return b, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = newError(NoBackendAvailable, "no backends registered", nil)
	}
	return nil, lastErr
}

// prependBackendOrder inserts name at the front of the global default
// backend order, if it isn't already present. Called only from a
// build-tagged init() on the platform where that backend is real
// (spec.md §4.1 selection policy step 2's platform-first ordering).
func prependBackendOrder(name string) {
	cfg := config.GetConfig()
	for _, existing := range cfg.BackendOrder {
		if existing == name {
			return
		}
	}
	cfg.BackendOrder = append([]string{name}, cfg.BackendOrder...)
	config.SetConfig(cfg)
}
