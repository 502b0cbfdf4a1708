package container

import "sync"

// The process-wide default container is a convenience for code paths that
// have no handle on the composition root. New code should prefer an
// explicit *Container owned by main and passed down.

var (
	defaultMu sync.Mutex
	defaultC  *Container
)

// Default returns the lazily-created process-wide container. The first call
// creates it; every later call returns the same instance until
// ShutdownDefault.
func Default() *Container {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultC == nil {
		defaultC = New("default")
	}
	return defaultC
}

// ShutdownDefault cleans up the process-wide container and drops the
// reference, so the next Default call starts fresh. Safe to call when no
// default container exists.
func ShutdownDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultC != nil {
		defaultC.Cleanup()
		defaultC = nil
	}
}
