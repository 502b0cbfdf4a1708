package container

import (
	"io"

	"go.uber.org/zap"
)

// Cleanup disposes every cached instance, then empties the container:
// definitions, instances, and any resolution-stack residue are cleared,
// leaving it reusable from a blank state.
//
// Disposal is best-effort and total. An instance that implements io.Closer
// has Close called; a failing Close is logged and never stops the
// remaining instances from being disposed. Cleanup is idempotent.
func (c *Container) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Info("container cleanup started",
		zap.String("container", c.name),
		zap.Int("instances", len(c.instances)))

	// Snapshot: dispose must not fight with map mutation.
	names := make([]string, 0, len(c.instances))
	for name := range c.instances {
		names = append(names, name)
	}
	for _, name := range names {
		c.dispose(name, c.instances[name])
	}

	c.instances = make(map[string]any)
	c.definitions = make(map[string]*ServiceDefinition)
	c.stack = nil

	c.logger.Info("container cleanup finished", zap.String("container", c.name))
}

// dispose closes a single instance if it exposes io.Closer. Errors are
// swallowed after logging: partial teardown is worse than a noisy one.
// mu must be held.
func (c *Container) dispose(name string, instance any) {
	closer, ok := instance.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		c.logger.Warn("service cleanup failed",
			zap.String("container", c.name),
			zap.String("service", name),
			zap.Error(err))
	}
}

// Using hands c to fn and guarantees Cleanup afterwards, whether fn
// succeeds or not.
//
//	err := container.Using(container.New("report-run"), func(c *container.Container) error {
//	    ...
//	})
func Using(c *Container, fn func(*Container) error) error {
	defer c.Cleanup()
	return fn(c)
}
