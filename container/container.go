package container

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Container owns the lifecycle of every registered service: it stores
// definitions, resolves the dependency graph lazily on Get, guarantees
// singleton semantics, rejects circular dependencies, and tears instances
// down on Cleanup.
//
// All mutable state — definitions, instances, and the resolution stack — is
// guarded by one mutex. The mutex is held across an entire resolution chain
// (check cache, resolve dependencies, invoke factory, populate cache), so a
// singleton factory can never run twice, at the cost of serializing
// resolution across goroutines. Recursion re-enters through internal
// lock-held methods rather than re-acquiring the lock.
type Container struct {
	name   string
	logger *zap.Logger

	mu          sync.Mutex
	definitions map[string]*ServiceDefinition
	instances   map[string]any
	stack       []string // names mid-resolution, in call order
}

// Option configures a Container at construction time.
type Option func(*Container)

// WithLogger sets the diagnostic logger. The default is a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Container) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates an empty container. The name is a diagnostic label only.
func New(name string, opts ...Option) *Container {
	if name == "" {
		name = "main"
	}
	c := &Container{
		name:        name,
		logger:      zap.NewNop(),
		definitions: make(map[string]*ServiceDefinition),
		instances:   make(map[string]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the container's diagnostic label.
func (c *Container) Name() string { return c.name }

// Register stores a service definition under a unique name. The factory is
// not invoked — instantiation is lazy, on first Get. Dependencies may name
// services that are not registered yet; only cycles are rejected here.
//
// Registering over a name whose singleton is already instantiated is an
// error: Unregister first, which also disposes the cached instance.
// Overwriting a definition that was never instantiated is allowed.
func (c *Container) Register(name string, factory Factory, opts ...ServiceOption) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return &RegistrationError{Name: name, Reason: "service name must not be empty"}
	}
	if factoryIsNil(factory) {
		return &RegistrationError{Name: name, Reason: "factory must not be nil"}
	}
	if _, live := c.instances[name]; live {
		return &RegistrationError{Name: name, Reason: "service already instantiated; Unregister it first"}
	}

	def := &ServiceDefinition{
		name:         name,
		factory:      factory,
		singleton:    true,
		metadata:     make(map[string]any),
		registeredAt: time.Now(),
	}
	for _, opt := range opts {
		opt(def)
	}

	if err := c.checkNoCycle(name, def.dependencies); err != nil {
		return &RegistrationError{Name: name, Reason: "would create a circular dependency", Cause: err}
	}

	c.definitions[name] = def
	c.logger.Debug("service registered",
		zap.String("container", c.name),
		zap.String("service", name),
		zap.Strings("dependencies", def.dependencies),
		zap.Bool("singleton", def.singleton))
	return nil
}

// MustRegister is Register for bootstrap code: it panics on error and
// returns the container so registrations chain fluently.
func (c *Container) MustRegister(name string, factory Factory, opts ...ServiceOption) *Container {
	if err := c.Register(name, factory, opts...); err != nil {
		panic(err)
	}
	return c
}

// Get resolves a service and all of its transitive dependencies,
// instantiating lazily and returning the cached instance for singletons.
// It fails with *NotFoundError, *CircularDependencyError, or
// *ResolutionError.
func (c *Container) Get(name string) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolve(name)
}

// MustGet is Get that panics on error.
func (c *Container) MustGet(name string) any {
	v, err := c.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Unregister removes a service definition. A cached instance is disposed
// first (see Cleanup for the disposal contract). It reports whether a
// definition was removed and never fails for unknown names.
func (c *Container) Unregister(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if inst, ok := c.instances[name]; ok {
		c.dispose(name, inst)
		delete(c.instances, name)
	}
	if _, ok := c.definitions[name]; !ok {
		return false
	}
	delete(c.definitions, name)
	c.logger.Debug("service unregistered",
		zap.String("container", c.name),
		zap.String("service", name))
	return true
}

// IsRegistered reports whether a definition exists for name.
func (c *Container) IsRegistered(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.definitions[name]
	return ok
}

// IsInstantiated reports whether a singleton instance is cached for name.
func (c *Container) IsInstantiated(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.instances[name]
	return ok
}

// String implements fmt.Stringer for log lines and debugging.
func (c *Container) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fmt.Sprintf("Container(name=%q, registered=%d, instantiated=%d)",
		c.name, len(c.definitions), len(c.instances))
}

// factoryIsNil catches both an untyped nil and a nil function stored in one
// of the two Factory variants.
func factoryIsNil(f Factory) bool {
	switch fn := f.(type) {
	case nil:
		return true
	case Simple:
		return fn == nil
	case WithContainer:
		return fn == nil
	}
	return false
}

// Resolve resolves name through r and type-asserts the result.
//
//	svc, err := container.Resolve[*product.Service](c, "product_service")
func Resolve[T any](r Resolver, name string) (T, error) {
	var zero T
	v, err := r.Get(name)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, &ResolutionError{
			Name:  name,
			Cause: fmt.Errorf("instance is %T, want %T", v, zero),
		}
	}
	return typed, nil
}

// MustResolve is Resolve that panics on error.
func MustResolve[T any](r Resolver, name string) T {
	v, err := Resolve[T](r, name)
	if err != nil {
		panic(err)
	}
	return v
}
