package container

// ServiceProvider groups related registrations so bootstrap code can be
// split by feature area (core infrastructure, domain services, optional
// hardware integrations) instead of one monolithic wiring function.
//
// Register binds definitions into the container and must not resolve
// anything — other providers may not have run yet. Boot is called after all
// providers have registered, so it may resolve freely.
type ServiceProvider interface {
	Register(c *Container) error
	Boot(c *Container) error
}

// BaseProvider is embeddable and supplies a no-op Boot, so providers that
// only register services stay one method long.
type BaseProvider struct{}

func (BaseProvider) Boot(*Container) error { return nil }

// ProviderRegistry runs the two-phase provider lifecycle against one
// container: every provider registers exactly once, and Boot runs once over
// all of them after registration.
type ProviderRegistry struct {
	c          *Container
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	booted     bool
}

// NewProviderRegistry creates a registry bound to c.
func NewProviderRegistry(c *Container) *ProviderRegistry {
	return &ProviderRegistry{
		c:          c,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and invokes its Register phase. Registering the
// same provider value twice is a no-op. A provider added after Boot is
// booted immediately.
func (r *ProviderRegistry) Register(p ServiceProvider) error {
	if r.registered[p] {
		return nil
	}
	if err := p.Register(r.c); err != nil {
		return err
	}
	r.registered[p] = true
	r.providers = append(r.providers, p)

	if r.booted {
		return p.Boot(r.c)
	}
	return nil
}

// Boot runs the Boot phase on every registered provider, in registration
// order. Calling it again is a no-op.
func (r *ProviderRegistry) Boot() error {
	if r.booted {
		return nil
	}
	r.booted = true
	for _, p := range r.providers {
		if err := p.Boot(r.c); err != nil {
			return err
		}
	}
	return nil
}

// Booted reports whether Boot has run.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns the registered providers in registration order.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }
