package container

import "time"

// Resolver is the read side of the container that factories may use to pull
// their declared dependencies. During resolution a factory receives a view
// bound to the in-flight resolution chain, so pulling a dependency from
// inside a factory shares the same cycle bookkeeping as the outer Get.
// *Container itself also satisfies Resolver for use outside factories.
type Resolver interface {
	Get(name string) (any, error)
	IsRegistered(name string) bool
}

// Factory produces a service instance. It is a sealed two-variant type:
// construct one with Simple (no dependencies on the container) or
// WithContainer (the factory pulls dependencies through a Resolver).
// Picking the variant explicitly replaces any guessing about what the
// factory expects to be called with.
type Factory interface {
	invoke(r Resolver) (any, error)
}

// Simple is a factory that needs nothing from the container.
//
//	c.Register("barcode_service", container.Simple(func() (any, error) {
//	    return barcode.NewService(), nil
//	}))
type Simple func() (any, error)

func (f Simple) invoke(Resolver) (any, error) { return f() }

// WithContainer is a factory that receives the container view and pulls its
// dependencies by name.
//
//	c.Register("product_service", container.WithContainer(func(r container.Resolver) (any, error) {
//	    db, err := r.Get("database")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return product.NewService(db.(*store.DB)), nil
//	}), container.WithDependencies("database"))
type WithContainer func(Resolver) (any, error)

func (f WithContainer) invoke(r Resolver) (any, error) { return f(r) }

// ServiceDefinition describes one registered service. Definitions are
// immutable once stored; replacing one goes through Unregister + Register.
type ServiceDefinition struct {
	name         string
	factory      Factory
	dependencies []string
	singleton    bool
	metadata     map[string]any
	registeredAt time.Time
}

// Name returns the unique service name.
func (d *ServiceDefinition) Name() string { return d.name }

// Dependencies returns a copy of the declared dependency names.
func (d *ServiceDefinition) Dependencies() []string {
	out := make([]string, len(d.dependencies))
	copy(out, d.dependencies)
	return out
}

// Singleton reports whether the container caches the produced instance.
func (d *ServiceDefinition) Singleton() bool { return d.singleton }

// Metadata returns a copy of the free-form metadata attached at registration.
func (d *ServiceDefinition) Metadata() map[string]any {
	out := make(map[string]any, len(d.metadata))
	for k, v := range d.metadata {
		out[k] = v
	}
	return out
}

// RegisteredAt returns the registration timestamp.
func (d *ServiceDefinition) RegisteredAt() time.Time { return d.registeredAt }

// ServiceOption configures a definition at registration time.
type ServiceOption func(*ServiceDefinition)

// WithDependencies declares the services that must be resolved before this
// one's factory runs. Names may refer to services registered later;
// existence is checked at resolution, cycles at registration.
func WithDependencies(names ...string) ServiceOption {
	return func(d *ServiceDefinition) {
		d.dependencies = append(d.dependencies, names...)
	}
}

// Transient disables singleton caching: every Get invokes the factory again.
func Transient() ServiceOption {
	return func(d *ServiceDefinition) { d.singleton = false }
}

// WithMetadata attaches free-form metadata to the definition.
func WithMetadata(meta map[string]any) ServiceOption {
	return func(d *ServiceDefinition) {
		for k, v := range meta {
			d.metadata[k] = v
		}
	}
}
