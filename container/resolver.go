package container

import "go.uber.org/zap"

// session is the Resolver handed to WithContainer factories while a
// resolution chain is in flight. The container's mutex is already held by
// the goroutine running the chain, so calls go straight to the internal
// resolve path and share its resolution stack.
type session struct {
	c *Container
}

func (s session) Get(name string) (any, error) { return s.c.resolve(name) }

func (s session) IsRegistered(name string) bool {
	_, ok := s.c.definitions[name]
	return ok
}

// resolve builds name and its transitive dependencies, dependency-first.
// mu must be held; recursion stays inside this method.
func (c *Container) resolve(name string) (any, error) {
	def, ok := c.definitions[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}

	if inst, ok := c.instances[name]; ok {
		return inst, nil
	}

	// A name reappearing on the in-flight stack means the chain looped —
	// either through an undeclared pull inside a factory or a dependency
	// list that slipped past registration via overwrites.
	for _, active := range c.stack {
		if active == name {
			cycle := append(append([]string{}, c.stack...), name)
			return nil, &CircularDependencyError{Cycle: cycle}
		}
	}

	c.stack = append(c.stack, name)
	defer func() { c.stack = c.stack[:len(c.stack)-1] }()

	// Declared dependencies are fully built before the factory runs, so a
	// WithContainer factory pulling them hits the cache.
	for _, dep := range def.dependencies {
		if _, err := c.resolve(dep); err != nil {
			return nil, err
		}
	}

	instance, err := def.factory.invoke(session{c})
	if err != nil {
		switch err.(type) {
		case *NotFoundError, *CircularDependencyError, *ResolutionError:
			return nil, err
		}
		return nil, &ResolutionError{Name: name, Cause: err}
	}

	if def.singleton {
		c.instances[name] = instance
	}
	c.logger.Debug("service instantiated",
		zap.String("container", c.name),
		zap.String("service", name),
		zap.Bool("cached", def.singleton))
	return instance, nil
}
