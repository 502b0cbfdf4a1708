package container

import "reflect"

// Stats is a point-in-time snapshot of the container, safe to hold after
// the call returns.
type Stats struct {
	Name                 string   `json:"name"`
	TotalRegistered      int      `json:"total_registered"`
	TotalInstantiated    int      `json:"total_instantiated"`
	RegisteredServices   []string `json:"services_registered"`
	InstantiatedServices []string `json:"services_instantiated"`
	MemoryBytes          int64    `json:"memory_bytes"` // shallow, best-effort
	ResolutionStack      []string `json:"resolution_stack"`
}

// RegisteredServices returns the names of all registered definitions.
// Order is not significant.
func (c *Container) RegisteredServices() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registeredLocked()
}

// InstantiatedServices returns the names of all cached singleton instances.
// Order is not significant.
func (c *Container) InstantiatedServices() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.instantiatedLocked()
}

// Dependencies returns the declared dependency names of a registered
// service, or *NotFoundError.
func (c *Container) Dependencies(name string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	def, ok := c.definitions[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return def.Dependencies(), nil
}

// Definition returns the stored definition for a registered service, or
// *NotFoundError. The returned value is read-only by construction.
func (c *Container) Definition(name string) (*ServiceDefinition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	def, ok := c.definitions[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return def, nil
}

// Stats returns a diagnostic snapshot: counts, name lists, a shallow memory
// estimate, and whatever is mid-resolution right now (useful when a factory
// wedges and other goroutines pile up on the lock).
func (c *Container) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Name:                 c.name,
		TotalRegistered:      len(c.definitions),
		TotalInstantiated:    len(c.instances),
		RegisteredServices:   c.registeredLocked(),
		InstantiatedServices: c.instantiatedLocked(),
		MemoryBytes:          c.estimateMemoryLocked(),
		ResolutionStack:      append([]string{}, c.stack...),
	}
}

// ValidateDependencies checks every registered definition for dependencies
// that are not registered and re-runs the cycle check, returning the
// problems found per service. An empty map means the graph is consistent.
// Diagnostic hook: normal operation does not need it.
func (c *Container) ValidateDependencies() map[string][]error {
	c.mu.Lock()
	defer c.mu.Unlock()

	problems := make(map[string][]error)
	for name, def := range c.definitions {
		var errs []error
		for _, dep := range def.dependencies {
			if _, ok := c.definitions[dep]; !ok {
				errs = append(errs, &NotFoundError{Name: dep})
			}
		}
		if err := c.checkNoCycle(name, def.dependencies); err != nil {
			errs = append(errs, err)
		}
		if len(errs) > 0 {
			problems[name] = errs
		}
	}
	return problems
}

func (c *Container) registeredLocked() []string {
	out := make([]string, 0, len(c.definitions))
	for name := range c.definitions {
		out = append(out, name)
	}
	return out
}

func (c *Container) instantiatedLocked() []string {
	out := make([]string, 0, len(c.instances))
	for name := range c.instances {
		out = append(out, name)
	}
	return out
}

// estimateMemoryLocked sums shallow instance sizes plus a per-entry map
// overhead guess. Deep graphs are deliberately not walked.
func (c *Container) estimateMemoryLocked() int64 {
	const entryOverhead = 48 // map bucket + string header, roughly

	total := int64(len(c.definitions)+len(c.instances)) * entryOverhead
	for _, inst := range c.instances {
		if inst == nil {
			continue
		}
		t := reflect.TypeOf(inst)
		total += int64(t.Size())
		if t.Kind() == reflect.Pointer {
			total += int64(t.Elem().Size())
		}
	}
	return total
}
