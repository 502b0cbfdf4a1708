package container

// checkNoCycle verifies that a candidate definition (name + dependencies)
// would not close a dependency loop against the current store. The walk runs
// over a hypothetical view: the store as if the candidate were already
// present, so the check works both for brand-new names and for overwrites.
//
// Depth-first with an explicit path; O(V+E) per call. mu must be held.
func (c *Container) checkNoCycle(name string, dependencies []string) error {
	deps := func(svc string) []string {
		if svc == name {
			return dependencies
		}
		if def, ok := c.definitions[svc]; ok {
			return def.dependencies
		}
		return nil
	}

	visited := make(map[string]bool)
	var path []string

	var walk func(svc string) error
	walk = func(svc string) error {
		for i, p := range path {
			if p == svc {
				cycle := append(append([]string{}, path[i:]...), svc)
				return &CircularDependencyError{Cycle: cycle}
			}
		}
		if visited[svc] {
			return nil
		}
		visited[svc] = true
		path = append(path, svc)
		for _, dep := range deps(svc) {
			if err := walk(dep); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		return nil
	}

	return walk(name)
}
