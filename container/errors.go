package container

import (
	"fmt"
	"strings"
)

// NotFoundError is returned when a requested service name has no
// registered definition.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("container: service %q is not registered", e.Name)
}

// CircularDependencyError is returned when registering or resolving a
// service would loop back into itself. Cycle holds the offending chain in
// order, ending with the name that closed the loop.
type CircularDependencyError struct {
	Cycle []string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("container: circular dependency: %s", strings.Join(e.Cycle, " -> "))
}

// RegistrationError is returned when Register rejects a definition.
// Cause is non-nil when the rejection wraps another error (a cycle check,
// for example).
type RegistrationError struct {
	Name   string
	Reason string
	Cause  error
}

func (e *RegistrationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("container: registering %q: %s: %v", e.Name, e.Reason, e.Cause)
	}
	return fmt.Sprintf("container: registering %q: %s", e.Name, e.Reason)
}

func (e *RegistrationError) Unwrap() error { return e.Cause }

// ResolutionError is returned when a service could not be built even though
// its definition exists — typically the factory itself failed. The original
// failure is preserved as Cause.
type ResolutionError struct {
	Name  string
	Cause error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("container: resolving %q: %v", e.Name, e.Cause)
}

func (e *ResolutionError) Unwrap() error { return e.Cause }
