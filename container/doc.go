// Package container is the dependency-injection runtime of the Copypoint
// inventory system. It owns the lifecycle of every business service — the
// database handle, product/category/sales services, auth, export, backup —
// resolving their dependency graph lazily, guaranteeing singleton
// semantics, rejecting circular dependencies, and tearing everything down
// deterministically.
//
// # Registering and resolving
//
// Services are registered by name with an explicit factory and an explicit
// dependency list. Nothing is instantiated at registration time; the first
// Get walks the graph dependency-first.
//
//	c := container.New("posapp")
//
//	c.MustRegister("database", container.Simple(func() (any, error) {
//	    return store.Open(cfg.DB.Path)
//	})).MustRegister("product_service", container.WithContainer(func(r container.Resolver) (any, error) {
//	    db, err := r.Get("database")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return product.NewService(db.(*store.DB)), nil
//	}), container.WithDependencies("database"))
//
//	svc, err := container.Resolve[*product.Service](c, "product_service")
//
// Factories come in exactly two shapes: Simple for services with no
// dependencies on the container, WithContainer for factories that pull
// dependencies through a Resolver. Registration order does not matter —
// dependencies may name services registered later — but a registration that
// would close a dependency loop is rejected on the spot.
//
// # Lifecycle
//
// Singletons (the default) are built once per container lifetime; Transient
// services get a fresh instance per Get. Cleanup closes every cached
// instance that implements io.Closer, best-effort, then empties the
// container. Using(c, fn) scopes a container to a function body with a
// guaranteed Cleanup.
//
// # Bootstrap
//
// ServiceProvider and ProviderRegistry split wiring by feature area with a
// two-phase register/boot lifecycle; see examples/posapp for the full
// composition root.
//
// # Concurrency
//
// One mutex guards all container state and is held across a whole
// resolution chain, so concurrent Gets of the same singleton converge on a
// single factory invocation. A factory that blocks indefinitely blocks the
// container; keep factories construction-only.
package container
