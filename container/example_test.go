package container_test

import (
	"fmt"

	"github.com/copypoint/foundation/container"
)

type mailer struct{ from string }

func Example() {
	c := container.New("docs")

	c.MustRegister("config", container.Simple(func() (any, error) {
		return map[string]string{"mail_from": "ventas@copypoint.local"}, nil
	})).MustRegister("mailer", container.WithContainer(func(r container.Resolver) (any, error) {
		cfg, err := r.Get("config")
		if err != nil {
			return nil, err
		}
		return &mailer{from: cfg.(map[string]string)["mail_from"]}, nil
	}), container.WithDependencies("config"))

	m := container.MustResolve[*mailer](c, "mailer")
	fmt.Println(m.from)
	fmt.Println(c.IsInstantiated("mailer"))

	c.Cleanup()
	fmt.Println(c.IsRegistered("mailer"))
	// Output:
	// ventas@copypoint.local
	// true
	// false
}

func ExampleContainer_Unregister() {
	c := container.New("docs")
	c.MustRegister("barcode_service", container.Simple(func() (any, error) {
		return struct{}{}, nil
	}))

	fmt.Println(c.Unregister("barcode_service"))
	fmt.Println(c.Unregister("barcode_service"))
	// Output:
	// true
	// false
}
