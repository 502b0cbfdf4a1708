package container_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copypoint/foundation/container"
)

// failingCloser always errors from Close but must still count the call.
type failingCloser struct {
	closed int
}

func (f *failingCloser) Close() error {
	f.closed++
	return errors.New("already gone")
}

//
// -----------------------------------------------------------------------------
// Cleanup
// -----------------------------------------------------------------------------

// TestCleanup_ClosesEveryCachedInstanceOnce verifies each cached closer is
// closed exactly once and the container ends empty.
func TestCleanup_ClosesEveryCachedInstanceOnce(t *testing.T) {
	t.Parallel()

	c := container.New("test")
	dbs := make([]*fakeDB, 0, 3)
	for _, name := range []string{"database", "session_manager", "backup_service"} {
		require.NoError(t, c.Register(name, container.Simple(func() (any, error) {
			db := &fakeDB{}
			dbs = append(dbs, db)
			return db, nil
		})))
		_, err := c.Get(name)
		require.NoError(t, err)
	}

	c.Cleanup()

	require.Len(t, dbs, 3)
	for _, db := range dbs {
		assert.Equal(t, 1, db.closed)
	}
	assert.Empty(t, c.RegisteredServices())
	assert.Empty(t, c.InstantiatedServices())
}

// TestCleanup_BestEffort verifies one failing Close does not stop the rest
// from being disposed.
func TestCleanup_BestEffort(t *testing.T) {
	t.Parallel()

	c := container.New("test")
	bad := &failingCloser{}
	good := &fakeDB{}
	require.NoError(t, c.Register("bad", container.Simple(func() (any, error) { return bad, nil })))
	require.NoError(t, c.Register("good", container.Simple(func() (any, error) { return good, nil })))
	c.MustGet("bad")
	c.MustGet("good")

	c.Cleanup()

	assert.Equal(t, 1, bad.closed)
	assert.Equal(t, 1, good.closed)
	assert.Empty(t, c.RegisteredServices())
}

// TestCleanup_SkipsNonClosers verifies instances without the capability are
// simply dropped.
func TestCleanup_SkipsNonClosers(t *testing.T) {
	t.Parallel()

	c := container.New("test")
	require.NoError(t, c.Register("plain", container.Simple(func() (any, error) { return "value", nil })))
	c.MustGet("plain")

	c.Cleanup()
	assert.Empty(t, c.InstantiatedServices())
}

// TestCleanup_Idempotent verifies cleaning an already-clean container is a
// no-op.
func TestCleanup_Idempotent(t *testing.T) {
	t.Parallel()

	c := container.New("test")
	c.Cleanup()
	c.Cleanup()
	assert.Empty(t, c.RegisteredServices())
}

// TestCleanup_ContainerReusable verifies the container accepts fresh
// registrations after Cleanup.
func TestCleanup_ContainerReusable(t *testing.T) {
	t.Parallel()

	c := container.New("test")
	registerDB(t, c)
	c.MustGet("database")
	c.Cleanup()

	registerDB(t, c)
	_, err := c.Get("database")
	require.NoError(t, err)
}

//
// -----------------------------------------------------------------------------
// Using
// -----------------------------------------------------------------------------

// TestUsing_CleansUpOnSuccess verifies the scoped helper tears down after a
// normal run.
func TestUsing_CleansUpOnSuccess(t *testing.T) {
	t.Parallel()

	c := container.New("scoped")
	var db *fakeDB
	err := container.Using(c, func(c *container.Container) error {
		registerDB(t, c)
		var resolveErr error
		db, resolveErr = container.Resolve[*fakeDB](c, "database")
		return resolveErr
	})

	require.NoError(t, err)
	assert.Equal(t, 1, db.closed)
	assert.Empty(t, c.RegisteredServices())
}

// TestUsing_CleansUpOnError verifies teardown happens even when the body
// fails, and the body's error is what comes back.
func TestUsing_CleansUpOnError(t *testing.T) {
	t.Parallel()

	c := container.New("scoped")
	var db *fakeDB
	err := container.Using(c, func(c *container.Container) error {
		registerDB(t, c)
		db = container.MustResolve[*fakeDB](c, "database")
		return assert.AnError
	})

	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, db.closed)
	assert.Empty(t, c.RegisteredServices())
}
