package resource_test

import (
	"strings"
	"testing"

	"github.com/pseudomuto/changeling/pkg/resource"
	"github.com/stretchr/testify/require"
)

func TestRegistryFilter(t *testing.T) {
	registry := resource.NewRegistry()
	registry.Register("sql-only", func() any {
		return resource.FilterFunc(func(path string) bool {
			return strings.HasSuffix(path, ".sql")
		})
	})

	t.Run("resolves registered filters", func(t *testing.T) {
		f, err := registry.Filter("sql-only")
		require.NoError(t, err)
		require.True(t, f.Include("db/001.sql"))
		require.False(t, f.Include("db/001.changelog"))
	})

	t.Run("unregistered names fail setup", func(t *testing.T) {
		_, err := registry.Filter("nope")
		require.True(t, resource.IsSetupError(err))
		require.EqualError(t, err, `failed to set up "nope": not registered`)
	})

	t.Run("wrong capability fails setup", func(t *testing.T) {
		registry.Register("ordering", func() any {
			return resource.ComparatorFunc(func(a, b string) int { return 0 })
		})

		_, err := registry.Filter("ordering")
		require.True(t, resource.IsSetupError(err))
		require.ErrorContains(t, err, "not a resource filter")
	})

	t.Run("nil factory products fail setup", func(t *testing.T) {
		registry.Register("empty", func() any { return nil })

		_, err := registry.Filter("empty")
		require.True(t, resource.IsSetupError(err))
		require.ErrorContains(t, err, "factory returned nil")
	})
}

func TestRegistryComparator(t *testing.T) {
	registry := resource.NewRegistry()
	registry.Register("reverse", func() any {
		return resource.ComparatorFunc(func(a, b string) int {
			return strings.Compare(b, a)
		})
	})

	t.Run("resolves registered comparators", func(t *testing.T) {
		c, err := registry.Comparator("reverse")
		require.NoError(t, err)
		require.Negative(t, c.Compare("b", "a"))
		require.Positive(t, c.Compare("a", "b"))
	})

	t.Run("wrong capability fails setup", func(t *testing.T) {
		registry.Register("matching", func() any {
			return resource.FilterFunc(func(string) bool { return true })
		})

		_, err := registry.Comparator("matching")
		require.True(t, resource.IsSetupError(err))
		require.ErrorContains(t, err, "not a resource comparator")
	})
}

func TestNilRegistry(t *testing.T) {
	var registry *resource.Registry

	_, err := registry.Filter("anything")
	require.True(t, resource.IsSetupError(err))
	require.ErrorContains(t, err, "no extension registry configured")
}

func TestIsSetupError(t *testing.T) {
	require.True(t, resource.IsSetupError(&resource.SetupError{Name: "x", Reason: "y"}))
	require.False(t, resource.IsSetupError(resource.ErrNotFound))
	require.False(t, resource.IsSetupError(nil))
}
