package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Cache(t *testing.T) {
	t.Run("get returns what was set", func(t *testing.T) {
		c := New()
		key := Key("dashboardStats", "store=all", "today=2024-01-05")
		c.Set(key, 42)

		v, ok := c.Get(key)
		require.True(t, ok)
		require.Equal(t, 42, v)
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		c := New()
		_, ok := c.Get(Key("dashboardStats", "store=all"))
		require.False(t, ok)
	})

	t.Run("invalidate drops matching prefixes only", func(t *testing.T) {
		c := New()
		c.Set(Key("dashboardStats", "store=all"), 1)
		c.Set(Key("dashboardStats", "store=abc"), 2)
		c.Set(Key("monthlyArchive", "store=all"), 3)

		c.Invalidate("dashboardStats")

		_, ok := c.Get(Key("dashboardStats", "store=all"))
		require.False(t, ok)
		_, ok = c.Get(Key("dashboardStats", "store=abc"))
		require.False(t, ok)
		v, ok := c.Get(Key("monthlyArchive", "store=all"))
		require.True(t, ok)
		require.Equal(t, 3, v)
	})

	t.Run("invalidate with no prefixes clears everything", func(t *testing.T) {
		c := New()
		c.Set("a", 1)
		c.Set("b", 2)
		c.Invalidate()
		require.Zero(t, c.Len())
	})

	t.Run("key is a stable normalized tuple", func(t *testing.T) {
		require.Equal(t, Key("recoveries", "store=", "start=", "end="), Key("recoveries", "store=", "start=", "end="))
		require.NotEqual(t, Key("recoveries", "store=a"), Key("recoveries", "store=b"))
	})
}
