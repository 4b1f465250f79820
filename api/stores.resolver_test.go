package api

import (
	"testing"

	"recouvra/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_mergeStorePatch(t *testing.T) {
	existing := domain.Store{
		ID:      uuid.New(),
		Name:    "Moroni Centre",
		Code:    "MC1",
		Address: strPtr("Route de la Corniche"),
	}

	t.Run("absent fields keep their current value", func(t *testing.T) {
		in := mergeStorePatch(existing, updateStoreRequest{Name: strPtr("Moroni Nord")})
		require.Equal(t, "Moroni Nord", in.Name)
		require.Equal(t, "MC1", in.Code)
		require.Equal(t, "Route de la Corniche", *in.Address)
		require.NoError(t, in.Validate())
	})

	t.Run("empty patch is the identity", func(t *testing.T) {
		in := mergeStorePatch(existing, updateStoreRequest{})
		require.Equal(t, existing.Name, in.Name)
		require.Equal(t, existing.Code, in.Code)
		require.NoError(t, in.Validate())
	})

	t.Run("blanking a required field still fails validation", func(t *testing.T) {
		in := mergeStorePatch(existing, updateStoreRequest{Name: strPtr("  ")})
		require.Error(t, in.Validate())
	})
}
