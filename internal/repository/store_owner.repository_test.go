package repository

import (
	"errors"
	"fmt"
	"testing"

	"recouvra/internal/domain"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func Test_translateAssignError(t *testing.T) {
	t.Run("unique violation becomes the conflict sentinel", func(t *testing.T) {
		pqErr := &pq.Error{Code: pq.ErrorCode(pqUniqueViolation)}
		err := translateAssignError(fmt.Errorf("exec failed: %w", pqErr))
		require.ErrorIs(t, err, domain.ErrAlreadyAssigned)
	})

	t.Run("other pq errors pass through wrapped", func(t *testing.T) {
		pqErr := &pq.Error{Code: "23503"} // foreign key violation
		err := translateAssignError(pqErr)
		require.NotErrorIs(t, err, domain.ErrAlreadyAssigned)
		require.Error(t, err)
	})

	t.Run("non-pq errors pass through wrapped", func(t *testing.T) {
		err := translateAssignError(errors.New("connection refused"))
		require.NotErrorIs(t, err, domain.ErrAlreadyAssigned)
	})
}
