package api

import (
	"net/http/httptest"
	"testing"

	"recouvra/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/recoveries", nil)
	return c
}

func Test_returnDomainError(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		returnDomainError(domain.ErrNotFound, c)
		require.Equal(t, 404, rec.Code)
	})

	t.Run("already assigned is a conflict", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		returnDomainError(domain.ErrAlreadyAssigned, c)
		require.Equal(t, 409, rec.Code)
	})
}

func Test_recoveryFilterFromQuery(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		c := testContext(t)
		storeID := uuid.New()
		c.Request = httptest.NewRequest("GET", "/recoveries?storeId="+storeID.String()+"&startDate=2024-01-01&endDate=2024-01-31", nil)

		filter, err := recoveryFilterFromQuery(c)
		require.NoError(t, err)
		require.Equal(t, storeID, *filter.StoreID)
		require.Equal(t, "2024-01-01", filter.StartDate.Format("2006-01-02"))
		require.Equal(t, "2024-01-31", filter.EndDate.Format("2006-01-02"))
		require.Nil(t, filter.ScopeStoreIDs)
	})

	t.Run("scope carried from auth context", func(t *testing.T) {
		c := testContext(t)
		scoped := []uuid.UUID{uuid.New()}
		c.Set("scopeStoreIDs", scoped)

		filter, err := recoveryFilterFromQuery(c)
		require.NoError(t, err)
		require.Equal(t, scoped, filter.ScopeStoreIDs)
	})

	t.Run("bad storeId", func(t *testing.T) {
		c := testContext(t)
		c.Request = httptest.NewRequest("GET", "/recoveries?storeId=nope", nil)

		_, err := recoveryFilterFromQuery(c)
		require.Error(t, err)
	})

	t.Run("bad date", func(t *testing.T) {
		c := testContext(t)
		c.Request = httptest.NewRequest("GET", "/recoveries?startDate=01/02/2024", nil)

		_, err := recoveryFilterFromQuery(c)
		require.Error(t, err)
	})
}
