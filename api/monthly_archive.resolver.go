package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// getMonthlyArchive groups the caller's full history into calendar-month
// buckets, newest first, each carrying a per-store breakdown.
func (m ApiHandler) getMonthlyArchive(c *gin.Context) {
	var storeID *uuid.UUID
	if v := c.Query("storeId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid storeId: %w", err), c, 400)
			return
		}
		storeID = &id
	}

	archive, err := m.DashboardService.GetMonthlyArchive(storeID, scopeStoreIDs(c))
	if err != nil {
		returnDomainError(err, c)
		return
	}

	c.JSON(200, archive)
}
