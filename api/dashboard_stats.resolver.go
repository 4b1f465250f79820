package api

import (
	"fmt"
	"time"

	"recouvra/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// getDashboardStats serves the landing-page aggregates: today's totals,
// the current month's totals, and the per-store breakdown. "Today" can be
// overridden with a date query param so clients in other timezones pin the
// day they mean.
func (m ApiHandler) getDashboardStats(c *gin.Context) {
	var storeID *uuid.UUID
	if v := c.Query("storeId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid storeId: %w", err), c, 400)
			return
		}
		storeID = &id
	}

	today := time.Now().UTC()
	if v := c.Query("date"); v != "" {
		t, err := util.ParseISODate(v)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid date: %w", err), c, 400)
			return
		}
		today = t
	}

	stats, err := m.DashboardService.GetDashboardStats(storeID, scopeStoreIDs(c), today)
	if err != nil {
		returnDomainError(err, c)
		return
	}

	c.JSON(200, stats)
}
