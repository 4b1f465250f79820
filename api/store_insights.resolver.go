package api

import (
	"fmt"
	"time"

	"recouvra/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// getStoreInsights ranks stores by mean recovery rate over an optional
// date window, with the sample standard deviation as a consistency signal.
func (m ApiHandler) getStoreInsights(c *gin.Context) {
	var storeID *uuid.UUID
	if v := c.Query("storeId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid storeId: %w", err), c, 400)
			return
		}
		storeID = &id
	}

	var startDate, endDate *time.Time
	if v := c.Query("startDate"); v != "" {
		t, err := util.ParseISODate(v)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid startDate: %w", err), c, 400)
			return
		}
		startDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := util.ParseISODate(v)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid endDate: %w", err), c, 400)
			return
		}
		endDate = &t
	}

	out, err := m.DashboardService.GetStoreInsights(storeID, scopeStoreIDs(c), startDate, endDate)
	if err != nil {
		returnDomainError(err, c)
		return
	}

	c.JSON(200, out)
}
