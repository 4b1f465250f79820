package api

import (
	"errors"
	"fmt"

	"recouvra/internal/domain"
	"recouvra/internal/logger"
	"recouvra/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// exportMonth streams one month's records as a semicolon-delimited CSV
// attachment. An empty month is a 404, never an empty file.
func (m ApiHandler) exportMonth(c *gin.Context) {
	monthKey := c.Query("month")
	if monthKey == "" {
		returnErrorJsonCode(fmt.Errorf("month is required (YYYY-MM)"), c, 400)
		return
	}
	if _, err := util.ParseMonthKey(monthKey); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid month %q: %w", monthKey, err), c, 400)
		return
	}

	var storeID *uuid.UUID
	if v := c.Query("storeId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid storeId: %w", err), c, 400)
			return
		}
		storeID = &id
	}

	payload, err := m.DashboardService.ExportMonth(storeID, scopeStoreIDs(c), monthKey)
	if errors.Is(err, domain.ErrNoRecords) {
		returnErrorJsonCode(err, c, 404)
		return
	} else if err != nil {
		returnDomainError(err, c)
		return
	}

	logger.FromContext(c).Infow("rendered monthly export",
		"month", monthKey,
		"filename", payload.Filename,
		"bytes", len(payload.Content),
	)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", payload.Filename))
	c.Data(200, "text/csv; charset=utf-8", payload.Content)
}
