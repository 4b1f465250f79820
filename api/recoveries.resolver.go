package api

import (
	"fmt"

	"recouvra/internal/domain"
	"recouvra/internal/repository"
	"recouvra/internal/service"
	"recouvra/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// decimal fields accept both JSON numbers and numeric strings, so clients
// that serialize amounts as strings still land on exact values.
type createRecoveryRequest struct {
	StoreID         string          `json:"storeId"`
	Date            string          `json:"date"`
	ExpectedAmount  decimal.Decimal `json:"expectedAmount"`
	RecoveredAmount decimal.Decimal `json:"recoveredAmount"`
	Expenses        decimal.Decimal `json:"expenses"`
	Observations    *string         `json:"observations"`
}

type updateRecoveryRequest struct {
	StoreID         *string          `json:"storeId"`
	Date            *string          `json:"date"`
	ExpectedAmount  *decimal.Decimal `json:"expectedAmount"`
	RecoveredAmount *decimal.Decimal `json:"recoveredAmount"`
	Expenses        *decimal.Decimal `json:"expenses"`
	Observations    *string          `json:"observations"`
}

// recoveryFilterFromQuery reads the optional storeId/startDate/endDate
// query params and stamps the caller's row-level scope onto the filter.
func recoveryFilterFromQuery(c *gin.Context) (repository.RecoveryFilter, error) {
	filter := repository.RecoveryFilter{
		ScopeStoreIDs: scopeStoreIDs(c),
	}

	if v := c.Query("storeId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, fmt.Errorf("invalid storeId: %w", err)
		}
		filter.StoreID = &id
	}
	if v := c.Query("startDate"); v != "" {
		t, err := util.ParseISODate(v)
		if err != nil {
			return filter, fmt.Errorf("invalid startDate: %w", err)
		}
		filter.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := util.ParseISODate(v)
		if err != nil {
			return filter, fmt.Errorf("invalid endDate: %w", err)
		}
		filter.EndDate = &t
	}

	return filter, nil
}

func (m ApiHandler) listRecoveries(c *gin.Context) {
	filter, err := recoveryFilterFromQuery(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	records, err := m.RecoveryService.List(filter)
	if err != nil {
		returnDomainError(err, c)
		return
	}

	c.JSON(200, records)
}

func (m ApiHandler) createRecovery(c *gin.Context) {
	var requestBody createRecoveryRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	storeID, err := uuid.Parse(requestBody.StoreID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid storeId: %w", err), c, 400)
		return
	}
	date, err := util.ParseISODate(requestBody.Date)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid date: %w", err), c, 400)
		return
	}

	createdBy, ok := userAccountID(c)
	if !ok {
		returnErrorJsonCode(fmt.Errorf("must be logged in to record a recovery"), c, 401)
		return
	}

	in := domain.RecoveryInput{
		StoreID:         storeID,
		Date:            date,
		ExpectedAmount:  requestBody.ExpectedAmount,
		RecoveredAmount: requestBody.RecoveredAmount,
		Expenses:        requestBody.Expenses,
		Observations:    requestBody.Observations,
	}
	if err := in.Validate(); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	record, err := m.RecoveryService.Create(in, createdBy)
	if err != nil {
		returnDomainError(err, c)
		return
	}

	c.JSON(201, record)
}

func (m ApiHandler) updateRecovery(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid id: %w", err), c, 400)
		return
	}

	var requestBody updateRecoveryRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	patch := service.RecoveryPatch{
		ExpectedAmount:  requestBody.ExpectedAmount,
		RecoveredAmount: requestBody.RecoveredAmount,
		Expenses:        requestBody.Expenses,
		Observations:    requestBody.Observations,
	}
	if requestBody.StoreID != nil {
		storeID, err := uuid.Parse(*requestBody.StoreID)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid storeId: %w", err), c, 400)
			return
		}
		patch.StoreID = &storeID
	}
	if requestBody.Date != nil {
		date, err := util.ParseISODate(*requestBody.Date)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid date: %w", err), c, 400)
			return
		}
		patch.Date = &date
	}

	record, err := m.RecoveryService.Update(id, patch)
	if err != nil {
		returnDomainError(err, c)
		return
	}

	c.JSON(200, record)
}

func (m ApiHandler) deleteRecovery(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid id: %w", err), c, 400)
		return
	}

	if err := m.RecoveryService.Delete(id); err != nil {
		returnDomainError(err, c)
		return
	}

	c.JSON(200, map[string]string{"message": "ok"})
}
