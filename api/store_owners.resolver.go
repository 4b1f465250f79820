package api

import (
	"fmt"

	"recouvra/internal/db/models/postgres/public/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type assignStoreOwnerRequest struct {
	StoreID string `json:"storeId"`
	UserID  string `json:"userId"`
}

func (m ApiHandler) listStoreOwners(c *gin.Context) {
	var storeID *uuid.UUID
	if v := c.Query("storeId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid storeId: %w", err), c, 400)
			return
		}
		storeID = &id
	}

	owners, err := m.StoreOwnerRepository.List(m.Db, storeID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, owners)
}

func (m ApiHandler) assignStoreOwner(c *gin.Context) {
	var requestBody assignStoreOwnerRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	storeID, err := uuid.Parse(requestBody.StoreID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid storeId: %w", err), c, 400)
		return
	}
	userID, err := uuid.Parse(requestBody.UserID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid userId: %w", err), c, 400)
		return
	}

	assignment, err := m.StoreOwnerRepository.Assign(m.Db, model.StoreOwners{
		StoreID: storeID,
		UserID:  userID,
	})
	if err != nil {
		// duplicate pair surfaces as a conflict
		returnDomainError(err, c)
		return
	}

	c.JSON(201, assignment)
}

func (m ApiHandler) removeStoreOwner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid id: %w", err), c, 400)
		return
	}

	if err := m.StoreOwnerRepository.Remove(m.Db, id); err != nil {
		returnDomainError(err, c)
		return
	}

	c.JSON(200, map[string]string{"message": "ok"})
}
