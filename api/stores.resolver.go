package api

import (
	"fmt"

	"recouvra/internal/db/models/postgres/public/model"
	"recouvra/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type storeRequest struct {
	Name    string  `json:"name"`
	Code    string  `json:"code"`
	Address *string `json:"address"`
}

// updateStoreRequest is a partial update; absent fields keep their current
// value, mirroring the recovery patch semantics.
type updateStoreRequest struct {
	Name    *string `json:"name"`
	Code    *string `json:"code"`
	Address *string `json:"address"`
}

func mergeStorePatch(existing domain.Store, patch updateStoreRequest) domain.StoreInput {
	in := domain.StoreInput{
		Name:    existing.Name,
		Code:    existing.Code,
		Address: existing.Address,
	}
	if patch.Name != nil {
		in.Name = *patch.Name
	}
	if patch.Code != nil {
		in.Code = *patch.Code
	}
	if patch.Address != nil {
		in.Address = patch.Address
	}
	return in
}

func (m ApiHandler) listStores(c *gin.Context) {
	stores, err := m.StoreRepository.ListActive(m.Db)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	// owners only see the stores assigned to them
	if scope := scopeStoreIDs(c); scope != nil {
		inScope := map[uuid.UUID]bool{}
		for _, id := range scope {
			inScope[id] = true
		}
		filtered := []domain.Store{}
		for _, s := range stores {
			if inScope[s.ID] {
				filtered = append(filtered, s)
			}
		}
		stores = filtered
	}

	c.JSON(200, stores)
}

func (m ApiHandler) createStore(c *gin.Context) {
	var requestBody storeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	in := domain.StoreInput{
		Name:    requestBody.Name,
		Code:    requestBody.Code,
		Address: requestBody.Address,
	}
	if err := in.Validate(); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	store, err := m.StoreRepository.Add(m.Db, model.Stores{
		Name:    in.Name,
		Code:    in.Code,
		Address: in.Address,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(201, store)
}

func (m ApiHandler) updateStore(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid id: %w", err), c, 400)
		return
	}

	var requestBody updateStoreRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	existing, err := m.StoreRepository.Get(m.Db, id)
	if err != nil {
		returnDomainError(err, c)
		return
	}

	in := mergeStorePatch(*existing, requestBody)
	if err := in.Validate(); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	store, err := m.StoreRepository.Update(m.Db, model.Stores{
		ID:      id,
		Name:    in.Name,
		Code:    in.Code,
		Address: in.Address,
	})
	if err != nil {
		returnDomainError(err, c)
		return
	}

	c.JSON(200, store)
}

// deactivateStore is a soft delete. The store drops out of pickers and new
// entry, but its historical records keep aggregating.
func (m ApiHandler) deactivateStore(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid id: %w", err), c, 400)
		return
	}

	if err := m.StoreRepository.Deactivate(m.Db, id); err != nil {
		returnDomainError(err, c)
		return
	}

	c.JSON(200, map[string]string{"message": "ok"})
}
