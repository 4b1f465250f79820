package api

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"recouvra/internal/db/models/postgres/public/model"
	"recouvra/internal/domain"
	"recouvra/internal/logger"
	"recouvra/internal/repository"
	"recouvra/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                   *sql.DB
	JwtDecodeToken       string
	RecoveryService      service.RecoveryService
	DashboardService     service.DashboardService
	StoreRepository      repository.StoreRepository
	StoreOwnerRepository repository.StoreOwnerRepository
	UserRoleRepository   repository.UserRoleRepository
	ApiRequestRepository repository.ApiRequestRepository
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to recouvra"})
	})

	authed := router.Group("/", m.authMiddleware)
	authed.GET("/recoveries", m.listRecoveries)
	authed.GET("/stores", m.listStores)
	authed.GET("/storeOwners", m.listStoreOwners)
	authed.GET("/ownerProfiles", m.listOwnerProfiles)
	authed.GET("/dashboardStats", m.getDashboardStats)
	authed.GET("/monthlyArchive", m.getMonthlyArchive)
	authed.GET("/storeInsights", m.getStoreInsights)
	authed.GET("/export", m.exportMonth)

	admin := authed.Group("/", m.requireMutate)
	admin.POST("/recoveries", m.createRecovery)
	admin.PATCH("/recoveries/:id", m.updateRecovery)
	admin.DELETE("/recoveries/:id", m.deleteRecovery)
	admin.POST("/stores", m.createStore)
	admin.PATCH("/stores/:id", m.updateStore)
	admin.DELETE("/stores/:id", m.deactivateStore)
	admin.POST("/storeOwners", m.assignStoreOwner)
	admin.DELETE("/storeOwners/:id", m.removeStoreOwner)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnDomainError maps the domain sentinels onto status codes; anything
// unrecognized is a 500.
func returnDomainError(err error, c *gin.Context) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		returnErrorJsonCode(err, c, 404)
	case errors.Is(err, domain.ErrAlreadyAssigned):
		returnErrorJsonCode(err, c, 409)
	case errors.Is(err, domain.ErrNoRecords):
		returnErrorJsonCode(err, c, 404)
	default:
		returnErrorJson(err, c)
	}
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	ctx.Set(logger.ContextKey, zap.S().With(
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
	))

	body, err := ctx.GetRawData()
	if err != nil {
		zap.S().Warnf("failed to get raw data: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	var requestBody *string
	if len(body) > 0 {
		requestBody = strPtr(string(body))
	}

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: requestBody,
		StartTs:     start,
	})
	if err != nil {
		zap.S().Warn(err)
	}

	ctx.Next()

	if req != nil {
		// the auth middleware runs after this one, so the user is only
		// known on the way out
		if userID, ok := userAccountID(ctx); ok {
			req.UserID = &userID
		}
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			zap.S().Warn(err)
		}
	}
}
