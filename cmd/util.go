package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"recouvra/api"
	"recouvra/internal"
	"recouvra/internal/cache"
	"recouvra/internal/feed"
	"recouvra/internal/repository"
	"recouvra/internal/service"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	recoveryRepository := repository.NewRecoveryRepository()
	storeRepository := repository.NewStoreRepository()
	storeOwnerRepository := repository.NewStoreOwnerRepository()
	userRoleRepository := repository.NewUserRoleRepository()

	changeFeed := feed.New()
	resultCache := cache.New()

	recoveryService := service.NewRecoveryService(dbConn, recoveryRepository, changeFeed)
	dashboardService := service.NewDashboardService(
		dbConn,
		recoveryRepository,
		storeRepository,
		resultCache,
		changeFeed,
	)

	apiHandler := &api.ApiHandler{
		Db:                   dbConn,
		JwtDecodeToken:       secrets.SupabaseJwtSecret,
		RecoveryService:      recoveryService,
		DashboardService:     dashboardService,
		StoreRepository:      storeRepository,
		StoreOwnerRepository: storeOwnerRepository,
		UserRoleRepository:   userRoleRepository,
		ApiRequestRepository: repository.ApiRequestRepositoryHandler{},
	}

	return apiHandler, nil
}
