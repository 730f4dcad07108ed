package server

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Finaxis002/FCOBackend/internal/config"
	"github.com/Finaxis002/FCOBackend/internal/database"
	hrest "github.com/Finaxis002/FCOBackend/internal/handler/http"
	wshandler "github.com/Finaxis002/FCOBackend/internal/handler/ws"
	"github.com/Finaxis002/FCOBackend/internal/repository"
	"github.com/Finaxis002/FCOBackend/internal/router"
	"github.com/Finaxis002/FCOBackend/internal/usecase"
	"github.com/Finaxis002/FCOBackend/pkg/ws"
)

func NewServer(cfg config.AppConfig) *http.Server {
	logger, _ := zap.NewProduction()

	// --- Schema ---
	if err := database.Migrate(); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	// --- DB connection ---
	dbpool, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// --- Redis ---
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	// --- Repos ---
	caseRepo := repository.NewCaseRepository(dbpool)
	userRepo := repository.NewUserRepository(dbpool)
	adminRepo := repository.NewAdminRepository(dbpool)
	notifRepo := repository.NewNotificationRepository(dbpool)
	catalogRepo := repository.NewServiceCatalogRepository(dbpool)
	remarkRepo := repository.NewRemarkRepository(dbpool)

	// --- WS manager and handler ---
	wsManager := ws.NewManager(logger)
	go wsManager.Heartbeat(30 * time.Second)
	wsHandler := wshandler.NewWSHandler(wsManager, logger)

	// --- Usecases ---
	resolver := usecase.NewAssignmentResolver(userRepo)
	fanout := usecase.NewFanout(notifRepo, wsManager, logger)
	caseUC := usecase.NewCaseUsecase(caseRepo, adminRepo, resolver, fanout, logger)
	notifUC := usecase.NewNotificationUsecase(notifRepo)
	userUC := usecase.NewUserUsecase(userRepo)
	serviceUC := usecase.NewServiceUsecase(catalogRepo, remarkRepo)

	// --- Handlers ---
	caseHandler := hrest.NewCaseHandler(caseUC, logger)
	userHandler := hrest.NewUserHandler(userUC, logger)
	notifHandler := hrest.NewNotificationHandler(notifUC, logger)
	serviceHandler := hrest.NewServiceHandler(serviceUC, logger)

	// --- HTTP routes ---
	r := chi.NewRouter()
	router.SetupRoutes(r, caseHandler, userHandler, notifHandler, serviceHandler, wsHandler, rdb)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}
}
