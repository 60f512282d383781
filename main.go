package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"techservice-backend/controller"
	"techservice-backend/dal"
	_ "techservice-backend/docs"
	"techservice-backend/middelware"
	"techservice-backend/models"
	"techservice-backend/repository"
	"techservice-backend/services"
	"techservice-backend/utils"
	"techservice-backend/utils/logger"
	"techservice-backend/worker"
	"time"

	"github.com/gin-gonic/gin"
)

var config *models.Config

func Init() {
	var err error
	config, err = utils.GetConfig()
	if err != nil {
		log.Fatal(err)
	}
}

// @title Tech Service Backend API
// @version 1.0
// @description Service request lifecycle, technician workflow and analytics API
// @description
// @description ## Authentication
// @description 1. **POST /auth/register** creates a customer account (no token is issued)
// @description 2. **POST /auth/login** returns a bearer token
// @description 3. Use the login bar above the operations, or paste `Bearer YOUR_TOKEN` into the Authorize dialog

// @host localhost:8081
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Enter 'Bearer' [space] and then your token.
func main() {
	Init()

	appLogger := logger.NewLogger(config.LogLevel, config.LogFormat)
	appLogger.Infof("Starting %s %s (%s)", config.AppName, config.AppVersion, config.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dalContainer, err := dal.NewDALContainer(config, appLogger)
	if err != nil {
		appLogger.Fatalf("Failed to initialize DynamoDB client: %v", err)
	}
	db := dalContainer.GetDatabaseClient()
	repos := repository.NewRepository(db, config, appLogger)

	notifier := services.NewNotifier(config, appLogger)

	// Table provisioning worker
	var workerStatus services.WorkerStatusProvider
	var infraWorker *worker.Worker
	if config.WorkerEnabled {
		infraWorker, err = worker.NewWorker(config, db, appLogger)
		if err != nil {
			appLogger.Fatalf("Failed to create infrastructure worker: %v", err)
		}
		if err := infraWorker.Start(); err != nil {
			appLogger.Fatalf("Failed to start infrastructure worker: %v", err)
		}
		workerStatus = infraWorker
	} else {
		appLogger.Warn("Infrastructure worker disabled by configuration")
	}

	var notificationServer *worker.NotificationServer
	if config.RedisAddr != "" {
		notificationServer = worker.NewNotificationServer(config, appLogger)
		if err := notificationServer.Start(); err != nil {
			appLogger.Fatalf("Failed to start notification consumer: %v", err)
		}
	}

	svc := services.NewService(repos, notifier, workerStatus, appLogger, config)
	jwtManager := middelware.NewJWTManager(config, appLogger, repos.GetUserRepository())

	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	controller.NewController(ctx, config, svc, jwtManager, appLogger).RegisterRoutes(r, config.BasePath)

	srv := &http.Server{
		Addr:              config.AppHost + ":" + config.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Infof("Starting server on %s:%s", config.AppHost, config.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("HTTP server shutdown: %v", err)
	}
	if infraWorker != nil {
		if err := infraWorker.Stop(); err != nil {
			appLogger.Errorf("Worker shutdown: %v", err)
		}
	}
	if notificationServer != nil {
		notificationServer.Shutdown()
	}
	if err := notifier.Close(); err != nil {
		appLogger.Errorf("Notifier shutdown: %v", err)
	}
	appLogger.Info("Shutdown complete")
}
