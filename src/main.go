package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kertapati/horizon-sub000/src/config"
	"github.com/kertapati/horizon-sub000/src/database"
	"github.com/kertapati/horizon-sub000/src/infrastructure/repository"
	"github.com/kertapati/horizon-sub000/src/interface/handler"
	"github.com/kertapati/horizon-sub000/src/logger"
	"github.com/kertapati/horizon-sub000/src/routes"
	"github.com/kertapati/horizon-sub000/src/service"
	"github.com/kertapati/horizon-sub000/src/storage"
	"github.com/kertapati/horizon-sub000/src/usecase"
)

func main() {
	cfg := config.LoadConfig()

	if err := logger.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.CloseLogger()
	logger.SetLevel(cfg.Log.Level)

	logger.Log.Info("starting horizon api server")

	db, err := database.NewDB(&database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	}, logger.Log)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	// log shipping to S3 when enabled
	var uploader *storage.LogUploader
	if cfg.Log.UploadEnabled {
		s3Config := &storage.S3Config{
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			Region:          cfg.S3.Region,
			Bucket:          cfg.S3.Bucket,
			UseSSL:          cfg.S3.UseSSL,
		}

		uploader, err = storage.NewLogUploader(s3Config, logger.Log)
		if err != nil {
			logger.Log.WithError(err).Error("failed to initialize S3 uploader")
		} else {
			uploader.StartPeriodicUpload(cfg.Log.Directory, cfg.Log.UploadInterval, cfg.Log.UploadMaxAge)
		}
	}

	itemRepo := repository.NewItemRepository(db, logger.Log)
	noteRepo := repository.NewYearNoteRepository(db, logger.Log)
	userRepo := repository.NewUserRepository(db, logger.Log)

	jwtService := service.NewJWTService(cfg)
	authService := service.NewAuthService(userRepo, jwtService)

	itemUsecase := usecase.NewItemUsecase(itemRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(itemRepo, logger.Log)
	noteUsecase := usecase.NewYearNoteUsecase(noteRepo)

	handlers := routes.Handlers{
		Item:      handler.NewItemHandler(itemUsecase, logger.Log),
		Dashboard: handler.NewDashboardHandler(dashboardUsecase, logger.Log),
		YearNote:  handler.NewYearNoteHandler(noteUsecase, logger.Log),
		Auth:      handler.NewAuthHandler(authService, logger.Log),
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.NoRoute(func(c *gin.Context) {
		logger.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"uri":       c.Request.RequestURI,
			"client_ip": c.ClientIP(),
		}).Warn("route not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	routes.SetupRoutes(r, handlers, jwtService, userRepo)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Log.WithField("port", cfg.Server.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.WithError(err).Fatal("server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Error("graceful shutdown failed")
	}

	// ship remaining logs before exit
	if uploader != nil {
		if err := uploader.UploadOldLogs(cfg.Log.Directory, 0); err != nil {
			logger.Log.WithError(err).Error("final log upload failed")
		}
	}

	logger.Log.Info("server stopped")
}
