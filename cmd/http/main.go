package main

import (
	"context"
	"errors"
	"interview-scheduler/internal/app/config"
	"interview-scheduler/internal/app/delivery/http/controllers"
	"interview-scheduler/internal/app/delivery/http/middlewares"
	"interview-scheduler/internal/app/delivery/http/routers"
	"interview-scheduler/internal/app/drivers/database"
	"interview-scheduler/internal/app/drivers/logger"
	"interview-scheduler/internal/app/drivers/messaging"
	"interview-scheduler/internal/app/drivers/storage"
	"interview-scheduler/internal/app/services/core/appointments"
	"interview-scheduler/internal/app/services/shared/events"
	"interview-scheduler/internal/app/services/shared/locker"
	"interview-scheduler/internal/app/services/shared/redis"
	"interview-scheduler/internal/app/services/shared/seed"
	minioStorage "interview-scheduler/internal/app/services/shared/storage"
	"interview-scheduler/internal/pkg/constvars"
	"interview-scheduler/internal/pkg/utils"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	logger := logger.NewZapLogger(driverConfig, internalConfig)
	utils.ExposeErrorDetails(internalConfig.App.Env != constvars.AppEnvProduction)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        database.NewMongoDB(driverConfig, logger),
		Redis:          database.NewRedisClient(driverConfig, logger),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig, logger),
		Minio:          storage.NewMinio(driverConfig, internalConfig.Minio.BucketName, logger),
		Logger:         logger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		logger.Fatal("Error bootstraping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		logger.Info("Server started", zap.String("port", internalConfig.App.Port), zap.String("env", internalConfig.App.Env))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// RabbitMQ
	eventPublisher, err := events.NewAppointmentEventPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.AppointmentEventsQueue,
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}

	// Minio
	avatarStorage := minioStorage.NewMinioStorage(bootstrap.Minio, bootstrap.InternalConfig.Minio.BucketName)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		redisRepository,
		lockService,
		eventPublisher,
		avatarStorage,
		seed.NewCSVSeedSource(bootstrap.InternalConfig.Schedule.SeedDirectory),
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, appointmentController)
	return nil
}
