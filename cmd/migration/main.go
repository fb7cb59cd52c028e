package main

import (
	"context"
	"interview-scheduler/internal/app/config"
	"interview-scheduler/internal/app/contracts"
	"interview-scheduler/internal/app/drivers/database"
	"interview-scheduler/internal/app/drivers/logger"
	"interview-scheduler/internal/app/services/core/appointments"
	"interview-scheduler/internal/app/services/shared/seed"
	"interview-scheduler/internal/pkg/utils"
	"log"
	"time"

	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	logger := logger.NewZapLogger(driverConfig, internalConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoClient := database.NewMongoDB(driverConfig, logger)
	defer func() {
		err := mongoClient.Disconnect(context.Background())
		if err != nil {
			log.Printf("Error disconnecting MongoDB: %v", err)
		}
	}()

	repository := appointments.NewAppointmentMongoRepository(mongoClient, driverConfig.MongoDB.DbName)
	seedSource := seed.NewCSVSeedSource(internalConfig.Schedule.SeedDirectory)

	err := run(ctx, seedSource, repository, logger)
	if err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}
}

// run replaces every stored day, appointment and interviewer with the seed.
func run(ctx context.Context, seedSource contracts.SeedSource, repository contracts.AppointmentRepository, logger *zap.Logger) error {
	schedule, err := seedSource.LoadSeed(ctx)
	if err != nil {
		return err
	}

	err = utils.TimedStep(logger, "migration replace schedule", "", func() error {
		return repository.ReplaceSchedule(ctx, schedule)
	})
	if err != nil {
		return err
	}

	booked := 0
	for _, appointment := range schedule.Appointments {
		if appointment.IsBooked() {
			booked++
		}
	}

	logger.Info("Schedule seeded",
		zap.Int("days", len(schedule.Days)),
		zap.Int("appointments", len(schedule.Appointments)),
		zap.Int("booked", booked),
		zap.Int("interviewers", len(schedule.Interviewers)),
	)
	return nil
}
