package main

import (
	bookinghandler "resortly/internal/bookings/handler"
	bookingrepo "resortly/internal/bookings/repository"
	bookingservice "resortly/internal/bookings/service"
	bookingvalidator "resortly/internal/bookings/validator"
	healthhandler "resortly/internal/health/handler"
	resorthandler "resortly/internal/resorts/handler"
	resortrepo "resortly/internal/resorts/repository"
	resortservice "resortly/internal/resorts/service"
	userhandler "resortly/internal/users/handler"
	userrepo "resortly/internal/users/repository"
	userservice "resortly/internal/users/service"
	uservalidator "resortly/internal/users/validator"
	"resortly/pkg/app"
	"resortly/pkg/config"
	"resortly/pkg/events"
)

const ServiceName = "resortly-api"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	publisher := initPublisher(cfg)

	cfg.Log.Info("Starting Resortly API")

	serverApp := app.NewApplication(cfg)
	serverApp.SetHandlers(
		healthhandler.NewHealthHandler(cfg.Client.Mongo, cfg.Log),
		userhandler.NewUserHandler(initUserService(cfg), cfg.Log),
		resorthandler.NewResortHandler(initResortService(cfg), cfg.Log),
		bookinghandler.NewBookingHandler(initBookingService(cfg, publisher), cfg.Log),
	)
	serverApp.OnShutdown(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	})
	serverApp.OnShutdown(cfg.GracefulShutdown)
	serverApp.Run()
}

func initPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("Kafka brokers not configured, booking events disabled")
		return events.NopPublisher{}
	}

	publisher, err := events.NewKafkaPublisher(events.KafkaConfig{
		Brokers:     cfg.KafkaBrokers,
		Topic:       cfg.KafkaTopic,
		MaxAttempts: cfg.KafkaMaxAttempts,
	}, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka publisher", "error", err)
	}

	cfg.Log.Info("Kafka publisher initialized", "topic", cfg.KafkaTopic)
	return publisher
}

func initUserService(cfg *config.Config) userservice.UserService {
	repo := userrepo.NewMongoUserRepository(cfg)
	v := uservalidator.NewUserValidator(cfg.Log)
	return userservice.NewUserService(repo, v, cfg)
}

func initResortService(cfg *config.Config) resortservice.ResortService {
	repo := resortrepo.NewMongoResortRepository(cfg)
	return resortservice.NewResortService(repo, cfg)
}

func initBookingService(cfg *config.Config, publisher events.Publisher) bookingservice.BookingService {
	repo := bookingrepo.NewMongoBookingRepository(cfg)
	v := bookingvalidator.NewBookingValidator(cfg.Log)
	return bookingservice.NewBookingService(repo, v, publisher, cfg)
}
