package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicbook-service/internal/app/config"
	"clinicbook-service/internal/app/delivery/http/controllers"
	"clinicbook-service/internal/app/delivery/http/middlewares"
	"clinicbook-service/internal/app/delivery/http/routers"
	"clinicbook-service/internal/app/drivers/database"
	"clinicbook-service/internal/app/drivers/logger"
	drivermailer "clinicbook-service/internal/app/drivers/mailer"
	"clinicbook-service/internal/app/drivers/messaging"
	"clinicbook-service/internal/app/services/core/appointments"
	"clinicbook-service/internal/app/services/core/bookings"
	"clinicbook-service/internal/app/services/core/schedules"
	"clinicbook-service/internal/app/services/core/session"
	"clinicbook-service/internal/app/services/shared/mailer"
	"clinicbook-service/internal/app/services/shared/payment_gateway"
	"clinicbook-service/internal/app/services/shared/redis"
	"clinicbook-service/internal/app/services/shared/staging"
	"clinicbook-service/internal/app/services/shared/video"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()

	err = bootstrapTheApp(consumerCtx, bootstrap, log)
	if err != nil {
		log.Fatalf("Failed to bootstrap application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	stopConsumer()
	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Failed to close application dependencies: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(ctx context.Context, bootstrap config.Bootstrap, log *logrus.Logger) error {
	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	stagingRepository := staging.NewStagingRepository(
		redisRepository,
		time.Duration(bootstrap.InternalConfig.Booking.StagingTTLInMinutes)*time.Minute,
	)
	gatewayService := payment_gateway.NewGatewayService(bootstrap.InternalConfig)
	videoCredentialService := video.NewVideoCredentialService(bootstrap.InternalConfig)

	smtpClient := drivermailer.NewSMTPClient(bootstrap.DriverConfig)
	mailerService, err := mailer.NewMailerService(smtpClient, bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQMailerQueue)
	if err != nil {
		return err
	}
	mailConsumer, err := mailer.NewMailConsumer(smtpClient, bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQMailerQueue, bootstrap.Logger)
	if err != nil {
		return err
	}
	go func() {
		err := mailConsumer.Run(ctx)
		if err != nil {
			log.Errorf("Mail consumer stopped: %v", err)
		}
	}()

	// Session
	sessionService := session.NewSessionService(redisRepository)

	// Middlewares
	middlewareStack := middlewares.NewMiddlewares(sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	bootstrap.Router.Use(middlewareStack.RequestIDMiddleware)
	bootstrap.Router.Use(middlewareStack.Logging(bootstrap.Logger))

	// Schedule
	scheduleMongoRepository := schedules.NewScheduleMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	scheduleUsecase := schedules.NewScheduleUsecase(scheduleMongoRepository, sessionService, bootstrap.Logger)
	scheduleController := controllers.NewScheduleController(scheduleUsecase, bootstrap.Logger)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	indexCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	err = appointmentMongoRepository.EnsureIndexes(indexCtx)
	if err != nil {
		return err
	}

	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		scheduleMongoRepository,
		sessionService,
		videoCredentialService,
		mailerService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(appointmentUsecase, bootstrap.Logger)

	// Booking
	bookingUsecase := bookings.NewBookingUsecase(
		stagingRepository,
		appointmentMongoRepository,
		scheduleMongoRepository,
		sessionService,
		gatewayService,
		videoCredentialService,
		mailerService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	bookingController := controllers.NewBookingController(bookingUsecase, bootstrap.Logger)
	webhookController := controllers.NewWebhookController(bookingUsecase, bootstrap.Logger)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareStack,
		scheduleController,
		appointmentController,
		bookingController,
		webhookController,
	)
	return nil
}
