package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospicare-service/internal/app/config"
	"hospicare-service/internal/app/delivery/http/middlewares"
	"hospicare-service/internal/app/delivery/http/routers"
	"hospicare-service/internal/app/drivers/database"
	"hospicare-service/internal/app/drivers/logger"
	"hospicare-service/internal/app/drivers/messaging"
	"hospicare-service/internal/app/services/core/appointments"
	"hospicare-service/internal/app/services/core/doctors"
	"hospicare-service/internal/app/services/core/patients"
	"hospicare-service/internal/app/services/core/schedules"
	"hospicare-service/internal/app/services/core/slots"
	"hospicare-service/internal/app/services/shared/locker"
	"hospicare-service/internal/app/services/shared/notifications"
	sharedredis "hospicare-service/internal/app/services/shared/redis"

	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Failed to load timezone %s: %v", internalConfig.App.Timezone, err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConnection := messaging.NewRabbitMQ(driverConfig)

	redisRepository := sharedredis.NewRedisRepository(redisClient)
	lockerService := locker.NewLockerService(redisRepository)
	notificationSink, err := notifications.NewNotificationService(
		rabbitConnection,
		internalConfig.Scheduling.NotificationQueue,
		internalConfig.Scheduling.NotificationPublishPerSecond,
	)
	if err != nil {
		logrus.Fatalf("Failed to initialize notification queue: %v", err)
	}

	doctorRepository := doctors.NewDoctorMongoRepository(mongoClient, driverConfig.MongoDB.DbName)
	patientRepository := patients.NewPatientMongoRepository(mongoClient, driverConfig.MongoDB.DbName)

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	appointmentRepository, err := appointments.NewAppointmentMongoRepository(indexCtx, mongoClient, driverConfig.MongoDB.DbName)
	cancelIndex()
	if err != nil {
		logrus.Fatalf("Failed to initialize appointment indexes: %v", err)
	}

	calendar := schedules.NewBusinessHoursCalendar(doctorRepository, redisRepository, internalConfig, zapLogger)
	conflictChecker := appointments.NewConflictChecker(appointmentRepository)

	scheduleUsecase := schedules.NewScheduleUsecase(doctorRepository, redisRepository, zapLogger)
	slotUsecase := slots.NewSlotUsecase(doctorRepository, appointmentRepository, calendar, zapLogger)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		doctorRepository,
		patientRepository,
		appointmentRepository,
		conflictChecker,
		calendar,
		lockerService,
		notificationSink,
		internalConfig,
		zapLogger,
	)

	appMiddlewares := middlewares.NewMiddlewares(zapLogger, internalConfig, redisRepository)
	router := routers.NewRouter(&routers.RouteConfig{
		InternalConfig:        internalConfig,
		Middlewares:           appMiddlewares,
		ScheduleController:    schedules.NewScheduleController(zapLogger, internalConfig, scheduleUsecase),
		SlotController:        slots.NewSlotController(zapLogger, internalConfig, slotUsecase),
		AppointmentController: appointments.NewAppointmentController(zapLogger, internalConfig, appointmentUsecase),
	})

	bootstrap := &config.Bootstrap{
		Router:         router,
		MongoDB:        mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitConnection,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: router,
	}

	go func() {
		logrus.Infof("Server starting on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), time.Duration(internalConfig.App.ShutdownTimeoutInSeconds)*time.Second)
	defer cancelShutdown()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}
	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Errorf("Failed to close drivers: %v", err)
	}
	logrus.Info("Server exited")
}
