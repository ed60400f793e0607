package routers

import (
	"time"

	"hospicare-service/internal/app/config"
	"hospicare-service/internal/app/delivery/http/middlewares"
	"hospicare-service/internal/app/services/core/appointments"
	"hospicare-service/internal/app/services/core/schedules"
	"hospicare-service/internal/app/services/core/slots"
	"hospicare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type RouteConfig struct {
	InternalConfig        *config.InternalConfig
	Middlewares           *middlewares.Middlewares
	ScheduleController    *schedules.ScheduleController
	SlotController        *slots.SlotController
	AppointmentController *appointments.AppointmentController
}

func NewRouter(routeConfig *RouteConfig) *chi.Mux {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(httprate.LimitByIP(routeConfig.InternalConfig.App.MaxRequests, 1*time.Minute))
	router.Use(routeConfig.Middlewares.RequestID)
	router.Use(routeConfig.Middlewares.Logging)

	router.Route(routeConfig.InternalConfig.App.EndpointPrefix, func(r chi.Router) {
		attachScheduleRoutes(r, routeConfig)
		attachSlotRoutes(r, routeConfig)
		attachAppointmentRoutes(r, routeConfig)
	})
	return router
}
