package routers

import "github.com/go-chi/chi/v5"

func attachAppointmentRoutes(router chi.Router, routeConfig *RouteConfig) {
	router.Route("/appointments", func(r chi.Router) {
		r.Use(routeConfig.Middlewares.Authenticate)
		r.Post("/", routeConfig.AppointmentController.CreateAppointment)
		r.Get("/", routeConfig.AppointmentController.FindAll)
		r.Patch("/{appointmentID}/complete", routeConfig.AppointmentController.CompleteAppointment)
		r.Patch("/{appointmentID}/cancel", routeConfig.AppointmentController.CancelAppointment)
	})
}
