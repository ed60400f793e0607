package routers

import "github.com/go-chi/chi/v5"

func attachScheduleRoutes(router chi.Router, routeConfig *RouteConfig) {
	router.Route("/schedules", func(r chi.Router) {
		r.With(routeConfig.Middlewares.Authenticate).Put("/", routeConfig.ScheduleController.UpsertWeeklySchedule)
		r.Get("/{doctorID}", routeConfig.ScheduleController.GetWeeklySchedule)
	})
}
