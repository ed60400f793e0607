package routers

import "github.com/go-chi/chi/v5"

func attachSlotRoutes(router chi.Router, routeConfig *RouteConfig) {
	router.Get("/slots", routeConfig.SlotController.GenerateSlots)
}
