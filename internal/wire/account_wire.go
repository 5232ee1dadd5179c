package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAccount(
	r chi.Router,
	accountHandler *adaptor.AccountHandler,
	service *usecase.Service,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	// every lookup is scoped to the signed-in user
	r.Route("/account", func(r chi.Router) {
		r.Use(middleware.AuthSession(service.Auth, log))

		r.Get("/profile", accountHandler.Profile)
		r.Get("/bookings", accountHandler.Bookings)
		r.Get("/bookings/range", accountHandler.Range)
		r.Get("/bookings/flights/{id}/passengers", accountHandler.Passengers)
		r.Get("/bookings/flights/{id}/itinerary", accountHandler.Itinerary)
		r.Get("/flights", accountHandler.FlightsBySSN)
	})
}
