package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	service *usecase.Service,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/admin", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(service.Auth, log))
		r.Use(middleware.Admin(log))

		r.Post("/flights/load", adminHandler.LoadFlights)
		r.Post("/hotels/load", adminHandler.LoadHotels)
		r.Get("/flights/export", adminHandler.ExportFlights)
		r.Get("/hotels/export", adminHandler.ExportHotels)

		r.Get("/reports", adminHandler.Reports)
		r.Get("/reports/{name}", adminHandler.Report)

		r.Get("/contacts", adminHandler.Contacts)
		r.Get("/stats", adminHandler.Stats)
	})
}
