package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFlight(
	r chi.Router,
	flightHandler *adaptor.FlightHandler,
	service *usecase.Service,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /flights/search - search is open to guests
	r.Post("/flights/search", flightHandler.Search)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(service.Auth, log)).Post("/flights/book", flightHandler.Book)
}
