package adaptor

import (
	"net/http"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type FlightHandler struct {
	service usecase.FlightService
	log     *zap.Logger
}

func NewFlightHandler(service usecase.FlightService, log *zap.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log.With(zap.String("handler", "flight")),
	}
}

// Search handles POST /flights/search
func (h *FlightHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req request.FlightSearchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	flights, err := h.service.SearchFlights(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "search flights")
		return
	}

	utils.ResponseSuccess(w, "success", flights)
}

// Book handles POST /flights/book (protected)
func (h *FlightHandler) Book(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	var req request.BookFlightRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	booking, err := h.service.BookFlight(r.Context(), user, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "book flight")
		return
	}

	utils.ResponseCreated(w, "Flight booked", booking)
}
