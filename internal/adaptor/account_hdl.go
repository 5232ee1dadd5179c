package adaptor

import (
	"net/http"

	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AccountHandler struct {
	service   usecase.AccountService
	itinerary usecase.ItineraryService
	log       *zap.Logger
}

func NewAccountHandler(service usecase.AccountService, itinerary usecase.ItineraryService, log *zap.Logger) *AccountHandler {
	return &AccountHandler{
		service:   service,
		itinerary: itinerary,
		log:       log.With(zap.String("handler", "account")),
	}
}

// Profile handles GET /account/profile
func (h *AccountHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// Bookings handles GET /account/bookings
func (h *AccountHandler) Bookings(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	bookings, err := h.service.Bookings(r.Context(), user)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// Passengers handles GET /account/bookings/flights/{id}/passengers
func (h *AccountHandler) Passengers(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	tickets, err := h.service.Passengers(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list passengers")
		return
	}

	utils.ResponseSuccess(w, "success", tickets)
}

// Itinerary handles GET /account/bookings/flights/{id}/itinerary
func (h *AccountHandler) Itinerary(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	bookingID := chi.URLParam(r, "id")
	pdf, err := h.itinerary.FlightItinerary(r.Context(), user, bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "render itinerary")
		return
	}

	utils.ResponseFile(w, "application/pdf", "itinerary-"+bookingID+".pdf", pdf)
}

// Range handles GET /account/bookings/range?from=MM-DD-YYYY&to=MM-DD-YYYY
func (h *AccountHandler) Range(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	activity, err := h.service.BookingsInRange(r.Context(), user, query.Get("from"), query.Get("to"))
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings in range")
		return
	}

	utils.ResponseSuccess(w, "success", activity)
}

// FlightsBySSN handles GET /account/flights?ssn=
func (h *AccountHandler) FlightsBySSN(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	flights, err := h.service.FlightsBySSN(r.Context(), user, r.URL.Query().Get("ssn"))
	if err != nil {
		handleServiceError(w, h.log, err, "list flights by ssn")
		return
	}

	utils.ResponseSuccess(w, "success", flights)
}
