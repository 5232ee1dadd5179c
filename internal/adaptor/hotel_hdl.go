package adaptor

import (
	"net/http"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type HotelHandler struct {
	service usecase.HotelService
	log     *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log.With(zap.String("handler", "hotel")),
	}
}

// Search handles POST /hotels/search
func (h *HotelHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req request.HotelSearchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	hotels, err := h.service.SearchHotels(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "search hotels")
		return
	}

	utils.ResponseSuccess(w, "success", hotels)
}

// Book handles POST /hotels/book (protected)
func (h *HotelHandler) Book(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	var req request.BookHotelRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	booking, err := h.service.BookHotel(r.Context(), user, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "book hotel")
		return
	}

	utils.ResponseCreated(w, "Hotel booked", booking)
}
