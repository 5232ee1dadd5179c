package adaptor

import (
	"net/http"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type ContactHandler struct {
	service usecase.ContactService
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log.With(zap.String("handler", "contact")),
	}
}

// Submit handles POST /contacts (protected)
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	var req request.ContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	contact, err := h.service.Submit(r.Context(), user, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit contact")
		return
	}

	utils.ResponseCreated(w, "Thank you for contacting us", contact)
}
