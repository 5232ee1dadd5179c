package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Flight  *FlightHandler
	Hotel   *HotelHandler
	Contact *ContactHandler
	Account *AccountHandler
	Admin   *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Flight:  NewFlightHandler(service.Flight, log),
		Hotel:   NewHotelHandler(service.Hotel, log),
		Contact: NewContactHandler(service.Contact, log),
		Account: NewAccountHandler(service.Account, service.Itinerary, log),
		Admin:   NewAdminHandler(service.Catalog, service.Report, service.Contact, log),
	}
}

// decodeAndValidate reads a JSON body into req and runs its struct tags.
// It writes the 400 response itself and reports whether the handler may go on.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}

	return true
}

// sessionUser returns the caller set by AuthSession, writing 401 when absent.
func sessionUser(w http.ResponseWriter, r *http.Request) (utils.SessionUser, bool) {
	user, ok := utils.GetSessionUser(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
	}
	return user, ok
}

// handleServiceError maps usecase errors onto HTTP responses
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, usecase.ErrInvalidCredentials.Error())

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrBookingFailed):
		log.Warn(operation+" failed - booking rolled back", zap.Error(err))
		utils.ResponseConflict(w, usecase.ErrBookingFailed.Error())

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
