package response

import (
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/utils"
)

type AuthResponse struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	User      utils.SessionUser `json:"user"`
}

// UserToSessionUser drops the password hash and formats dates for the wire.
func UserToSessionUser(user *entity.User) utils.SessionUser {
	su := utils.SessionUser{
		Phone:       user.Phone,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		DateOfBirth: utils.FormatWireDate(user.DateOfBirth),
		Email:       user.Email,
		Role:        string(user.Role),
	}
	if user.Gender != nil {
		su.Gender = *user.Gender
	}
	return su
}

func AuthToResponse(user *entity.User, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		User: UserToSessionUser(user),
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
