package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== BUSINESS IDS ====================

const (
	PrefixFlightBooking = "FB"
	PrefixTicket        = "TK"
	PrefixHotelBooking  = "HB"
	PrefixContact       = "CNT"
)

// GenerateID returns prefix followed by 12 upper-case hex digits of a random UUID.
// Format: FB3F9A0C12B7E4
func GenerateID(prefix string) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return prefix + strings.ToUpper(hex[:12])
}
