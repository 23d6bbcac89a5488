package utils

import (
	"clinicbook-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateOrderID mints the token correlating a gateway transaction with its
// staged intent and, after confirmation, its appointment.
func GenerateOrderID() string {
	return uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GeneratePeriodID() string {
	return uuid.NewString()
}

func GenerateSlotID() string {
	return uuid.NewString()
}
