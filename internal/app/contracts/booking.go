package contracts

import (
	"context"

	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
)

// StagingRepository is the explicit keyed TTL store for staged booking
// intents, keyed by order id. The primary store transaction remains the
// source of truth for slot state; this cache only carries intent.
type StagingRepository interface {
	Save(ctx context.Context, intent *models.StagedBookingIntent) error
	Find(ctx context.Context, orderID string) (*models.StagedBookingIntent, error)
	Evict(ctx context.Context, orderID string) error
}

// BookingUsecase drives the staged payment-booking state machine. Confirm is
// the single idempotent handler shared by the browser redirect callback and
// the gateway webhook.
type BookingUsecase interface {
	InitiatePayment(ctx context.Context, sessionData string, request *requests.InitiatePaymentRequest) (*responses.InitiatePayment, error)
	ConfirmPayment(ctx context.Context, orderID string) (*responses.Appointment, error)
	HandlePaymentNotification(ctx context.Context, request *requests.PaymentNotificationRequest) error
}
