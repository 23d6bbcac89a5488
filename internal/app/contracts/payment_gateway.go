package contracts

import (
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
)

type PaymentGatewayService interface {
	BuildCheckout(orderID string, amount float64, customerEmail string) *responses.GatewayCheckout
	VerifyNotificationSignature(request *requests.PaymentNotificationRequest) error
	IsSuccessStatus(statusCode string) bool
}
