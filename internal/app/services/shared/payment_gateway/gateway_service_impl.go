package payment_gateway

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"clinicbook-service/internal/app/config"
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
	"clinicbook-service/internal/pkg/exceptions"
)

type gatewayService struct {
	CheckoutUrl    string
	MerchantID     string
	MerchantSecret string
	Currency       string
	ReturnUrl      string
	CancelUrl      string
	NotifyUrl      string
}

func NewGatewayService(internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	return &gatewayService{
		CheckoutUrl:    internalConfig.PaymentGateway.CheckoutUrl,
		MerchantID:     internalConfig.PaymentGateway.MerchantID,
		MerchantSecret: internalConfig.PaymentGateway.MerchantSecret,
		Currency:       internalConfig.PaymentGateway.Currency,
		ReturnUrl:      internalConfig.PaymentGateway.ReturnUrl,
		CancelUrl:      internalConfig.PaymentGateway.CancelUrl,
		NotifyUrl:      internalConfig.PaymentGateway.NotifyUrl,
	}
}

func md5Upper(value string) string {
	sum := md5.Sum([]byte(value))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// The gateway requires the amount rendered with exactly two decimals, both in
// the checkout hash and the notification signature.
func (s *gatewayService) formatAmount(amount float64) string {
	return fmt.Sprintf(constvars.PaymentAmountFormat, amount)
}

func (s *gatewayService) BuildCheckout(orderID string, amount float64, customerEmail string) *responses.GatewayCheckout {
	formattedAmount := s.formatAmount(amount)
	hash := md5Upper(s.MerchantID + orderID + formattedAmount + s.Currency + md5Upper(s.MerchantSecret))

	return &responses.GatewayCheckout{
		CheckoutURL: s.CheckoutUrl,
		Fields: map[string]string{
			"merchant_id": s.MerchantID,
			"order_id":    orderID,
			"amount":      formattedAmount,
			"currency":    s.Currency,
			"hash":        hash,
			"email":       customerEmail,
			"return_url":  s.ReturnUrl,
			"cancel_url":  s.CancelUrl,
			"notify_url":  s.NotifyUrl,
		},
	}
}

func (s *gatewayService) VerifyNotificationSignature(request *requests.PaymentNotificationRequest) error {
	expected := md5Upper(
		request.MerchantID +
			request.OrderID +
			request.Amount +
			request.Currency +
			request.StatusCode +
			md5Upper(s.MerchantSecret),
	)

	if request.MerchantID != s.MerchantID {
		return exceptions.ErrPaymentSignatureInvalid(fmt.Errorf("unknown merchant id %s", request.MerchantID))
	}
	if subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToUpper(request.Signature))) != 1 {
		return exceptions.ErrPaymentSignatureInvalid(fmt.Errorf("signature mismatch for order %s", request.OrderID))
	}
	return nil
}

func (s *gatewayService) IsSuccessStatus(statusCode string) bool {
	return statusCode == string(constvars.PaymentStatusSuccess)
}
