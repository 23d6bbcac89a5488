package payment_gateway

import (
	"testing"

	"clinicbook-service/internal/app/config"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGatewayForTest() *gatewayService {
	internalConfig := &config.InternalConfig{
		PaymentGateway: config.PaymentGateway{
			CheckoutUrl:    "https://sandbox.gateway.example/pay/checkout",
			MerchantID:     "M1209",
			MerchantSecret: "testsecret",
			Currency:       "LKR",
			ReturnUrl:      "https://clinic.example/confirm",
			CancelUrl:      "https://clinic.example/cancelled",
			NotifyUrl:      "https://clinic.example/webhooks/payment",
		},
	}
	return NewGatewayService(internalConfig).(*gatewayService)
}

func TestBuildCheckout(t *testing.T) {
	gateway := buildGatewayForTest()

	t.Run("Known Hash Vector", func(t *testing.T) {
		checkout := gateway.BuildCheckout("order-77", 2500, "patient@example.com")

		require.NotNil(t, checkout)
		assert.Equal(t, "https://sandbox.gateway.example/pay/checkout", checkout.CheckoutURL)
		assert.Equal(t, "47D5BCA5ECD04612A3D60873AAD2F94C", checkout.Fields["hash"])
	})

	t.Run("Amount Rendered With Two Decimals", func(t *testing.T) {
		checkout := gateway.BuildCheckout("order-77", 2500, "patient@example.com")
		assert.Equal(t, "2500.00", checkout.Fields["amount"])

		checkout = gateway.BuildCheckout("order-77", 99.9, "patient@example.com")
		assert.Equal(t, "99.90", checkout.Fields["amount"])
	})

	t.Run("Fields Carry Merchant And Order Identity", func(t *testing.T) {
		checkout := gateway.BuildCheckout("order-77", 2500, "patient@example.com")

		assert.Equal(t, "M1209", checkout.Fields["merchant_id"])
		assert.Equal(t, "order-77", checkout.Fields["order_id"])
		assert.Equal(t, "LKR", checkout.Fields["currency"])
		assert.Equal(t, "patient@example.com", checkout.Fields["email"])
		assert.Equal(t, "https://clinic.example/webhooks/payment", checkout.Fields["notify_url"])
	})
}

func TestVerifyNotificationSignature(t *testing.T) {
	gateway := buildGatewayForTest()

	validRequest := func() *requests.PaymentNotificationRequest {
		return &requests.PaymentNotificationRequest{
			MerchantID: "M1209",
			OrderID:    "order-77",
			Amount:     "2500.00",
			Currency:   "LKR",
			StatusCode: "2",
			Signature:  "591735EF1E8C84B410BE4FA6CB23A65E",
		}
	}

	t.Run("Valid Signature Accepted", func(t *testing.T) {
		assert.NoError(t, gateway.VerifyNotificationSignature(validRequest()))
	})

	t.Run("Lowercase Signature Accepted", func(t *testing.T) {
		request := validRequest()
		request.Signature = "591735ef1e8c84b410be4fa6cb23a65e"
		assert.NoError(t, gateway.VerifyNotificationSignature(request))
	})

	t.Run("Tampered Amount Rejected", func(t *testing.T) {
		request := validRequest()
		request.Amount = "1.00"
		err := gateway.VerifyNotificationSignature(request)
		assert.True(t, exceptions.HasCode(err, exceptions.CodePaymentSignatureInvalid))
	})

	t.Run("Tampered Status Rejected", func(t *testing.T) {
		request := validRequest()
		request.StatusCode = "0"
		err := gateway.VerifyNotificationSignature(request)
		assert.True(t, exceptions.HasCode(err, exceptions.CodePaymentSignatureInvalid))
	})

	t.Run("Unknown Merchant Rejected", func(t *testing.T) {
		request := validRequest()
		request.MerchantID = "M9999"
		err := gateway.VerifyNotificationSignature(request)
		assert.True(t, exceptions.HasCode(err, exceptions.CodePaymentSignatureInvalid))
	})
}

func TestIsSuccessStatus(t *testing.T) {
	gateway := buildGatewayForTest()

	assert.True(t, gateway.IsSuccessStatus("2"))
	assert.False(t, gateway.IsSuccessStatus("0"))
	assert.False(t, gateway.IsSuccessStatus("-1"))
	assert.False(t, gateway.IsSuccessStatus("-2"))
	assert.False(t, gateway.IsSuccessStatus(""))
}
