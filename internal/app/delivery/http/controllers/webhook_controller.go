package controllers

import (
	"net/http"

	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type WebhookController struct {
	BookingUsecase contracts.BookingUsecase
	Log            *zap.Logger
}

func NewWebhookController(bookingUsecase contracts.BookingUsecase, logger *zap.Logger) *WebhookController {
	return &WebhookController{
		BookingUsecase: bookingUsecase,
		Log:            logger,
	}
}

// PaymentNotification receives the gateway's form-encoded server-to-server
// callback. Authentication is the md5 signature inside the body, not a
// session.
func (c *WebhookController) PaymentNotification(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseForm(err))
		return
	}

	request := &requests.PaymentNotificationRequest{
		MerchantID: r.PostFormValue("merchant_id"),
		OrderID:    r.PostFormValue("order_id"),
		Amount:     r.PostFormValue("payhere_amount"),
		Currency:   r.PostFormValue("payhere_currency"),
		StatusCode: r.PostFormValue("status_code"),
		Signature:  r.PostFormValue("md5sig"),
	}
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	err = c.BookingUsecase.HandlePaymentNotification(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WebhookAcceptedMessage, nil)
}
