package controllers

import (
	"net/http"

	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	BookingUsecase contracts.BookingUsecase
	Log            *zap.Logger
}

func NewBookingController(bookingUsecase contracts.BookingUsecase, logger *zap.Logger) *BookingController {
	return &BookingController{
		BookingUsecase: bookingUsecase,
		Log:            logger,
	}
}

func (c *BookingController) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	request := new(requests.InitiatePaymentRequest)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	initiation, err := c.BookingUsecase.InitiatePayment(r.Context(), sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.InitiatePaymentSuccessMessage, initiation)
}

// ConfirmPayment handles the browser redirect back from the gateway. It is
// idempotent: hitting it after the webhook already confirmed the order
// returns the existing appointment.
func (c *BookingController) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get(constvars.URLQueryParamOrderID)
	if orderID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLQueryParamOrderID))
		return
	}

	appointment, err := c.BookingUsecase.ConfirmPayment(r.Context(), orderID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConfirmPaymentSuccessMessage, appointment)
}
