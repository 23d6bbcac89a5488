package requests

type InitiatePaymentRequest struct {
	DoctorID     string `json:"doctor_id" validate:"required"`
	SlotID       string `json:"slot_id" validate:"required"`
	PatientName  string `json:"patient_name" validate:"required"`
	PatientEmail string `json:"patient_email" validate:"required,email"`
	PatientPhone string `json:"patient_phone" validate:"required"`
	Reason       string `json:"reason"`

	// Resolved from the session, never taken from the body.
	PatientID string `json:"-"`
}

// PaymentNotificationRequest is the gateway's server-to-server webhook body
// (form-encoded). The signature covers merchant id, order id, amount,
// currency and status code.
type PaymentNotificationRequest struct {
	MerchantID string `json:"merchant_id" validate:"required"`
	OrderID    string `json:"order_id" validate:"required"`
	Amount     string `json:"payhere_amount" validate:"required"`
	Currency   string `json:"payhere_currency" validate:"required"`
	StatusCode string `json:"status_code" validate:"required"`
	Signature  string `json:"md5sig" validate:"required"`
}
