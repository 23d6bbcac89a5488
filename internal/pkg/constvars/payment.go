package constvars

// PaymentStatusCode is the numeric status the gateway reports on its
// server-to-server notification.
type PaymentStatusCode string

const (
	PaymentStatusSuccess    PaymentStatusCode = "2"
	PaymentStatusPending    PaymentStatusCode = "0"
	PaymentStatusCancelled  PaymentStatusCode = "-1"
	PaymentStatusFailed     PaymentStatusCode = "-2"
	PaymentStatusChargeback PaymentStatusCode = "-3"
)

const (
	PaymentAmountFormat = "%.2f"
)
