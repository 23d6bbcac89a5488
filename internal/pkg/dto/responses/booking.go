package responses

// GatewayCheckout is the redirect payload the patient's browser submits to
// the payment gateway.
type GatewayCheckout struct {
	CheckoutURL string            `json:"checkout_url"`
	Fields      map[string]string `json:"fields"`
}

type InitiatePayment struct {
	OrderID  string           `json:"order_id"`
	Checkout *GatewayCheckout `json:"gateway_redirect"`
}
