package models

// PaymentIntent is the server-opened payment session the client completes
// with the external payment provider.
type PaymentIntent struct {
	ID           string  `json:"id"`
	ClientSecret string  `json:"clientSecret,omitempty"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}
