package models

// BookingRequest is the appointment booking payload. Services are names
// only: the server resolves prices from the fixed catalogue and computes the
// amount, so a client-supplied total is never trusted.
type BookingRequest struct {
	FullName              string   `json:"fullName"`
	PhoneNumber           string   `json:"phoneNumber"`
	Email                 string   `json:"email"`
	Vehicle               string   `json:"vehicle"`
	Services              []string `json:"services"`
	PreferredDate         string   `json:"preferredDate"`
	PreferredTime         string   `json:"preferredTime"`
	ServiceProviderID     string   `json:"serviceProviderId"`
	AdditionalInformation string   `json:"additionalInformation"`
}

// BookingResponse returns the persisted appointment together with the
// payment session the client must complete.
type BookingResponse struct {
	Appointment *Appointment   `json:"appointment"`
	Payment     *PaymentIntent `json:"payment"`
}

// PaymentConfirmation carries the opaque transaction reference returned by
// the payment provider's success callback.
type PaymentConfirmation struct {
	TransactionID string `json:"transactionId"`
}

// StatusUpdateRequest asks for an appointment status transition.
type StatusUpdateRequest struct {
	Status AppointmentStatus `json:"status"`
}
