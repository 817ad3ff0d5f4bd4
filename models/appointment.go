package models

import (
	"fmt"
	"time"
)

// AppointmentStatus is the persisted appointment state.
type AppointmentStatus string

const (
	// StatusPendingPayment is the initial state: the appointment exists but
	// its payment has not been confirmed yet.
	StatusPendingPayment AppointmentStatus = "pending_payment"
	StatusPending        AppointmentStatus = "pending"
	StatusConfirmed      AppointmentStatus = "confirmed"
	StatusCompleted      AppointmentStatus = "completed"
	StatusCancelled      AppointmentStatus = "cancelled"
)

// legalTransitions is the closed transition table. Anything not listed is
// rejected.
var legalTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPendingPayment: {StatusPending, StatusCancelled},
	StatusPending:        {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusCompleted, StatusCancelled},
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range legalTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// ServiceItem is a {service name, price} line item selected for an
// appointment.
type ServiceItem struct {
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

// Appointment binds a customer, a provider, a vehicle description, service
// line items and a scheduling preference. The preferred time is an advisory
// slot label, not a scheduled resource.
type Appointment struct {
	ID                    string            `bson:"id" json:"id"`
	FullName              string            `bson:"fullName" json:"fullName"`
	PhoneNumber           string            `bson:"phoneNumber" json:"phoneNumber"`
	Email                 string            `bson:"email,omitempty" json:"email,omitempty"`
	Vehicle               string            `bson:"vehicle" json:"vehicle"`
	PreferredDate         string            `bson:"preferredDate" json:"preferredDate"` // "YYYY-MM-DD"
	PreferredTime         string            `bson:"preferredTime" json:"preferredTime"`
	ProviderID            string            `bson:"serviceProviderId" json:"serviceProviderId"`
	AdditionalInformation string            `bson:"additionalInformation,omitempty" json:"additionalInformation,omitempty"`
	ServiceType           []ServiceItem     `bson:"serviceType" json:"serviceType"`
	Amount                float64           `bson:"amount" json:"amount"`
	Status                AppointmentStatus `bson:"status" json:"status"`
	PaymentIntentID       string            `bson:"paymentIntentId,omitempty" json:"-"`
	PaymentRef            string            `bson:"paymentRef,omitempty" json:"paymentRef,omitempty"`
	UserID                string            `bson:"userId" json:"userId"`
	CreatedAt             time.Time         `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt             time.Time         `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// Transition moves the appointment to next, rejecting anything outside the
// legal transition table.
func (a *Appointment) Transition(next AppointmentStatus) error {
	if !a.Status.CanTransitionTo(next) {
		return fmt.Errorf("invalid transition from %s to %s", a.Status, next)
	}
	a.Status = next
	return nil
}

// RevenueReport is the aggregate of all line-item prices across all
// appointments.
type RevenueReport struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalAppointments int     `json:"totalAppointments"`
}
