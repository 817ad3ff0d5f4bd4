package models

import "time"

// Message is a contact-form submission. Write-once, read by administrators.
type Message struct {
	ID        string    `bson:"id" json:"id"`
	FullName  string    `bson:"fullName" json:"fullName"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}

// MessageInput is the contact-form payload.
type MessageInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}
