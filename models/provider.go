package models

import "time"

// Provider is a garage's public listing, owned by one ServiceProvider
// account. Email is unique across providers, and an account may own at most
// one listing.
type Provider struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"userId" json:"userId"`
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email" json:"email"`
	ContactNumber string    `bson:"contactNumber" json:"contactNumber"`
	Address       string    `bson:"address" json:"address"`
	State         string    `bson:"state" json:"state"`
	City          string    `bson:"city" json:"city"`
	Description   string    `bson:"description" json:"description"`
	Specialities  []string  `bson:"specialities" json:"specialities"`
	MainImage     string    `bson:"mainImage,omitempty" json:"mainImage,omitempty"`
	GalleryImages []string  `bson:"galleryImages,omitempty" json:"galleryImages,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// ProviderInput carries the client-supplied provider attributes; the owning
// account is taken from the authenticated identity.
type ProviderInput struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	ContactNumber string   `json:"contactNumber"`
	Address       string   `json:"address"`
	State         string   `json:"state"`
	City          string   `json:"city"`
	Description   string   `json:"description"`
	Specialities  []string `json:"specialities"`
	MainImage     string   `json:"mainImage"`
	GalleryImages []string `json:"galleryImages"`
}

// ProviderFilter narrows a directory listing. Fields combine as a
// conjunction; empty fields match everything. Speciality matches providers
// whose speciality set contains the value.
type ProviderFilter struct {
	State      string `form:"state"`
	City       string `form:"city"`
	Speciality string `form:"speciality"`
}
