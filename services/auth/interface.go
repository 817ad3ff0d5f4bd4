package auth

import "egarage/models"

// AuthResponse carries the issued token and the account summary the client
// persists for route gating.
type AuthResponse struct {
	Token string                `json:"token"`
	User  models.AccountSummary `json:"user"`
}

// AuthService issues identities and validates credentials.
type AuthService interface {
	Signup(req models.SignupRequest) (*AuthResponse, error)
	Login(email, password string) (*AuthResponse, error)
}
