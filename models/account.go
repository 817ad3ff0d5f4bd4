package models

import "time"

// Role is the closed set of account roles. An account's role is fixed at
// signup; there is no promotion or demotion flow.
type Role string

const (
	RoleCustomer        Role = "Customer"
	RoleServiceProvider Role = "ServiceProvider"
	RoleAdmin           Role = "Admin"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleServiceProvider, RoleAdmin:
		return true
	}
	return false
}

// Account represents a registered identity with exactly one role.
type Account struct {
	ID           string    `bson:"id" json:"id"`
	FullName     string    `bson:"fullName" json:"fullName"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// AccountSummary is the login/signup response view of an account.
type AccountSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
}

// Summary returns the response view of the account.
func (a *Account) Summary() AccountSummary {
	return AccountSummary{
		ID:    a.ID,
		Email: a.Email,
		Role:  a.Role,
		Name:  a.FullName,
	}
}
