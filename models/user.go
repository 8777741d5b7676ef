package models

import "time"

// Plan is the subscription tier of a user.
type Plan string

const (
	PlanFree     Plan = "free"
	PlanPro      Plan = "pro"
	PlanBusiness Plan = "business"
)

// User represents an account stored in the "saasuser" collection.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the store-assigned identifier in its text form.
	ID string `json:"id" bson:"_id,omitempty"`

	// Name is the display name of the user.
	Name string `json:"name" bson:"name" validate:"required"`

	// Email is the unique login identifier.
	Email string `json:"email" bson:"email" validate:"required,email"`

	// PasswordHash is a self-describing password digest (bcrypt, argon2id or
	// a legacy scheme). It is never serialized to clients.
	PasswordHash string `json:"-" bson:"password_hash" validate:"required"`

	// Plan is one of free, pro or business.
	Plan Plan `json:"plan" bson:"plan,omitempty" validate:"omitempty,oneof=free pro business"`

	// IsActive reports whether the account may be used.
	IsActive bool `json:"is_active" bson:"is_active"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// NewUser builds an active free-plan user created at now.
func NewUser(name, email, passwordHash string, now time.Time) *User {
	now = now.UTC()
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Plan:         PlanFree,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ApplyDefaults fills the plan of documents stored without one.
func (u *User) ApplyDefaults() {
	if u.Plan == "" {
		u.Plan = PlanFree
	}
}
