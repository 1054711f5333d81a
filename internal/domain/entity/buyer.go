package entity

import (
	"time"

	"github.com/google/uuid"
)

// Buyer is a shopper account. Email is the login identifier.
type Buyer struct {
	ID              uuid.UUID     `json:"id"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	BillingAddress  string        `json:"billing_address,omitempty"`
	ShippingAddress string        `json:"shipping_address,omitempty"`
	NID             string        `json:"nid,omitempty"`
	Image           string        `json:"image,omitempty"`
	Status          AccountStatus `json:"status"`
	PasswordHash    string        `json:"-"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
