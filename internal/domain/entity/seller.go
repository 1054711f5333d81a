package entity

import (
	"time"

	"github.com/google/uuid"
)

// Seller is a storefront account. TinDoc references the uploaded tax document in the blob store.
type Seller struct {
	ID           uuid.UUID     `json:"id"`
	Email        string        `json:"email"`
	BusinessName string        `json:"business_name"`
	Division     string        `json:"division"`
	Phone        string        `json:"phone"`
	Status       AccountStatus `json:"status"`
	Address      string        `json:"address,omitempty"`
	NID          string        `json:"nid,omitempty"`
	TinID        string        `json:"tin_id,omitempty"`
	TinDoc       string        `json:"tin_doc,omitempty"`
	Image        string        `json:"image,omitempty"`
	PasswordHash string        `json:"-"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
