package entity

import (
	"time"

	"github.com/google/uuid"
)

// ComplaintKind tells which party filed the complaint.
type ComplaintKind string

const (
	// ComplaintKindBuyer is filed by a buyer against a seller.
	ComplaintKindBuyer ComplaintKind = "buyer"
	// ComplaintKindSeller is filed by a seller against a buyer.
	ComplaintKindSeller ComplaintKind = "seller"
)

// IsValid checks if the ComplaintKind is a valid value.
func (k ComplaintKind) IsValid() bool {
	return k == ComplaintKindBuyer || k == ComplaintKindSeller
}

// Complaint is shared by buyer and seller complaints; Kind tells them apart.
type Complaint struct {
	ID            uuid.UUID       `json:"id"`
	Kind          ComplaintKind   `json:"-"`
	ComplainantID uuid.UUID       `json:"complainant_id"`
	AccusedID     uuid.UUID       `json:"accused_id"`
	Message       string          `json:"message"`
	Image         string          `json:"image,omitempty"`
	Status        ComplaintStatus `json:"status"`
	Response      string          `json:"response,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
