package repository

import (
	"context"
	"errors"

	"haatbazar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrComplaintNotFound is returned when a complaint is not found.
var ErrComplaintNotFound = errors.New("complaint not found")

// ComplaintRepository persists buyer and seller complaints. The kind selects the table.
type ComplaintRepository interface {
	FindByID(ctx context.Context, kind entity.ComplaintKind, id uuid.UUID) (*entity.Complaint, error)

	// List returns complaints of the given kind, newest first. A non-positive limit means no limit.
	List(ctx context.Context, kind entity.ComplaintKind, limit int) ([]*entity.Complaint, error)

	// FindByComplainant returns complaints filed by one party, newest first.
	FindByComplainant(ctx context.Context, kind entity.ComplaintKind, complainantID uuid.UUID) ([]*entity.Complaint, error)

	Create(ctx context.Context, complaint *entity.Complaint) error
	Update(ctx context.Context, complaint *entity.Complaint) error
}
