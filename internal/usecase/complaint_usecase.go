package usecase

import (
	"context"

	"haatbazar/internal/domain/entity"

	"github.com/google/uuid"
)

// FileComplaintInput defines a complaint. Kind decides which party is the complainant.
type FileComplaintInput struct {
	Kind          entity.ComplaintKind
	ComplainantID uuid.UUID
	AccusedID     uuid.UUID
	Message       string
	ImageURL      string
	Image         *Upload
}

// RespondComplaintInput is an admin's decision on a complaint.
type RespondComplaintInput struct {
	Status   entity.ComplaintStatus
	Response string
}

// ComplaintUsecase defines complaint filing and moderation.
type ComplaintUsecase interface {
	FileComplaint(ctx context.Context, input *FileComplaintInput) (*entity.Complaint, error)
	ListComplaints(ctx context.Context, kind entity.ComplaintKind, limit int) ([]*entity.Complaint, error)
	// ComplaintsFiledBy returns the complaints one party filed.
	ComplaintsFiledBy(ctx context.Context, kind entity.ComplaintKind, complainantID uuid.UUID) ([]*entity.Complaint, error)
	RespondToComplaint(ctx context.Context, kind entity.ComplaintKind, id uuid.UUID, input *RespondComplaintInput) (*entity.Complaint, error)
}
