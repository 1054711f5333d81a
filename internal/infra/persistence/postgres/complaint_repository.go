package postgres

import (
	"context"
	"time"

	"haatbazar/internal/domain/entity"
	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/domain/repository"
	"haatbazar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// complaintRepository implements the repository.ComplaintRepository interface.
// Buyer and seller complaints share a row layout and live in separate tables.
type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository is the constructor for complaintRepository.
func NewComplaintRepository(db *gorm.DB) repository.ComplaintRepository {
	return &complaintRepository{
		db: db,
	}
}

func complaintTable(kind entity.ComplaintKind) (string, error) {
	switch kind {
	case entity.ComplaintKindBuyer:
		return model.BuyerComplaintTable, nil
	case entity.ComplaintKindSeller:
		return model.SellerComplaintTable, nil
	default:
		return "", errors.Errorf("unknown complaint kind %q", kind)
	}
}

func (repo *complaintRepository) table(ctx context.Context, kind entity.ComplaintKind) (*gorm.DB, error) {
	table, err := complaintTable(kind)
	if err != nil {
		return nil, err
	}

	return repo.db.WithContext(ctx).Table(table), nil
}

// FindByID retrieves a complaint by id.
func (repo *complaintRepository) FindByID(ctx context.Context, kind entity.ComplaintKind, id uuid.UUID) (*entity.Complaint, error) {
	db, err := repo.table(ctx, kind)
	if err != nil {
		return nil, err
	}

	var complaintM model.ComplaintModel
	if err := db.Where("id = ?", id).First(&complaintM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrComplaintNotFound
		}

		return nil, errors.Wrap(err, "failed to find complaint by id")
	}

	return toComplaintDomain(kind, &complaintM), nil
}

// List returns complaints of one kind, newest first.
func (repo *complaintRepository) List(ctx context.Context, kind entity.ComplaintKind, limit int) ([]*entity.Complaint, error) {
	db, err := repo.table(ctx, kind)
	if err != nil {
		return nil, err
	}

	var complaintModels []*model.ComplaintModel
	if err := applyLimit(db, limit).
		Order("created_at DESC").
		Find(&complaintModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list complaints")
	}

	return toComplaintDomains(kind, complaintModels), nil
}

// FindByComplainant returns complaints filed by one party, newest first.
func (repo *complaintRepository) FindByComplainant(ctx context.Context, kind entity.ComplaintKind, complainantID uuid.UUID) ([]*entity.Complaint, error) {
	db, err := repo.table(ctx, kind)
	if err != nil {
		return nil, err
	}

	var complaintModels []*model.ComplaintModel
	if err := db.Where("complainant_id = ?", complainantID).
		Order("created_at DESC").
		Find(&complaintModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find complaints by complainant")
	}

	return toComplaintDomains(kind, complaintModels), nil
}

// Create persists a new complaint.
func (repo *complaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	db, err := repo.table(ctx, complaint.Kind)
	if err != nil {
		return err
	}

	id, err := ensureID(complaint.ID)
	if err != nil {
		return err
	}
	complaint.ID = id
	if complaint.Status == "" {
		complaint.Status = entity.ComplaintStatusPending
	}
	complaintM := fromComplaintDomain(complaint)

	if err := db.Create(complaintM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required complaint information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create complaint")
	}

	complaint.CreatedAt = complaintM.CreatedAt
	complaint.UpdatedAt = complaintM.UpdatedAt

	return nil
}

// Update saves the mutable complaint fields.
func (repo *complaintRepository) Update(ctx context.Context, complaint *entity.Complaint) error {
	db, err := repo.table(ctx, complaint.Kind)
	if err != nil {
		return err
	}

	now := time.Now()
	result := db.Where("id = ?", complaint.ID).
		Updates(map[string]any{
			"message":    complaint.Message,
			"image":      complaint.Image,
			"status":     string(complaint.Status),
			"response":   complaint.Response,
			"updated_at": now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update complaint")
	}

	if result.RowsAffected == 0 {
		return repository.ErrComplaintNotFound
	}

	complaint.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

func toComplaintDomain(kind entity.ComplaintKind, data *model.ComplaintModel) *entity.Complaint {
	if data == nil {
		return nil
	}

	return &entity.Complaint{
		ID:            data.ID,
		Kind:          kind,
		ComplainantID: data.ComplainantID,
		AccusedID:     data.AccusedID,
		Message:       data.Message,
		Image:         data.Image,
		Status:        entity.ComplaintStatus(data.Status),
		Response:      data.Response,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toComplaintDomains(kind entity.ComplaintKind, data []*model.ComplaintModel) []*entity.Complaint {
	complaints := make([]*entity.Complaint, 0, len(data))
	for _, complaintM := range data {
		complaints = append(complaints, toComplaintDomain(kind, complaintM))
	}

	return complaints
}

func fromComplaintDomain(data *entity.Complaint) *model.ComplaintModel {
	if data == nil {
		return nil
	}

	return &model.ComplaintModel{
		ID:            data.ID,
		ComplainantID: data.ComplainantID,
		AccusedID:     data.AccusedID,
		Message:       data.Message,
		Image:         data.Image,
		Status:        string(data.Status),
		Response:      data.Response,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
