package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "haatbazar/internal/delivery/context"
	"haatbazar/internal/domain/entity"
	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/domain/repository"
	"haatbazar/internal/domain/service"
	"haatbazar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type complaintService struct {
	complaintRepo repository.ComplaintRepository
	buyerRepo     repository.BuyerRepository
	sellerRepo    repository.SellerRepository
	blobs         service.BlobStore
	logger        *slog.Logger
}

// NewComplaintService is the constructor for complaintService.
func NewComplaintService(
	complaintRepo repository.ComplaintRepository,
	buyerRepo repository.BuyerRepository,
	sellerRepo repository.SellerRepository,
	blobs service.BlobStore,
	logger *slog.Logger,
) usecase.ComplaintUsecase {
	return &complaintService{
		complaintRepo: complaintRepo,
		buyerRepo:     buyerRepo,
		sellerRepo:    sellerRepo,
		blobs:         blobs,
		logger:        logger,
	}
}

func (srv *complaintService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FileComplaint records a complaint. A buyer complaint accuses a seller and a seller complaint accuses a buyer.
func (srv *complaintService) FileComplaint(ctx context.Context, input *usecase.FileComplaintInput) (*entity.Complaint, error) {
	if !input.Kind.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid complaint kind %q", input.Kind)
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "complaint message is required")
	}

	if err := srv.checkParties(ctx, input.Kind, input.ComplainantID, input.AccusedID); err != nil {
		return nil, err
	}

	image, err := resolveImage(ctx, srv.blobs, input.Image, input.ImageURL)
	if err != nil {
		return nil, err
	}

	complaint := &entity.Complaint{
		Kind:          input.Kind,
		ComplainantID: input.ComplainantID,
		AccusedID:     input.AccusedID,
		Message:       input.Message,
		Image:         image,
		Status:        entity.ComplaintStatusPending,
	}

	if err := srv.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, errors.Wrap(err, "failed to create complaint")
	}

	srv.log(ctx).Info("Complaint filed",
		slog.String("kind", string(complaint.Kind)),
		slog.Any("complaint_id", complaint.ID),
	)

	return complaint, nil
}

func (srv *complaintService) ListComplaints(ctx context.Context, kind entity.ComplaintKind, limit int) ([]*entity.Complaint, error) {
	complaints, err := srv.complaintRepo.List(ctx, kind, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list complaints")
	}

	return complaints, nil
}

func (srv *complaintService) ComplaintsFiledBy(ctx context.Context, kind entity.ComplaintKind, complainantID uuid.UUID) ([]*entity.Complaint, error) {
	complaints, err := srv.complaintRepo.FindByComplainant(ctx, kind, complainantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list complaints by complainant")
	}

	return complaints, nil
}

// RespondToComplaint sets the moderation outcome and the admin's response.
func (srv *complaintService) RespondToComplaint(
	ctx context.Context,
	kind entity.ComplaintKind,
	id uuid.UUID,
	input *usecase.RespondComplaintInput,
) (*entity.Complaint, error) {
	if !input.Status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid complaint status %q", input.Status)
	}

	complaint, err := srv.complaintRepo.FindByID(ctx, kind, id)
	if err != nil {
		return nil, mapComplaintError(err)
	}

	complaint.Status = input.Status
	if input.Response != "" {
		complaint.Response = input.Response
	}

	if err := srv.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, mapComplaintError(err)
	}

	srv.log(ctx).Info("Complaint answered",
		slog.String("kind", string(kind)),
		slog.Any("complaint_id", id),
		slog.String("status", string(input.Status)),
	)

	return complaint, nil
}

func (srv *complaintService) checkParties(ctx context.Context, kind entity.ComplaintKind, complainantID, accusedID uuid.UUID) error {
	buyerID, sellerID := complainantID, accusedID
	if kind == entity.ComplaintKindSeller {
		buyerID, sellerID = accusedID, complainantID
	}

	if _, err := srv.buyerRepo.FindByID(ctx, buyerID); err != nil {
		return mapBuyerError(err)
	}
	if _, err := srv.sellerRepo.FindByID(ctx, sellerID); err != nil {
		return mapSellerError(err)
	}

	return nil
}

func mapComplaintError(err error) error {
	if errors.Is(err, repository.ErrComplaintNotFound) {
		return errors.Wrap(domainerrors.ErrComplaintNotFound, "complaint not found")
	}

	return errors.Wrap(err, "complaint repository failure")
}
