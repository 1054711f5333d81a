package impl

import (
	"context"
	"log/slog"

	deliverycontext "haatbazar/internal/delivery/context"
	"haatbazar/internal/domain/entity"
	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/domain/repository"
	"haatbazar/internal/domain/service"
	"haatbazar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type buyerService struct {
	buyerRepo repository.BuyerRepository
	blobs     service.BlobStore
	logger    *slog.Logger
}

// NewBuyerService is the constructor for buyerService.
func NewBuyerService(buyerRepo repository.BuyerRepository, blobs service.BlobStore, logger *slog.Logger) usecase.BuyerUsecase {
	return &buyerService{
		buyerRepo: buyerRepo,
		blobs:     blobs,
		logger:    logger,
	}
}

func (srv *buyerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *buyerService) GetBuyer(ctx context.Context, id uuid.UUID) (*entity.Buyer, error) {
	buyer, err := srv.buyerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapBuyerError(err)
	}

	return buyer, nil
}

func (srv *buyerService) ListBuyers(ctx context.Context, limit int) ([]*entity.Buyer, error) {
	buyers, err := srv.buyerRepo.List(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buyers")
	}

	return buyers, nil
}

// UpdateBuyer merges the present fields into the stored buyer.
func (srv *buyerService) UpdateBuyer(ctx context.Context, id uuid.UUID, input *usecase.UpdateBuyerInput) (*entity.Buyer, error) {
	buyer, err := srv.buyerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapBuyerError(err)
	}

	if input.Status != nil && !input.Status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid status %q", *input.Status)
	}

	image, err := resolveOptionalImage(ctx, srv.blobs, input.Image, input.ImageURL)
	if err != nil {
		return nil, err
	}

	var changes []string
	set(&changes, "Name", &buyer.Name, input.Name)
	set(&changes, "Phone", &buyer.Phone, input.Phone)
	set(&changes, "BillingAddress", &buyer.BillingAddress, input.BillingAddress)
	set(&changes, "ShippingAddress", &buyer.ShippingAddress, input.ShippingAddress)
	set(&changes, "NID", &buyer.NID, input.NID)
	set(&changes, "Image", &buyer.Image, image)
	set(&changes, "Status", &buyer.Status, input.Status)

	if err := srv.buyerRepo.Update(ctx, buyer, changes); err != nil {
		return nil, mapBuyerError(err)
	}

	srv.log(ctx).Debug("Buyer updated", slog.Any("buyer_id", id))

	return buyer, nil
}

// UpdateBuyerStatus overwrites the status with any enumerated value.
func (srv *buyerService) UpdateBuyerStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) (*entity.Buyer, error) {
	return srv.UpdateBuyer(ctx, id, &usecase.UpdateBuyerInput{Status: &status})
}

func mapBuyerError(err error) error {
	if errors.Is(err, repository.ErrBuyerNotFound) {
		return errors.Wrap(domainerrors.ErrBuyerNotFound, "buyer not found")
	}

	return errors.Wrap(err, "buyer repository failure")
}
