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

type sellerService struct {
	sellerRepo repository.SellerRepository
	blobs      service.BlobStore
	logger     *slog.Logger
}

// NewSellerService is the constructor for sellerService.
func NewSellerService(sellerRepo repository.SellerRepository, blobs service.BlobStore, logger *slog.Logger) usecase.SellerUsecase {
	return &sellerService{
		sellerRepo: sellerRepo,
		blobs:      blobs,
		logger:     logger,
	}
}

func (srv *sellerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sellerService) GetSeller(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	seller, err := srv.sellerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapSellerError(err)
	}

	return seller, nil
}

func (srv *sellerService) ListSellers(ctx context.Context, limit int) ([]*entity.Seller, error) {
	sellers, err := srv.sellerRepo.List(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sellers")
	}

	return sellers, nil
}

// UpdateSeller merges the present fields into the stored seller. A new tax document replaces the old reference.
func (srv *sellerService) UpdateSeller(ctx context.Context, id uuid.UUID, input *usecase.UpdateSellerInput) (*entity.Seller, error) {
	seller, err := srv.sellerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapSellerError(err)
	}

	if input.Status != nil && !input.Status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid status %q", *input.Status)
	}

	image, err := resolveOptionalImage(ctx, srv.blobs, input.Image, input.ImageURL)
	if err != nil {
		return nil, err
	}

	tinDoc, err := resolveOptionalImage(ctx, srv.blobs, input.TinDoc, nil)
	if err != nil {
		return nil, err
	}

	var changes []string
	set(&changes, "BusinessName", &seller.BusinessName, input.BusinessName)
	set(&changes, "Division", &seller.Division, input.Division)
	set(&changes, "Phone", &seller.Phone, input.Phone)
	set(&changes, "Address", &seller.Address, input.Address)
	set(&changes, "NID", &seller.NID, input.NID)
	set(&changes, "TinID", &seller.TinID, input.TinID)
	set(&changes, "Image", &seller.Image, image)
	set(&changes, "TinDoc", &seller.TinDoc, tinDoc)
	set(&changes, "Status", &seller.Status, input.Status)

	if err := srv.sellerRepo.Update(ctx, seller, changes); err != nil {
		return nil, mapSellerError(err)
	}

	srv.log(ctx).Debug("Seller updated", slog.Any("seller_id", id))

	return seller, nil
}

// UpdateSellerStatus overwrites the status with any enumerated value.
func (srv *sellerService) UpdateSellerStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) (*entity.Seller, error) {
	return srv.UpdateSeller(ctx, id, &usecase.UpdateSellerInput{Status: &status})
}

func mapSellerError(err error) error {
	if errors.Is(err, repository.ErrSellerNotFound) {
		return errors.Wrap(domainerrors.ErrSellerNotFound, "seller not found")
	}

	return errors.Wrap(err, "seller repository failure")
}
