package usecase

import (
	"context"

	"haatbazar/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateBuyerInput is a partial update. Nil fields are left untouched.
type UpdateBuyerInput struct {
	Name            *string
	Phone           *string
	BillingAddress  *string
	ShippingAddress *string
	NID             *string
	ImageURL        *string
	Image           *Upload
	Status          *entity.AccountStatus
}

// UpdateSellerInput is a partial update. Nil fields are left untouched.
type UpdateSellerInput struct {
	BusinessName *string
	Division     *string
	Phone        *string
	Address      *string
	NID          *string
	TinID        *string
	ImageURL     *string
	Image        *Upload
	TinDoc       *Upload
	Status       *entity.AccountStatus
}

// BuyerUsecase defines buyer profile operations.
type BuyerUsecase interface {
	GetBuyer(ctx context.Context, id uuid.UUID) (*entity.Buyer, error)
	ListBuyers(ctx context.Context, limit int) ([]*entity.Buyer, error)
	UpdateBuyer(ctx context.Context, id uuid.UUID, input *UpdateBuyerInput) (*entity.Buyer, error)
	UpdateBuyerStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) (*entity.Buyer, error)
}

// SellerUsecase defines seller profile operations.
type SellerUsecase interface {
	GetSeller(ctx context.Context, id uuid.UUID) (*entity.Seller, error)
	ListSellers(ctx context.Context, limit int) ([]*entity.Seller, error)
	UpdateSeller(ctx context.Context, id uuid.UUID, input *UpdateSellerInput) (*entity.Seller, error)
	UpdateSellerStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) (*entity.Seller, error)
}
