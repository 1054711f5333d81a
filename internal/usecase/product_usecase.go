package usecase

import (
	"context"

	"haatbazar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput defines a new listing. Either Image or ImageURL must be present.
type CreateProductInput struct {
	Name         string
	Category     string
	Subcategory  string
	SellerID     uuid.UUID
	Division     string
	Unit         string
	PricePerUnit decimal.Decimal
	Stock        int
	Description  string
	ImageURL     string
	Image        *Upload
}

// UpdateProductInput is a partial update. Nil fields are left untouched.
type UpdateProductInput struct {
	Name         *string
	Category     *string
	Subcategory  *string
	Division     *string
	Unit         *string
	PricePerUnit *decimal.Decimal
	Stock        *int
	Description  *string
	ImageURL     *string
	Image        *Upload
}

// ProductUsecase defines catalogue operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
