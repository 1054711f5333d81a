package repository

import (
	"context"
	"errors"

	"haatbazar/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a stock decrement would drop below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository defines the persistence operations for products.
type ProductRepository interface {
	// FindByID retrieves a single product by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs returns the products whose ids are listed. Missing ids are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// List returns products matching the filter, newest first.
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	Create(ctx context.Context, product *entity.Product) error

	// Update writes only the named struct fields of an existing product; UpdatedAt is always refreshed.
	// Columns that were not named keep their stored value.
	Update(ctx context.Context, product *entity.Product, fields []string) error

	// Delete hard-deletes a product. Returns ErrProductNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock lowers stock by qty only when at least qty units remain.
	// Returns ErrInsufficientStock otherwise.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error
}
