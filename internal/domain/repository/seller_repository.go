package repository

import (
	"context"
	"errors"

	"haatbazar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSellerNotFound is returned when a seller is not found.
var ErrSellerNotFound = errors.New("seller not found")

// SellerRepository defines the persistence operations for sellers.
type SellerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error)
	FindByEmail(ctx context.Context, email string) (*entity.Seller, error)

	// List returns sellers, newest first. A non-positive limit means no limit.
	List(ctx context.Context, limit int) ([]*entity.Seller, error)

	Create(ctx context.Context, seller *entity.Seller) error

	// Update writes only the named struct fields of an existing seller; UpdatedAt is always refreshed.
	// Columns that were not named keep their stored value.
	Update(ctx context.Context, seller *entity.Seller, fields []string) error
}
