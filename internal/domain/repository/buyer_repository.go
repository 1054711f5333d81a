// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"haatbazar/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrBuyerNotFound is returned when a buyer is not found.
	ErrBuyerNotFound = errors.New("buyer not found")
	// ErrEmailAlreadyExists is returned when an account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// BuyerRepository defines the persistence operations for buyers.
type BuyerRepository interface {
	// FindByID retrieves a single buyer by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Buyer, error)

	// FindByEmail retrieves a single buyer by login email.
	FindByEmail(ctx context.Context, email string) (*entity.Buyer, error)

	// FindByIDs returns the buyers whose ids are listed. Missing ids are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Buyer, error)

	// List returns buyers, newest first. A non-positive limit means no limit.
	List(ctx context.Context, limit int) ([]*entity.Buyer, error)

	Create(ctx context.Context, buyer *entity.Buyer) error

	// Update writes only the named struct fields of an existing buyer; UpdatedAt is always refreshed.
	// Columns that were not named keep their stored value.
	Update(ctx context.Context, buyer *entity.Buyer, fields []string) error
}
