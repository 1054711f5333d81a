package repository

import (
	"context"
	"errors"

	"haatbazar/internal/domain/entity"
)

// ErrAdminNotFound is returned when an admin account is not found.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines the persistence operations for admin accounts.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
	Create(ctx context.Context, admin *entity.Admin) error
}
