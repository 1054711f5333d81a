package postgres

import (
	"context"

	"haatbazar/internal/domain/entity"
	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/domain/repository"
	"haatbazar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the repository.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{
		db: db,
	}
}

// FindByEmail retrieves an admin by login email.
func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var adminM model.AdminModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	return &entity.Admin{
		ID:           adminM.ID,
		Email:        adminM.Email,
		Name:         adminM.Name,
		Role:         entity.Role(adminM.Role),
		PasswordHash: adminM.PasswordHash,
		CreatedAt:    adminM.CreatedAt,
		UpdatedAt:    adminM.UpdatedAt,
	}, nil
}

// Create persists a new admin.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	id, err := ensureID(admin.ID)
	if err != nil {
		return err
	}
	admin.ID = id

	role := admin.Role
	if role == "" {
		role = entity.RoleAdmin
	}
	adminM := &model.AdminModel{
		ID:           admin.ID,
		Email:        admin.Email,
		Name:         admin.Name,
		Role:         string(role),
		PasswordHash: admin.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}

	admin.Role = role
	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}
