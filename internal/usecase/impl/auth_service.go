package impl

import (
	"context"
	"log/slog"
	"strings"

	"haatbazar/config"
	deliverycontext "haatbazar/internal/delivery/context"
	"haatbazar/internal/domain/entity"
	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/domain/repository"
	"haatbazar/internal/domain/service"
	"haatbazar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	buyerRepo    repository.BuyerRepository
	sellerRepo   repository.SellerRepository
	adminRepo    repository.AdminRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	blobs        service.BlobStore
	adminSeed    *config.AdminSeedConfig
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	BuyerRepo    repository.BuyerRepository
	SellerRepo   repository.SellerRepository
	AdminRepo    repository.AdminRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Blobs        service.BlobStore
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var adminSeed *config.AdminSeedConfig
	if params.Config != nil {
		adminSeed = params.Config.Admin
	}

	return &authService{
		buyerRepo:    params.BuyerRepo,
		sellerRepo:   params.SellerRepo,
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		blobs:        params.Blobs,
		adminSeed:    adminSeed,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterBuyer hashes the password and creates a buyer account.
func (srv *authService) RegisterBuyer(ctx context.Context, input *usecase.RegisterBuyerInput) (*entity.Buyer, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Registering buyer", slog.String("email", email))

	if _, err := srv.buyerRepo.FindByEmail(ctx, email); err == nil {
		return nil, errors.Wrap(domainerrors.ErrEmailTaken, "buyer email already registered")
	} else if !errors.Is(err, repository.ErrBuyerNotFound) {
		return nil, errors.Wrap(err, "failed to look up buyer email")
	}

	hash, err := srv.hashPassword(ctx, input.Password)
	if err != nil {
		return nil, err
	}

	image, err := resolveImage(ctx, srv.blobs, input.Image, input.ImageURL)
	if err != nil {
		return nil, err
	}

	buyer := &entity.Buyer{
		Name:            input.Name,
		Email:           email,
		Phone:           input.Phone,
		BillingAddress:  input.BillingAddress,
		ShippingAddress: input.ShippingAddress,
		NID:             input.NID,
		Image:           image,
		Status:          entity.AccountStatusActive,
		PasswordHash:    hash,
	}

	if err := srv.buyerRepo.Create(ctx, buyer); err != nil {
		if errors.Is(err, repository.ErrEmailAlreadyExists) {
			return nil, errors.Wrap(domainerrors.ErrEmailTaken, "buyer email already registered")
		}

		return nil, errors.Wrap(err, "failed to create buyer")
	}

	srv.log(ctx).Debug("Buyer registered", slog.Any("buyer_id", buyer.ID))

	return buyer, nil
}

// RegisterSeller hashes the password, stores the tax document and creates a seller account.
func (srv *authService) RegisterSeller(ctx context.Context, input *usecase.RegisterSellerInput) (*entity.Seller, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Registering seller", slog.String("email", email))

	if _, err := srv.sellerRepo.FindByEmail(ctx, email); err == nil {
		return nil, errors.Wrap(domainerrors.ErrEmailTaken, "seller email already registered")
	} else if !errors.Is(err, repository.ErrSellerNotFound) {
		return nil, errors.Wrap(err, "failed to look up seller email")
	}

	hash, err := srv.hashPassword(ctx, input.Password)
	if err != nil {
		return nil, err
	}

	tinDoc, err := resolveImage(ctx, srv.blobs, input.TinDoc, "")
	if err != nil {
		return nil, err
	}

	seller := &entity.Seller{
		Email:        email,
		BusinessName: input.BusinessName,
		Division:     input.Division,
		Phone:        input.Phone,
		Status:       entity.AccountStatusActive,
		Address:      input.Address,
		NID:          input.NID,
		TinID:        input.TinID,
		TinDoc:       tinDoc,
		PasswordHash: hash,
	}

	if err := srv.sellerRepo.Create(ctx, seller); err != nil {
		if errors.Is(err, repository.ErrEmailAlreadyExists) {
			return nil, errors.Wrap(domainerrors.ErrEmailTaken, "seller email already registered")
		}

		return nil, errors.Wrap(err, "failed to create seller")
	}

	srv.log(ctx).Debug("Seller registered", slog.Any("seller_id", seller.ID))

	return seller, nil
}

// LoginBuyer verifies buyer credentials and issues an access token.
func (srv *authService) LoginBuyer(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	buyer, err := srv.buyerRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrBuyerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "buyer not found")
		}

		return nil, errors.Wrap(err, "failed to find buyer")
	}

	return srv.issue(ctx, buyer, buyer.ID, buyer.PasswordHash, input.Password, entity.RoleBuyer)
}

// LoginSeller verifies seller credentials and issues an access token.
func (srv *authService) LoginSeller(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	seller, err := srv.sellerRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "seller not found")
		}

		return nil, errors.Wrap(err, "failed to find seller")
	}

	return srv.issue(ctx, seller, seller.ID, seller.PasswordHash, input.Password, entity.RoleSeller)
}

// LoginAdmin verifies admin credentials and issues an access token carrying the admin role.
func (srv *authService) LoginAdmin(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	admin, err := srv.adminRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin not found")
		}

		return nil, errors.Wrap(err, "failed to find admin")
	}

	return srv.issue(ctx, admin, admin.ID, admin.PasswordHash, input.Password, entity.RoleAdmin)
}

// SeedAdmin creates the configured admin account unless it already exists.
func (srv *authService) SeedAdmin(ctx context.Context) error {
	if srv.adminSeed == nil || srv.adminSeed.Email == "" || srv.adminSeed.Password == "" {
		srv.log(ctx).Info("Admin seed not configured, skipping")

		return nil
	}

	email := normalizeEmail(srv.adminSeed.Email)
	_, err := srv.adminRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrAdminNotFound) {
		return errors.Wrap(err, "failed to look up admin")
	}

	hash, err := srv.hashPassword(ctx, srv.adminSeed.Password)
	if err != nil {
		return err
	}

	admin := &entity.Admin{
		Email:        email,
		Name:         srv.adminSeed.Name,
		Role:         entity.RoleAdmin,
		PasswordHash: hash,
	}
	if err := srv.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrEmailAlreadyExists) {
			return nil
		}

		return errors.Wrap(err, "failed to seed admin")
	}

	srv.log(ctx).Info("Admin account seeded", slog.String("email", email))

	return nil
}

func (srv *authService) hashPassword(ctx context.Context, password string) (string, error) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return hash, nil
}

func (srv *authService) issue(ctx context.Context, account any, id uuid.UUID, hash, password string, role entity.Role) (*usecase.LoginOutput, error) {
	if !srv.hasher.Check(password, hash) {
		srv.log(ctx).Warn("Invalid login attempt", slog.String("role", string(role)), slog.Any("account_id", id))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	token, err := srv.tokenService.GenerateAccessToken(id, []string{string(role)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{Account: account, AccessToken: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
