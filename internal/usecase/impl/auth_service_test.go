package impl

import (
	"context"
	"strings"
	"testing"

	"haatbazar/config"
	"haatbazar/internal/domain/entity"
	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/domain/repository"
	mockRepo "haatbazar/internal/mocks/repository"
	mockSvc "haatbazar/internal/mocks/service"
	"haatbazar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	buyerRepo    *mockRepo.MockBuyerRepository
	sellerRepo   *mockRepo.MockSellerRepository
	adminRepo    *mockRepo.MockAdminRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	blobs        *mockSvc.MockBlobStore
}

func createTestAuthService(t *testing.T, adminSeed *config.AdminSeedConfig) authServiceFixtures {
	f := authServiceFixtures{
		buyerRepo:    mockRepo.NewMockBuyerRepository(t),
		sellerRepo:   mockRepo.NewMockSellerRepository(t),
		adminRepo:    mockRepo.NewMockAdminRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		blobs:        mockSvc.NewMockBlobStore(t),
	}

	f.service = NewAuthService(AuthServiceParams{
		BuyerRepo:    f.buyerRepo,
		SellerRepo:   f.sellerRepo,
		AdminRepo:    f.adminRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		Blobs:        f.blobs,
		Config:       &config.Config{Admin: adminSeed},
		Logger:       newDiscardLogger(),
	})

	return f
}

func TestAuthService_RegisterBuyer_HashesPassword(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	fx.buyerRepo.EXPECT().FindByEmail(ctx, "rahim@example.com").Return(nil, repository.ErrBuyerNotFound)
	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	fx.buyerRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(b *entity.Buyer) bool {
			return b.PasswordHash == "hashed" && b.Status == entity.AccountStatusActive && b.Email == "rahim@example.com"
		})).
		Return(nil)

	buyer, err := fx.service.RegisterBuyer(ctx, &usecase.RegisterBuyerInput{
		Name:     "Rahim",
		Email:    "  Rahim@Example.com ",
		Password: "s3cret-pass",
		Phone:    "01700000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rahim", buyer.Name)
	assert.Equal(t, "hashed", buyer.PasswordHash)
}

func TestAuthService_RegisterBuyer_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	fx.buyerRepo.EXPECT().FindByEmail(ctx, "rahim@example.com").Return(&entity.Buyer{ID: uuid.New()}, nil)

	_, err := fx.service.RegisterBuyer(ctx, &usecase.RegisterBuyerInput{Email: "rahim@example.com", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_RegisterBuyer_ConcurrentDuplicate(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	fx.buyerRepo.EXPECT().FindByEmail(ctx, "rahim@example.com").Return(nil, repository.ErrBuyerNotFound)
	fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	fx.buyerRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrEmailAlreadyExists)

	_, err := fx.service.RegisterBuyer(ctx, &usecase.RegisterBuyerInput{Email: "rahim@example.com", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_RegisterSeller_StoresTinDoc(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()
	doc := &usecase.Upload{Filename: "tin.pdf", ContentType: "application/pdf", Content: strings.NewReader("%PDF-1.4")}

	fx.sellerRepo.EXPECT().FindByEmail(ctx, "shop@example.com").Return(nil, repository.ErrSellerNotFound)
	fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	fx.blobs.EXPECT().Save(ctx, "tin.pdf", "application/pdf", doc.Content).Return("/uploads/abc.pdf", nil)
	fx.sellerRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(s *entity.Seller) bool { return s.TinDoc == "/uploads/abc.pdf" })).
		Return(nil)

	seller, err := fx.service.RegisterSeller(ctx, &usecase.RegisterSellerInput{
		Email:        "shop@example.com",
		Password:     "pw",
		BusinessName: "Fresh Farm",
		Division:     "Dhaka",
		Phone:        "01800000000",
		TinDoc:       doc,
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/abc.pdf", seller.TinDoc)
}

func TestAuthService_RegisterBuyer_HashFailure(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	fx.buyerRepo.EXPECT().FindByEmail(ctx, "a@b.c").Return(nil, repository.ErrBuyerNotFound)
	fx.hasher.EXPECT().Hash("pw").Return("", errors.New("cost out of range"))

	_, err := fx.service.RegisterBuyer(ctx, &usecase.RegisterBuyerInput{Email: "a@b.c", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_LoginBuyer(t *testing.T) {
	buyer := &entity.Buyer{ID: uuid.New(), Email: "rahim@example.com", PasswordHash: "hashed"}

	tests := []struct {
		name      string
		setup     func(fx authServiceFixtures)
		wantErr   error
		wantToken string
	}{
		{
			name: "valid credentials",
			setup: func(fx authServiceFixtures) {
				fx.buyerRepo.EXPECT().FindByEmail(mock.Anything, "rahim@example.com").Return(buyer, nil)
				fx.hasher.EXPECT().Check("pw", "hashed").Return(true)
				fx.tokenService.EXPECT().GenerateAccessToken(buyer.ID, []string{"buyer"}).Return("token", nil)
			},
			wantToken: "token",
		},
		{
			name: "wrong password",
			setup: func(fx authServiceFixtures) {
				fx.buyerRepo.EXPECT().FindByEmail(mock.Anything, "rahim@example.com").Return(buyer, nil)
				fx.hasher.EXPECT().Check("pw", "hashed").Return(false)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "unknown email",
			setup: func(fx authServiceFixtures) {
				fx.buyerRepo.EXPECT().FindByEmail(mock.Anything, "rahim@example.com").Return(nil, repository.ErrBuyerNotFound)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t, nil)
			tt.setup(fx)

			out, err := fx.service.LoginBuyer(context.Background(), &usecase.LoginInput{Email: "rahim@example.com", Password: "pw"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, out.AccessToken)
			assert.Same(t, buyer, out.Account)
		})
	}
}

func TestAuthService_LoginAdmin_CarriesAdminRole(t *testing.T) {
	fx := createTestAuthService(t, nil)
	admin := &entity.Admin{ID: uuid.New(), Email: "admin@haatbazar.test", PasswordHash: "hashed", Role: entity.RoleAdmin}

	fx.adminRepo.EXPECT().FindByEmail(mock.Anything, "admin@haatbazar.test").Return(admin, nil)
	fx.hasher.EXPECT().Check("pw", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(admin.ID, []string{"admin"}).Return("admin-token", nil)

	out, err := fx.service.LoginAdmin(context.Background(), &usecase.LoginInput{Email: "admin@haatbazar.test", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "admin-token", out.AccessToken)
}

func TestAuthService_LoginSeller_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t, nil)
	fx.sellerRepo.EXPECT().FindByEmail(mock.Anything, "x@y.z").Return(nil, repository.ErrSellerNotFound)

	_, err := fx.service.LoginSeller(context.Background(), &usecase.LoginInput{Email: "x@y.z", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_SeedAdmin(t *testing.T) {
	seed := &config.AdminSeedConfig{Email: "Admin@HaatBazar.test", Name: "Ops", Password: "pw"}

	t.Run("creates missing admin", func(t *testing.T) {
		fx := createTestAuthService(t, seed)
		fx.adminRepo.EXPECT().FindByEmail(mock.Anything, "admin@haatbazar.test").Return(nil, repository.ErrAdminNotFound)
		fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
		fx.adminRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(a *entity.Admin) bool {
				return a.Role == entity.RoleAdmin && a.PasswordHash == "hashed" && a.Name == "Ops"
			})).
			Return(nil)

		require.NoError(t, fx.service.SeedAdmin(context.Background()))
	})

	t.Run("keeps existing admin", func(t *testing.T) {
		fx := createTestAuthService(t, seed)
		fx.adminRepo.EXPECT().FindByEmail(mock.Anything, "admin@haatbazar.test").Return(&entity.Admin{}, nil)

		require.NoError(t, fx.service.SeedAdmin(context.Background()))
	})

	t.Run("skips when not configured", func(t *testing.T) {
		fx := createTestAuthService(t, nil)

		require.NoError(t, fx.service.SeedAdmin(context.Background()))
	})
}
