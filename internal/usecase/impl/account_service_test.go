package impl

import (
	"context"
	"strings"
	"testing"

	"haatbazar/internal/domain/entity"
	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/domain/repository"
	mockRepo "haatbazar/internal/mocks/repository"
	mockSvc "haatbazar/internal/mocks/service"
	"haatbazar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }

func TestBuyerService_UpdateBuyer_PartialMerge(t *testing.T) {
	buyerRepo := mockRepo.NewMockBuyerRepository(t)
	blobs := mockSvc.NewMockBlobStore(t)
	srv := NewBuyerService(buyerRepo, blobs, newDiscardLogger())
	ctx := context.Background()
	id := uuid.New()
	stored := &entity.Buyer{ID: id, Name: "Rahim", Phone: "017", Status: entity.AccountStatusActive}
	upload := &usecase.Upload{Filename: "me.jpg", ContentType: "image/jpeg", Content: strings.NewReader("jpg")}

	buyerRepo.EXPECT().FindByID(ctx, id).Return(stored, nil)
	blobs.EXPECT().Save(ctx, "me.jpg", "image/jpeg", upload.Content).Return("/uploads/me.jpg", nil)
	buyerRepo.EXPECT().Update(ctx, stored, []string{"Phone", "Image"}).Return(nil)

	buyer, err := srv.UpdateBuyer(ctx, id, &usecase.UpdateBuyerInput{Phone: strPtr("018"), Image: upload})
	require.NoError(t, err)
	assert.Equal(t, "Rahim", buyer.Name)
	assert.Equal(t, "018", buyer.Phone)
	assert.Equal(t, "/uploads/me.jpg", buyer.Image)
}

func TestBuyerService_UpdateBuyerStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  entity.AccountStatus
		wantErr error
	}{
		{name: "ban", status: entity.AccountStatusBanned},
		{name: "back to active", status: entity.AccountStatusActive},
		{name: "unknown status", status: "DELETED", wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buyerRepo := mockRepo.NewMockBuyerRepository(t)
			srv := NewBuyerService(buyerRepo, mockSvc.NewMockBlobStore(t), newDiscardLogger())
			id := uuid.New()

			buyerRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Buyer{ID: id, Status: entity.AccountStatusSuspended}, nil)
			if tt.wantErr == nil {
				buyerRepo.EXPECT().Update(mock.Anything, mock.Anything, []string{"Status"}).Return(nil)
			}

			buyer, err := srv.UpdateBuyerStatus(context.Background(), id, tt.status)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, buyer.Status)
		})
	}
}

func TestBuyerService_GetBuyer_NotFound(t *testing.T) {
	buyerRepo := mockRepo.NewMockBuyerRepository(t)
	srv := NewBuyerService(buyerRepo, mockSvc.NewMockBlobStore(t), newDiscardLogger())
	id := uuid.New()

	buyerRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrBuyerNotFound)

	_, err := srv.GetBuyer(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrBuyerNotFound)
}

func TestSellerService_UpdateSeller_ReplacesTinDoc(t *testing.T) {
	sellerRepo := mockRepo.NewMockSellerRepository(t)
	blobs := mockSvc.NewMockBlobStore(t)
	srv := NewSellerService(sellerRepo, blobs, newDiscardLogger())
	ctx := context.Background()
	id := uuid.New()
	stored := &entity.Seller{ID: id, BusinessName: "Fresh Farm", TinDoc: "/uploads/old.pdf"}
	doc := &usecase.Upload{Filename: "tin.pdf", ContentType: "application/pdf", Content: strings.NewReader("%PDF")}

	sellerRepo.EXPECT().FindByID(ctx, id).Return(stored, nil)
	blobs.EXPECT().Save(ctx, "tin.pdf", "application/pdf", doc.Content).Return("/uploads/new.pdf", nil)
	sellerRepo.EXPECT().Update(ctx, stored, []string{"Division", "TinDoc"}).Return(nil)

	seller, err := srv.UpdateSeller(ctx, id, &usecase.UpdateSellerInput{TinDoc: doc, Division: strPtr("Khulna")})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/new.pdf", seller.TinDoc)
	assert.Equal(t, "Khulna", seller.Division)
	assert.Equal(t, "Fresh Farm", seller.BusinessName)
}

func TestSellerService_UpdateSellerStatus_NotFound(t *testing.T) {
	sellerRepo := mockRepo.NewMockSellerRepository(t)
	srv := NewSellerService(sellerRepo, mockSvc.NewMockBlobStore(t), newDiscardLogger())
	id := uuid.New()

	sellerRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrSellerNotFound)

	_, err := srv.UpdateSellerStatus(context.Background(), id, entity.AccountStatusSuspended)
	assert.ErrorIs(t, err, domainerrors.ErrSellerNotFound)
}

func TestStatisticsService(t *testing.T) {
	statsRepo := mockRepo.NewMockStatisticsRepository(t)
	srv := NewStatisticsService(statsRepo)
	counts := &entity.MarketplaceCounts{Products: 12, Sellers: 3, Buyers: 40, Orders: 9, BuyerComplaints: 1}

	statsRepo.EXPECT().Counts(mock.Anything).Return(counts, nil)

	public, err := srv.PublicStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &usecase.PublicStatistics{TotalProducts: 12, TotalSellers: 3, TotalBuyers: 40}, public)

	dashboard, err := srv.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9), dashboard.Orders)
}
