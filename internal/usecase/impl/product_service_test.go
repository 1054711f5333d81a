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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	sellerRepo  *mockRepo.MockSellerRepository
	blobs       *mockSvc.MockBlobStore
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	sellerRepo := mockRepo.NewMockSellerRepository(t)
	blobs := mockSvc.NewMockBlobStore(t)

	return productServiceFixtures{
		service:     NewProductService(productRepo, sellerRepo, blobs, newDiscardLogger()),
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		blobs:       blobs,
	}
}

func TestProductService_CreateProduct_WithUpload(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	upload := &usecase.Upload{Filename: "rice.png", ContentType: "image/png", Content: strings.NewReader("png")}

	fx.sellerRepo.EXPECT().FindByID(ctx, sellerID).Return(&entity.Seller{ID: sellerID}, nil)
	fx.blobs.EXPECT().Save(ctx, "rice.png", "image/png", upload.Content).Return("/uploads/k.png", nil)
	fx.productRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Product) bool { return p.Image == "/uploads/k.png" && p.Stock == 5 })).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:         "Miniket rice",
		SellerID:     sellerID,
		PricePerUnit: decimal.NewFromInt(70),
		Stock:        5,
		ImageURL:     "https://cdn.example.com/ignored.png",
		Image:        upload,
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/k.png", product.Image)
}

func TestProductService_CreateProduct_WithImageURL(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	sellerID := uuid.New()

	fx.sellerRepo.EXPECT().FindByID(ctx, sellerID).Return(&entity.Seller{ID: sellerID}, nil)
	fx.productRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:     "Hilsa",
		SellerID: sellerID,
		ImageURL: "https://cdn.example.com/hilsa.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/hilsa.jpg", product.Image)
}

func TestProductService_CreateProduct_ImageRequired(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.CreateProduct(context.Background(), &usecase.CreateProductInput{Name: "Hilsa", SellerID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrImageRequired)
}

func TestProductService_CreateProduct_UnknownSeller(t *testing.T) {
	fx := createTestProductService(t)
	sellerID := uuid.New()

	fx.sellerRepo.EXPECT().FindByID(mock.Anything, sellerID).Return(nil, repository.ErrSellerNotFound)

	_, err := fx.service.CreateProduct(context.Background(), &usecase.CreateProductInput{SellerID: sellerID, ImageURL: "x.png"})
	assert.ErrorIs(t, err, domainerrors.ErrSellerNotFound)
}

func TestProductService_UpdateProduct_MergesPresentFields(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	id := uuid.New()
	stored := &entity.Product{ID: id, Name: "Rice", Stock: 5, Image: "/uploads/a.png", PricePerUnit: decimal.NewFromInt(70)}
	newStock := 12

	fx.productRepo.EXPECT().FindByID(ctx, id).Return(stored, nil)
	fx.productRepo.EXPECT().Update(ctx, stored, []string{"Stock"}).Return(nil)

	product, err := fx.service.UpdateProduct(ctx, id, &usecase.UpdateProductInput{Stock: &newStock})
	require.NoError(t, err)
	assert.Equal(t, 12, product.Stock)
	assert.Equal(t, "Rice", product.Name)
	assert.Equal(t, "/uploads/a.png", product.Image)
}

func TestProductService_UpdateProduct_LeavesStockUnwritten(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	id := uuid.New()
	stored := &entity.Product{ID: id, Name: "Rice", Stock: 5, Image: "/uploads/a.png"}
	description := "Aromatic, new harvest"

	fx.productRepo.EXPECT().FindByID(ctx, id).Return(stored, nil)
	fx.productRepo.EXPECT().Update(ctx, stored, []string{"Description"}).Return(nil)

	product, err := fx.service.UpdateProduct(ctx, id, &usecase.UpdateProductInput{Description: &description})
	require.NoError(t, err)
	assert.Equal(t, description, product.Description)
}

func TestProductService_UpdateProduct_NegativeStock(t *testing.T) {
	fx := createTestProductService(t)
	negative := -1

	_, err := fx.service.UpdateProduct(context.Background(), uuid.New(), &usecase.UpdateProductInput{Stock: &negative})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_UpdateProduct_SubCentPrice(t *testing.T) {
	fx := createTestProductService(t)
	price := decimal.RequireFromString("12.345")

	_, err := fx.service.UpdateProduct(context.Background(), uuid.New(), &usecase.UpdateProductInput{PricePerUnit: &price})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	id := uuid.New()

	fx.productRepo.EXPECT().Delete(mock.Anything, id).Return(repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
