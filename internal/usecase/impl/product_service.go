package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "haatbazar/internal/delivery/context"
	"haatbazar/internal/domain/entity"
	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/domain/repository"
	"haatbazar/internal/domain/service"
	"haatbazar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type productService struct {
	productRepo repository.ProductRepository
	sellerRepo  repository.SellerRepository
	blobs       service.BlobStore
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	productRepo repository.ProductRepository,
	sellerRepo repository.SellerRepository,
	blobs service.BlobStore,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		blobs:       blobs,
		logger:      logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct lists a new product for an existing seller. An image upload or URL is required.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.Image == nil && strings.TrimSpace(input.ImageURL) == "" {
		return nil, errors.Wrap(domainerrors.ErrImageRequired, "product image missing")
	}
	if input.Stock < 0 || input.PricePerUnit.IsNegative() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "stock and price must not be negative")
	}
	if !entity.IsMoney(input.PricePerUnit) {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "price has more than %d decimal places", entity.MoneyScale)
	}

	if _, err := srv.sellerRepo.FindByID(ctx, input.SellerID); err != nil {
		return nil, mapSellerError(err)
	}

	image, err := resolveImage(ctx, srv.blobs, input.Image, input.ImageURL)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:         input.Name,
		Category:     input.Category,
		Subcategory:  input.Subcategory,
		SellerID:     input.SellerID,
		Division:     input.Division,
		Unit:         input.Unit,
		PricePerUnit: input.PricePerUnit,
		Image:        image,
		Stock:        input.Stock,
		Description:  input.Description,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("product_id", product.ID), slog.Any("seller_id", product.SellerID))

	return product, nil
}

func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProductError(err)
	}

	return product, nil
}

func (srv *productService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct merges the present fields into the stored product.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if (input.Stock != nil && *input.Stock < 0) || (input.PricePerUnit != nil && input.PricePerUnit.IsNegative()) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "stock and price must not be negative")
	}
	if input.PricePerUnit != nil && !entity.IsMoney(*input.PricePerUnit) {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "price has more than %d decimal places", entity.MoneyScale)
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProductError(err)
	}

	image, err := resolveOptionalImage(ctx, srv.blobs, input.Image, input.ImageURL)
	if err != nil {
		return nil, err
	}
	if image != nil && *image == "" {
		return nil, errors.Wrap(domainerrors.ErrImageRequired, "product image cannot be cleared")
	}

	var changes []string
	set(&changes, "Name", &product.Name, input.Name)
	set(&changes, "Category", &product.Category, input.Category)
	set(&changes, "Subcategory", &product.Subcategory, input.Subcategory)
	set(&changes, "Division", &product.Division, input.Division)
	set(&changes, "Unit", &product.Unit, input.Unit)
	set(&changes, "PricePerUnit", &product.PricePerUnit, input.PricePerUnit)
	set(&changes, "Stock", &product.Stock, input.Stock)
	set(&changes, "Description", &product.Description, input.Description)
	set(&changes, "Image", &product.Image, image)

	if err := srv.productRepo.Update(ctx, product, changes); err != nil {
		return nil, mapProductError(err)
	}

	return product, nil
}

func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return mapProductError(err)
	}

	srv.log(ctx).Info("Product deleted", slog.Any("product_id", id))

	return nil
}

func mapProductError(err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
	}

	return errors.Wrap(err, "product repository failure")
}
