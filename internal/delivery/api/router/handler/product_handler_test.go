package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"haatbazar/internal/domain/entity"
	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/errors"
	mockusecase "haatbazar/internal/mocks/usecase"
	"haatbazar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductTestServer(t *testing.T) (*echo.Echo, *mockusecase.MockProductUsecase, *mockusecase.MockReviewUsecase) {
	productUC := mockusecase.NewMockProductUsecase(t)
	reviewUC := mockusecase.NewMockReviewUsecase(t)
	h := NewProductHandler(ProductHandlerParams{
		ProductUC: productUC,
		ReviewUC:  reviewUC,
		Uploads:   newTestUploads(),
		Logger:    slog.New(slog.DiscardHandler),
	})

	e := newTestEcho()
	e.GET("/api/products", h.ListProducts)
	e.POST("/api/products", h.CreateProduct)
	e.GET("/api/products/:id", h.GetProduct)
	e.PUT("/api/products/:id", h.UpdateProduct)
	e.DELETE("/api/products/:id", h.DeleteProduct)
	e.GET("/api/products/:productId/reviews", h.ListReviews)

	return e, productUC, reviewUC
}

func TestProductHandler_CreateProduct_WithImageUpload(t *testing.T) {
	e, productUC, _ := newProductTestServer(t)
	sellerID := uuid.New()

	var got *usecase.CreateProductInput
	productUC.EXPECT().
		CreateProduct(mock.Anything, mock.AnythingOfType("*usecase.CreateProductInput")).
		Run(func(_ context.Context, in *usecase.CreateProductInput) { got = in }).
		Return(&entity.Product{ID: uuid.New(), Name: "Hilsa", SellerID: sellerID, Image: "/uploads/abc.png", Stock: 5}, nil)

	req := multipartRequest(t, http.MethodPost, "/api/products", map[string]string{
		"name":           "Hilsa",
		"category":       "Fish",
		"seller_id":      sellerID.String(),
		"price_per_unit": "12.50",
		"stock":          "5",
	}, multipartFile{field: "image", filename: "hilsa.png", content: pngHeader})

	rec := serve(e, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Hilsa", body["name"])
	assert.Equal(t, "/uploads/abc.png", body["image"])
	assert.NotContains(t, body, "data")

	require.NotNil(t, got)
	assert.Equal(t, sellerID, got.SellerID)
	assert.Equal(t, "Hilsa", got.Name)
	assert.Equal(t, 5, got.Stock)
	assert.True(t, got.PricePerUnit.Equal(decimal.RequireFromString("12.50")))
	require.NotNil(t, got.Image)
	assert.Equal(t, "image/png", got.Image.ContentType)
	assert.Equal(t, "hilsa.png", got.Image.Filename)
	content, err := io.ReadAll(got.Image.Content)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, content)
}

func TestProductHandler_CreateProduct_RejectsNonImage(t *testing.T) {
	e, _, _ := newProductTestServer(t)

	req := multipartRequest(t, http.MethodPost, "/api/products", map[string]string{
		"name":      "Hilsa",
		"category":  "Fish",
		"seller_id": uuid.NewString(),
	}, multipartFile{field: "image", filename: "hilsa.png", content: []byte("just some text")})

	rec := serve(e, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNSUPPORTED_MEDIA_TYPE", decodeError(t, rec).Code)
}

func TestProductHandler_CreateProduct_RejectsOversizeUpload(t *testing.T) {
	e, _, _ := newProductTestServer(t)
	oversize := append(bytes.Clone(pngHeader), make([]byte, 2048)...)

	req := multipartRequest(t, http.MethodPost, "/api/products", map[string]string{
		"name":      "Hilsa",
		"category":  "Fish",
		"seller_id": uuid.NewString(),
	}, multipartFile{field: "image", filename: "hilsa.png", content: oversize})

	rec := serve(e, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UPLOAD_TOO_LARGE", decodeError(t, rec).Code)
}

func TestProductHandler_CreateProduct_MissingRequiredFields(t *testing.T) {
	e, _, _ := newProductTestServer(t)

	rec := serve(e, jsonRequest(http.MethodPost, "/api/products", `{"category":"Fish"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errInfo.Code)
	assert.Contains(t, errInfo.Details, "name")
	assert.Contains(t, errInfo.Details, "seller_id")
}

func TestProductHandler_ListProducts_PassesFilter(t *testing.T) {
	e, productUC, _ := newProductTestServer(t)
	sellerID := uuid.New()

	productUC.EXPECT().
		ListProducts(mock.Anything, entity.ProductFilter{SellerID: sellerID, Category: "Fish", Limit: 10}).
		Return([]*entity.Product{{ID: uuid.New(), Name: "Hilsa"}}, nil)

	rec := serve(e, jsonRequest(http.MethodGet, "/api/products?limit=10&category=Fish&seller_id="+sellerID.String(), ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Hilsa", body[0]["name"])
}

func TestProductHandler_ListProducts_InvalidLimit(t *testing.T) {
	e, _, _ := newProductTestServer(t)

	rec := serve(e, jsonRequest(http.MethodGet, "/api/products?limit=-3", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestProductHandler_GetProduct(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(productUC *mockusecase.MockProductUsecase, id uuid.UUID)
		wantStatus int
		wantCode   string
	}{
		{
			name: "found",
			setup: func(productUC *mockusecase.MockProductUsecase, id uuid.UUID) {
				productUC.EXPECT().GetProduct(mock.Anything, id).Return(&entity.Product{ID: id}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			setup: func(productUC *mockusecase.MockProductUsecase, id uuid.UUID) {
				productUC.EXPECT().GetProduct(mock.Anything, id).
					Return(nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found"))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "PRODUCT_NOT_FOUND",
		},
		{
			name:       "malformed id",
			path:       "/api/products/not-a-uuid",
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "unexpected failure",
			setup: func(productUC *mockusecase.MockProductUsecase, id uuid.UUID) {
				productUC.EXPECT().GetProduct(mock.Anything, id).Return(nil, errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, productUC, _ := newProductTestServer(t)
			id := uuid.New()
			path := tt.path
			if path == "" {
				path = "/api/products/" + id.String()
			}
			if tt.setup != nil {
				tt.setup(productUC, id)
			}

			rec := serve(e, jsonRequest(http.MethodGet, path, ""))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				errInfo := decodeError(t, rec)
				assert.Equal(t, tt.wantCode, errInfo.Code)
				assert.NotContains(t, errInfo.Message, "connection reset")
			}
		})
	}
}

func TestProductHandler_UpdateProduct_PartialJSON(t *testing.T) {
	e, productUC, _ := newProductTestServer(t)
	id := uuid.New()

	productUC.EXPECT().
		UpdateProduct(mock.Anything, id, mock.MatchedBy(func(in *usecase.UpdateProductInput) bool {
			return in.Stock != nil && *in.Stock == 7 &&
				in.Name == nil &&
				in.PricePerUnit != nil && in.PricePerUnit.Equal(decimal.NewFromInt(30)) &&
				in.Image == nil
		})).
		Return(&entity.Product{ID: id, Stock: 7}, nil)

	rec := serve(e, jsonRequest(http.MethodPut, "/api/products/"+id.String(), `{"stock":7,"price_per_unit":30}`))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	e, productUC, _ := newProductTestServer(t)
	id := uuid.New()

	productUC.EXPECT().DeleteProduct(mock.Anything, id).Return(nil)

	rec := serve(e, jsonRequest(http.MethodDelete, "/api/products/"+id.String(), ""))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_ListReviews(t *testing.T) {
	e, _, reviewUC := newProductTestServer(t)
	productID := uuid.New()

	reviewUC.EXPECT().ProductReviews(mock.Anything, productID).
		Return(&usecase.ProductReviews{Reviews: []*entity.Review{}, AverageRating: 0}, nil)

	rec := serve(e, jsonRequest(http.MethodGet, "/api/products/"+productID.String()+"/reviews", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reviews":[],"averageRating":0}`, rec.Body.String())
}
