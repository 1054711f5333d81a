package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"haatbazar/internal/domain/entity"
	mockusecase "haatbazar/internal/mocks/usecase"
	"haatbazar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newComplaintTestServer(t *testing.T) (*echo.Echo, *mockusecase.MockComplaintUsecase) {
	complaintUC := mockusecase.NewMockComplaintUsecase(t)
	h := NewComplaintHandler(ComplaintHandlerParams{ComplaintUC: complaintUC, Uploads: newTestUploads(), Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho()
	e.POST("/api/buyer-complaints", h.FileBuyerComplaint)
	e.GET("/api/buyer-complaints", h.ListBuyerComplaints)
	e.POST("/api/seller-complaints", h.FileSellerComplaint)
	e.GET("/api/seller-complaints", h.ListSellerComplaints)
	e.POST("/api/complaints/buyer/:buyerId", h.FileComplaintAsBuyer)
	e.GET("/api/complaints/buyer/:buyerId", h.FiledByBuyer)
	e.GET("/api/complaints/seller/:sellerId", h.FiledBySeller)
	e.PUT("/api/admin/buyer-complaints/:id", h.RespondToBuyerComplaint)
	e.PUT("/api/admin/seller-complaints/:id", h.RespondToSellerComplaint)

	return e, complaintUC
}

func TestComplaintHandler_FileComplaint(t *testing.T) {
	buyerID, sellerID := uuid.New(), uuid.New()

	tests := []struct {
		name string
		path string
		body string
		want usecase.FileComplaintInput
	}{
		{
			name: "buyer against seller",
			path: "/api/buyer-complaints",
			body: `{"buyer_id":"` + buyerID.String() + `","seller_id":"` + sellerID.String() + `","message":"late delivery"}`,
			want: usecase.FileComplaintInput{Kind: entity.ComplaintKindBuyer, ComplainantID: buyerID, AccusedID: sellerID, Message: "late delivery"},
		},
		{
			name: "buyer from path",
			path: "/api/complaints/buyer/" + buyerID.String(),
			body: `{"seller_id":"` + sellerID.String() + `","message":"rotten"}`,
			want: usecase.FileComplaintInput{Kind: entity.ComplaintKindBuyer, ComplainantID: buyerID, AccusedID: sellerID, Message: "rotten"},
		},
		{
			name: "seller against buyer",
			path: "/api/seller-complaints",
			body: `{"seller_id":"` + sellerID.String() + `","buyer_id":"` + buyerID.String() + `","message":"no payment"}`,
			want: usecase.FileComplaintInput{Kind: entity.ComplaintKindSeller, ComplainantID: sellerID, AccusedID: buyerID, Message: "no payment"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, complaintUC := newComplaintTestServer(t)
			want := tt.want

			complaintUC.EXPECT().FileComplaint(mock.Anything, &want).
				Return(&entity.Complaint{ID: uuid.New(), Status: entity.ComplaintStatusPending}, nil)

			rec := serve(e, jsonRequest(http.MethodPost, tt.path, tt.body))

			assert.Equal(t, http.StatusCreated, rec.Code)
			assert.Contains(t, rec.Body.String(), `"status":"PENDING"`)
		})
	}
}

func TestComplaintHandler_FileBuyerComplaint_RequiresBuyer(t *testing.T) {
	e, _ := newComplaintTestServer(t)

	rec := serve(e, jsonRequest(http.MethodPost, "/api/buyer-complaints", `{"seller_id":"`+uuid.NewString()+`","message":"x"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestComplaintHandler_ListAndFiledBy(t *testing.T) {
	e, complaintUC := newComplaintTestServer(t)
	sellerID := uuid.New()

	complaintUC.EXPECT().ListComplaints(mock.Anything, entity.ComplaintKindSeller, 20).Return([]*entity.Complaint{}, nil)
	complaintUC.EXPECT().ComplaintsFiledBy(mock.Anything, entity.ComplaintKindSeller, sellerID).Return([]*entity.Complaint{}, nil)

	rec := serve(e, jsonRequest(http.MethodGet, "/api/seller-complaints?limit=20", ""))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = serve(e, jsonRequest(http.MethodGet, "/api/complaints/seller/"+sellerID.String(), ""))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestComplaintHandler_Respond(t *testing.T) {
	e, complaintUC := newComplaintTestServer(t)
	id := uuid.New()

	complaintUC.EXPECT().
		RespondToComplaint(mock.Anything, entity.ComplaintKindBuyer, id, &usecase.RespondComplaintInput{
			Status:   entity.ComplaintStatusResolved,
			Response: "refund issued",
		}).
		Return(&entity.Complaint{ID: id, Status: entity.ComplaintStatusResolved, Response: "refund issued"}, nil)

	rec := serve(e, jsonRequest(http.MethodPut, "/api/admin/buyer-complaints/"+id.String(),
		`{"status":"RESOLVED","response":"refund issued"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"response":"refund issued"`)
}
