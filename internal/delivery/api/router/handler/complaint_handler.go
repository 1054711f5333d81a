package handler

import (
	"log/slog"

	"haatbazar/internal/delivery/api/response"
	"haatbazar/internal/domain/constants"
	"haatbazar/internal/domain/entity"
	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ComplaintHandlerParams holds dependencies for ComplaintHandler, injected by Fx.
type ComplaintHandlerParams struct {
	fx.In

	ComplaintUC usecase.ComplaintUsecase
	Uploads     *UploadReader
	Logger      *slog.Logger
}

// ComplaintHandler serves buyer and seller complaints. The route decides the kind.
type ComplaintHandler struct {
	complaintUC usecase.ComplaintUsecase
	uploads     *UploadReader
	logger      *slog.Logger
}

// NewComplaintHandler is the constructor for ComplaintHandler
func NewComplaintHandler(params ComplaintHandlerParams) *ComplaintHandler {
	return &ComplaintHandler{
		complaintUC: params.ComplaintUC,
		uploads:     params.Uploads,
		logger:      params.Logger,
	}
}

// FileBuyerComplaintRequest is a buyer's complaint against a seller.
type FileBuyerComplaintRequest struct {
	BuyerID  uuid.UUID `json:"buyer_id" form:"buyer_id"`
	SellerID uuid.UUID `json:"seller_id" form:"seller_id" validate:"required"`
	Message  string    `json:"message" form:"message" validate:"required"`
	Image    string    `json:"image" form:"image"`
}

// FileSellerComplaintRequest is a seller's complaint against a buyer.
type FileSellerComplaintRequest struct {
	SellerID uuid.UUID `json:"seller_id" form:"seller_id" validate:"required"`
	BuyerID  uuid.UUID `json:"buyer_id" form:"buyer_id" validate:"required"`
	Message  string    `json:"message" form:"message" validate:"required"`
	Image    string    `json:"image" form:"image"`
}

// RespondComplaintRequest is an admin decision on a complaint.
type RespondComplaintRequest struct {
	Status   entity.ComplaintStatus `json:"status" validate:"required,oneof=PENDING RESOLVED REJECTED"`
	Response string                 `json:"response"`
}

// FileBuyerComplaint handles POST /api/buyer-complaints
func (h *ComplaintHandler) FileBuyerComplaint(c echo.Context) error {
	var req FileBuyerComplaintRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	if req.BuyerID == uuid.Nil {
		return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails("buyer_id is required"))
	}

	return h.fileBuyerComplaint(c, req.BuyerID, &req)
}

// FileComplaintAsBuyer handles POST /api/complaints/buyer/:buyerId
func (h *ComplaintHandler) FileComplaintAsBuyer(c echo.Context) error {
	buyerID, err := pathID(c, "buyerId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req FileBuyerComplaintRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.fileBuyerComplaint(c, buyerID, &req)
}

func (h *ComplaintHandler) fileBuyerComplaint(c echo.Context, buyerID uuid.UUID, req *FileBuyerComplaintRequest) error {
	return h.file(c, &usecase.FileComplaintInput{
		Kind:          entity.ComplaintKindBuyer,
		ComplainantID: buyerID,
		AccusedID:     req.SellerID,
		Message:       req.Message,
		ImageURL:      req.Image,
	})
}

// FileSellerComplaint handles POST /api/seller-complaints
func (h *ComplaintHandler) FileSellerComplaint(c echo.Context) error {
	var req FileSellerComplaintRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.file(c, &usecase.FileComplaintInput{
		Kind:          entity.ComplaintKindSeller,
		ComplainantID: req.SellerID,
		AccusedID:     req.BuyerID,
		Message:       req.Message,
		ImageURL:      req.Image,
	})
}

func (h *ComplaintHandler) file(c echo.Context, input *usecase.FileComplaintInput) error {
	image, err := h.uploads.Image(c, constants.FormFieldImage)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	input.Image = image

	complaint, err := h.complaintUC.FileComplaint(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, complaint)
}

// ListBuyerComplaints handles GET /api/buyer-complaints
func (h *ComplaintHandler) ListBuyerComplaints(c echo.Context) error {
	return h.list(c, entity.ComplaintKindBuyer)
}

// ListSellerComplaints handles GET /api/seller-complaints
func (h *ComplaintHandler) ListSellerComplaints(c echo.Context) error {
	return h.list(c, entity.ComplaintKindSeller)
}

func (h *ComplaintHandler) list(c echo.Context, kind entity.ComplaintKind) error {
	limit, err := queryLimit(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	complaints, err := h.complaintUC.ListComplaints(c.Request().Context(), kind, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, complaints)
}

// FiledByBuyer handles GET /api/complaints/buyer/:buyerId
func (h *ComplaintHandler) FiledByBuyer(c echo.Context) error {
	return h.filedBy(c, entity.ComplaintKindBuyer, "buyerId")
}

// FiledBySeller handles GET /api/complaints/seller/:sellerId
func (h *ComplaintHandler) FiledBySeller(c echo.Context) error {
	return h.filedBy(c, entity.ComplaintKindSeller, "sellerId")
}

func (h *ComplaintHandler) filedBy(c echo.Context, kind entity.ComplaintKind, param string) error {
	complainantID, err := pathID(c, param)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	complaints, err := h.complaintUC.ComplaintsFiledBy(c.Request().Context(), kind, complainantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, complaints)
}

// RespondToBuyerComplaint handles PUT /api/admin/buyer-complaints/:id
func (h *ComplaintHandler) RespondToBuyerComplaint(c echo.Context) error {
	return h.respond(c, entity.ComplaintKindBuyer)
}

// RespondToSellerComplaint handles PUT /api/admin/seller-complaints/:id
func (h *ComplaintHandler) RespondToSellerComplaint(c echo.Context) error {
	return h.respond(c, entity.ComplaintKindSeller)
}

func (h *ComplaintHandler) respond(c echo.Context, kind entity.ComplaintKind) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RespondComplaintRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	complaint, err := h.complaintUC.RespondToComplaint(c.Request().Context(), kind, id, &usecase.RespondComplaintInput{
		Status:   req.Status,
		Response: req.Response,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, complaint)
}
