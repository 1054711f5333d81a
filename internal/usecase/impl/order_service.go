package impl

import (
	"context"
	"log/slog"

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

type orderService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	buyerRepo  repository.BuyerRepository
	sellerRepo repository.SellerRepository
	publisher  service.EventPublisher
	qrCode     service.QRCodeService
	logger     *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	OrderRepo  repository.OrderRepository
	BuyerRepo  repository.BuyerRepository
	SellerRepo repository.SellerRepository
	Publisher  service.EventPublisher
	QRCode     service.QRCodeService
	Logger     *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:  params.TxManager,
		orderRepo:  params.OrderRepo,
		buyerRepo:  params.BuyerRepo,
		sellerRepo: params.SellerRepo,
		publisher:  params.Publisher,
		qrCode:     params.QRCode,
		logger:     params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder validates the line items, then decrements stock and persists the order in one transaction.
// A failed decrement rolls back every earlier decrement.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	order := &entity.Order{
		BuyerID:         input.BuyerID,
		SellerID:        input.SellerID,
		TotalPrice:      input.TotalPrice,
		Status:          entity.OrderStatusPlaced,
		ShippingAddress: input.ShippingAddress,
		BillingAddress:  input.BillingAddress,
		OrderedProducts: input.Items,
	}

	if err := validateLineItems(order); err != nil {
		return nil, err
	}

	if _, err := srv.buyerRepo.FindByID(ctx, order.BuyerID); err != nil {
		return nil, mapBuyerError(err)
	}
	if _, err := srv.sellerRepo.FindByID(ctx, order.SellerID); err != nil {
		return nil, mapSellerError(err)
	}

	srv.log(ctx).Info("Placing order",
		slog.Any("buyer_id", order.BuyerID),
		slog.Any("seller_id", order.SellerID),
		slog.Int("items", len(order.OrderedProducts)),
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		orderRepo := repoFactory.NewOrderRepository()

		if err := checkProductsBelongToSeller(ctx, productRepo, order); err != nil {
			return err
		}

		for _, item := range order.OrderedProducts {
			if err := productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return errors.Wrapf(domainerrors.ErrInsufficientStock, "product %s", item.ProductID)
				}

				return mapProductError(err)
			}
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order placement failed", slog.Any("buyer_id", order.BuyerID), slog.Any("error", err))

		return nil, err
	}

	srv.publish(ctx, &service.MarketEvent{
		Type:     service.EventOrderPlaced,
		OrderID:  order.ID.String(),
		BuyerID:  order.BuyerID.String(),
		SellerID: order.SellerID.String(),
		Amount:   order.TotalPrice,
		Status:   string(order.Status),
	})

	return order, nil
}

func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapOrderError(err)
	}

	return order, nil
}

func (srv *orderService) ListBuyerOrders(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByBuyer(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buyer orders")
	}

	return orders, nil
}

func (srv *orderService) ListSellerOrders(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller orders")
	}

	return orders, nil
}

// UpdateOrderStatus overwrites the status with any enumerated value. Cancelling does not restock.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid order status %q", status)
	}

	if err := srv.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, mapOrderError(err)
	}

	return srv.GetOrder(ctx, id)
}

func (srv *orderService) OrderReceiptQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateOrderQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}

func (srv *orderService) publish(ctx context.Context, event *service.MarketEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish event",
			slog.String("type", event.Type),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}

func validateLineItems(order *entity.Order) error {
	if len(order.OrderedProducts) == 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "order has no products")
	}

	for i, item := range order.OrderedProducts {
		if item.ProductID == uuid.Nil {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "item %d has no product", i)
		}
		if item.Quantity <= 0 {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "item %d quantity must be positive", i)
		}
		if item.Subtotal.IsNegative() {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "item %d subtotal must not be negative", i)
		}
		if !entity.IsMoney(item.Subtotal) {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "item %d subtotal has more than %d decimal places", i, entity.MoneyScale)
		}
	}

	if !entity.IsMoney(order.TotalPrice) {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "total price has more than %d decimal places", entity.MoneyScale)
	}

	if !order.SubtotalSum().Equal(order.TotalPrice) {
		return errors.Wrapf(domainerrors.ErrOrderTotalMismatch,
			"subtotals add up to %s, total is %s", order.SubtotalSum(), order.TotalPrice)
	}

	return nil
}

func checkProductsBelongToSeller(ctx context.Context, productRepo repository.ProductRepository, order *entity.Order) error {
	ids := order.ProductIDs()
	products, err := productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to load ordered products")
	}

	found := make(map[uuid.UUID]*entity.Product, len(products))
	for _, p := range products {
		found[p.ID] = p
	}

	for _, id := range ids {
		product, ok := found[id]
		if !ok {
			return errors.Wrapf(domainerrors.ErrProductNotFound, "product %s", id)
		}
		if product.SellerID != order.SellerID {
			return errors.Wrapf(domainerrors.ErrProductSellerMismatch, "product %s", id)
		}
	}

	return nil
}

func mapOrderError(err error) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
	}

	return errors.Wrap(err, "order repository failure")
}
