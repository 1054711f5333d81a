package postgres

import (
	"context"

	"haatbazar/internal/domain/entity"
	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/domain/repository"
	"haatbazar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// FindByID retrieves an order with its line items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", preloadItems).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByBuyer returns a buyer's orders, newest first.
func (repo *orderRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error) {
	return repo.find(ctx, "failed to find orders by buyer", "buyer_id = ?", buyerID)
}

// FindBySeller returns a seller's orders, newest first.
func (repo *orderRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error) {
	return repo.find(ctx, "failed to find orders by seller", "seller_id = ?", sellerID)
}

func (repo *orderRepository) find(ctx context.Context, errMsg string, query any, args ...any) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", preloadItems).
		Where(query, args...).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, errMsg)
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Create persists the order and its line items in one statement batch.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	id, err := ensureID(order.ID)
	if err != nil {
		return err
	}
	order.ID = id
	if order.Status == "" {
		order.Status = entity.OrderStatusPlaced
	}
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid order line items")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// UpdateStatus overwrites the order status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.LineItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.LineItem{
			ProductID: itemM.ProductID,
			Quantity:  itemM.Quantity,
			Subtotal:  itemM.Subtotal,
		})
	}

	return &entity.Order{
		ID:              data.ID,
		BuyerID:         data.BuyerID,
		SellerID:        data.SellerID,
		TotalPrice:      data.TotalPrice,
		Status:          entity.OrderStatus(data.Status),
		ShippingAddress: data.ShippingAddress,
		BillingAddress:  data.BillingAddress,
		OrderedProducts: items,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.OrderedProducts))
	for i, item := range data.OrderedProducts {
		items = append(items, model.OrderItemModel{
			OrderID:   data.ID,
			Position:  i,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		BuyerID:         data.BuyerID,
		SellerID:        data.SellerID,
		TotalPrice:      data.TotalPrice,
		Status:          string(data.Status),
		ShippingAddress: data.ShippingAddress,
		BillingAddress:  data.BillingAddress,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		Items:           items,
	}
}
