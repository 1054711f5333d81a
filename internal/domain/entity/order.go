package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is placed by one buyer against one seller.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	BuyerID         uuid.UUID       `json:"buyer_id"`
	SellerID        uuid.UUID       `json:"seller_id"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Status          OrderStatus     `json:"status"`
	ShippingAddress string          `json:"shipping_address"`
	BillingAddress  string          `json:"billing_address"`
	OrderedProducts []LineItem      `json:"ordered_products"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// LineItem is one product+quantity+subtotal entry within an order.
type LineItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// ProductIDs returns the distinct product ids referenced by the order, in line-item order.
func (o *Order) ProductIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(o.OrderedProducts))
	ids := make([]uuid.UUID, 0, len(o.OrderedProducts))
	for _, item := range o.OrderedProducts {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	return ids
}

// SubtotalSum adds up the line-item subtotals.
func (o *Order) SubtotalSum() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.OrderedProducts {
		sum = sum.Add(item.Subtotal)
	}

	return sum
}
