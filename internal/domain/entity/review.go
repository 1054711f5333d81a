package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a buyer's opinion of a product. A buyer reviews a product at most once.
type Review struct {
	ID        uuid.UUID `json:"id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
	ProductID uuid.UUID `json:"product_id"`
	OrderID   uuid.UUID `json:"order_id"`
	Rating    *int      `json:"rating,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	Image     string    `json:"image,omitempty"`
	Buyer     *Buyer    `json:"buyer,omitempty"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AverageRating is Σ rating / count over the reviews that carry a rating.
// With no rated reviews it is 0.
func AverageRating(reviews []*Review) float64 {
	var sum, count int
	for _, r := range reviews {
		if r == nil || r.Rating == nil {
			continue
		}
		sum += *r.Rating
		count++
	}
	if count == 0 {
		return 0
	}

	return float64(sum) / float64(count)
}
