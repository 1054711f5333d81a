package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. A buyer reviews a product at most once.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_buyer_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_buyer_product;index"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null"`
	Rating    *int      `gorm:"check:rating IS NULL OR (rating >= 1 AND rating <= 5)"`
	Comment   string    `gorm:"type:text"`
	Image     string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Buyer   *BuyerModel   `gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE"`
	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
