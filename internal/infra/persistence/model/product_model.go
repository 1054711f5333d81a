package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. Stock is guarded by a check constraint.
type ProductModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(200);not null"`
	Category     string          `gorm:"type:varchar(100);index"`
	Subcategory  string          `gorm:"type:varchar(100)"`
	SellerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Division     string          `gorm:"type:varchar(64)"`
	Unit         string          `gorm:"type:varchar(32)"`
	PricePerUnit decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Image        string          `gorm:"type:text;not null"`
	Stock        int             `gorm:"not null;default:0;check:stock >= 0"`
	Description  string          `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
