package model

import (
	"time"

	"github.com/google/uuid"
)

// Complaint tables share one column layout.
const (
	BuyerComplaintTable  = "buyer_complaints"
	SellerComplaintTable = "seller_complaints"
)

// ComplaintModel is the row shape of both complaint tables. Callers select the table explicitly.
type ComplaintModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ComplainantID uuid.UUID `gorm:"type:uuid;not null;index"`
	AccusedID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Message       string    `gorm:"type:text;not null"`
	Image         string    `gorm:"type:text"`
	Status        string    `gorm:"type:varchar(16);not null;default:PENDING"`
	Response      string    `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BuyerComplaintModel mirrors 'buyer_complaints': a buyer complaining about a seller.
type BuyerComplaintModel struct {
	ComplaintModel `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (BuyerComplaintModel) TableName() string {
	return BuyerComplaintTable
}

// SellerComplaintModel mirrors 'seller_complaints': a seller complaining about a buyer.
type SellerComplaintModel struct {
	ComplaintModel `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (SellerComplaintModel) TableName() string {
	return SellerComplaintTable
}

// All returns every persistence model, in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&BuyerModel{},
		&SellerModel{},
		&AdminModel{},
		&ProductModel{},
		&OrderModel{},
		&OrderItemModel{},
		&TransactionModel{},
		&ReviewModel{},
		&BuyerComplaintModel{},
		&SellerComplaintModel{},
	}
}
