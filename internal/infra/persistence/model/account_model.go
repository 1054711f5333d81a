package model

import (
	"time"

	"github.com/google/uuid"
)

// BuyerModel mirrors the 'buyers' table. Ids are UUIDv7 assigned by the application.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type BuyerModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone           string    `gorm:"type:varchar(32);not null"`
	BillingAddress  string    `gorm:"type:text"`
	ShippingAddress string    `gorm:"type:text"`
	NID             string    `gorm:"column:nid;type:varchar(64)"`
	Image           string    `gorm:"type:text"`
	Status          string    `gorm:"type:varchar(16);not null;default:ACTIVE"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (BuyerModel) TableName() string {
	return "buyers"
}

// SellerModel mirrors the 'sellers' table.
type SellerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	BusinessName string    `gorm:"type:varchar(150);not null"`
	Division     string    `gorm:"type:varchar(64);not null"`
	Phone        string    `gorm:"type:varchar(32);not null"`
	Status       string    `gorm:"type:varchar(16);not null;default:ACTIVE"`
	Address      string    `gorm:"type:text"`
	NID          string    `gorm:"column:nid;type:varchar(64)"`
	TinID        string    `gorm:"type:varchar(64)"`
	TinDoc       string    `gorm:"type:text"`
	Image        string    `gorm:"type:text"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerModel) TableName() string {
	return "sellers"
}

// AdminModel mirrors the 'admins' table.
type AdminModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	Role         string    `gorm:"type:varchar(16);not null;default:admin"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}
