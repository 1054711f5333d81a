package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a listing owned by exactly one seller. Stock never goes below zero.
type Product struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Subcategory  string          `json:"subcategory"`
	SellerID     uuid.UUID       `json:"seller_id"`
	Division     string          `json:"division"`
	Unit         string          `json:"unit"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Image        string          `json:"image"`
	Stock        int             `json:"stock"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductFilter narrows product listings. Zero values mean "no constraint".
type ProductFilter struct {
	SellerID uuid.UUID
	Category string
	Limit    int
}
