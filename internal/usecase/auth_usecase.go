package usecase

import (
	"context"

	"haatbazar/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterBuyerInput defines the data required to register a new buyer.
type RegisterBuyerInput struct {
	Name            string
	Email           string
	Password        string
	Phone           string
	BillingAddress  string
	ShippingAddress string
	NID             string
	ImageURL        string
	Image           *Upload
}

// RegisterSellerInput defines the data required to register a new seller.
type RegisterSellerInput struct {
	Email        string
	Password     string
	BusinessName string
	Division     string
	Phone        string
	Address      string
	NID          string
	TinID        string
	TinDoc       *Upload
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the account and its signed access token.
type LoginOutput struct {
	Account     any    `json:"account"`
	AccessToken string `json:"access_token"`
}

// AuthUsecase defines registration and login for every account kind.
type AuthUsecase interface {
	RegisterBuyer(ctx context.Context, input *RegisterBuyerInput) (*entity.Buyer, error)
	RegisterSeller(ctx context.Context, input *RegisterSellerInput) (*entity.Seller, error)
	LoginBuyer(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	LoginSeller(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	LoginAdmin(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// SeedAdmin creates the configured admin account unless it already exists.
	SeedAdmin(ctx context.Context) error
}
