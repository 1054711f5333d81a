package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for order receipt QR code generation
type QRCodeService interface {
	// GenerateOrderQR generates a PNG QR code identifying the order
	GenerateOrderQR(orderID uuid.UUID) ([]byte, error)
}
