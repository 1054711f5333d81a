// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "io"

// Upload is a file received with a request, already size-checked and sniffed by the delivery layer.
type Upload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}
