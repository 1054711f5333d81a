// Package service declares the ports usecases call for work that lives outside the record store:
// hashing, tokens, blobs, events and QR rendering.
package service

// PasswordHasher stores and verifies buyer, seller and admin passwords. Plaintext never reaches the store.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches a hash produced by Hash.
	Check(password, hash string) bool
}
