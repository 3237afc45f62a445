// Package user holds the identity model a wallet address resolves to.
package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents the domain model for a registered user.
type User struct {
	ID            uuid.UUID `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	CreatedAt     time.Time `json:"created_at"`
}

// New creates a User for an already normalized wallet address.
func New(walletAddress string) *User {
	return &User{
		ID:            uuid.New(),
		WalletAddress: walletAddress,
		CreatedAt:     time.Now().UTC(),
	}
}

// RegisterRequest represents a registration request.
// Ownership of the wallet is not proven here.
type RegisterRequest struct {
	WalletAddress string `json:"wallet_address" validate:"required,max=128"`
}

// RegisterResponse represents a registration response
type RegisterResponse struct {
	ID            uuid.UUID `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	// Created is false when the wallet was already registered.
	Created bool `json:"created"`
}
