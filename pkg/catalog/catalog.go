// Package catalog stores the reference data offers point at: chains, fungible
// tokens and NFT collections.
package catalog

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrMalformedReference is returned when a reference is not a valid id.
	ErrMalformedReference = errors.New("malformed catalog reference")
	// ErrNotFound is returned when a well formed reference names no entry.
	ErrNotFound = errors.New("catalog entry not found")
)

// Chain is a blockchain an offer leg can live on.
type Chain struct {
	ID      uuid.UUID `json:"id" yaml:"id"`
	ChainID string    `json:"chain_id" yaml:"chain_id"`
	Name    string    `json:"name" yaml:"name"`
}

// Token is a fungible token contract on a chain.
type Token struct {
	ID       uuid.UUID `json:"id"`
	ChainRef uuid.UUID `json:"chain_ref"`
	Address  string    `json:"address"`
	Symbol   string    `json:"symbol"`
	Decimals int16     `json:"decimals"`
}

// NFTCollection is an NFT contract on a chain.
type NFTCollection struct {
	ID       uuid.UUID `json:"id"`
	ChainRef uuid.UUID `json:"chain_ref"`
	Address  string    `json:"address"`
	Name     string    `json:"name"`
}
