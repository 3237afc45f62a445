// Package offer holds the domain model for two-party cross-chain swap offers
// and the rules that govern how their lifecycle advances.
package offer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Participant is a resolved user identity attached to an offer.
type Participant struct {
	ID            uuid.UUID `json:"id"`
	WalletAddress string    `json:"wallet_address"`
}

// Chain is the resolved chain reference of one leg of the swap.
type Chain struct {
	ID      uuid.UUID `json:"id"`
	ChainID string    `json:"chain_id"`
	Name    string    `json:"name,omitzero"`
}

// TokenLeg is a fungible token offered or requested by the trader.
// A zero amount means the amount is not specified.
type TokenLeg struct {
	TokenID uuid.UUID       `json:"token_id"`
	Amount  decimal.Decimal `json:"amount"`
}

// NFTLeg is a single NFT offered or requested by the trader.
type NFTLeg struct {
	NFTID        string    `json:"nft_id"`
	CollectionID uuid.UUID `json:"collection_id"`
}

// Offer is the shared record two parties use to negotiate and settle a swap.
//
// TraderID never changes after creation. FulfillerID is set at most once,
// either at creation (pre-selected counterparty) or by a successful claim.
type Offer struct {
	ID          uuid.UUID    `json:"id"`
	Status      Status       `json:"status"`
	TraderID    uuid.UUID    `json:"trader_id"`
	Trader      *Participant `json:"trader,omitempty"`
	FulfillerID *uuid.UUID   `json:"fulfiller_id,omitempty"`
	Fulfiller   *Participant `json:"fulfiller,omitempty"`
	ChainAID    uuid.UUID    `json:"chain_a_id"`
	ChainA      *Chain       `json:"chain_a,omitempty"`
	ChainBID    uuid.UUID    `json:"chain_b_id"`
	ChainB      *Chain       `json:"chain_b,omitempty"`
	TokenIn     []TokenLeg   `json:"token_in"`
	TokenOut    []TokenLeg   `json:"token_out"`
	NFTIn       []NFTLeg     `json:"nft_in"`
	NFTOut      []NFTLeg     `json:"nft_out"`
	OnChainID   string       `json:"on_chain_id,omitzero"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// New creates an offer in the CREATED stage.
func New(traderID, chainAID, chainBID uuid.UUID) *Offer {
	now := time.Now().UTC()
	return &Offer{
		ID:        uuid.New(),
		Status:    StatusCreated,
		TraderID:  traderID,
		ChainAID:  chainAID,
		ChainBID:  chainBID,
		TokenIn:   []TokenLeg{},
		TokenOut:  []TokenLeg{},
		NFTIn:     []NFTLeg{},
		NFTOut:    []NFTLeg{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasFulfiller reports whether a counterparty is attached.
func (o *Offer) HasFulfiller() bool {
	return o.FulfillerID != nil && *o.FulfillerID != uuid.Nil
}

// IsTrader reports whether id is the offer's initiator.
func (o *Offer) IsTrader(id uuid.UUID) bool {
	return id != uuid.Nil && o.TraderID == id
}

// IsFulfiller reports whether id is the offer's current counterparty.
func (o *Offer) IsFulfiller(id uuid.UUID) bool {
	return id != uuid.Nil && o.HasFulfiller() && *o.FulfillerID == id
}

// TokenLegDraft is an unresolved token reference supplied by a caller.
type TokenLegDraft struct {
	Token  string `json:"token" validate:"required"`
	Amount string `json:"amount,omitzero" validate:"omitempty,numeric"`
}

// NFTLegDraft is an unresolved NFT descriptor supplied by a caller.
type NFTLegDraft struct {
	NFTID      string `json:"nft_id" validate:"required,max=255"`
	Collection string `json:"collection" validate:"required"`
}

// Draft is the caller-supplied description of a new offer. References are
// catalog ids in string form and are resolved by the lifecycle engine.
type Draft struct {
	ChainA    string          `json:"chain_a" validate:"required"`
	ChainB    string          `json:"chain_b" validate:"required"`
	TokenIn   []TokenLegDraft `json:"token_in" validate:"dive"`
	TokenOut  []TokenLegDraft `json:"token_out" validate:"dive"`
	NFTIn     []NFTLegDraft   `json:"nft_in" validate:"dive"`
	NFTOut    []NFTLegDraft   `json:"nft_out" validate:"dive"`
	Fulfiller string          `json:"fulfiller_address,omitzero"`
}

// ParseAmount parses an optional token amount. Empty means zero.
func ParseAmount(v string) (decimal.Decimal, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, v)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, v)
	}
	return d, nil
}

// AdvanceRequest asks the lifecycle engine to move an offer to Status on
// behalf of the wallet CallerWallet.
type AdvanceRequest struct {
	OfferID      uuid.UUID
	Status       Status
	CallerWallet string
	OnChainID    *string
}

// Filter selects offers for listing. Zero-valued fields impose no constraint.
type Filter struct {
	// ChainID is an external chain identifier matched against either leg.
	ChainID string
	// NFTID is matched as a substring of any NFT id on either side.
	NFTID string
	Status *Status
	// NFTCollectionID is matched exactly against any NFT collection on either side.
	NFTCollectionID string
}

// IsEmpty reports whether f matches every offer.
func (f Filter) IsEmpty() bool {
	return f.ChainID == "" && f.NFTID == "" && f.Status == nil && f.NFTCollectionID == ""
}

// Role is a participant's side of an offer.
type Role string

const (
	RoleTrader    Role = "trader"
	RoleFulfiller Role = "fulfiller"
)

// ParseRole validates a role string.
func ParseRole(v string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(v))); r {
	case RoleTrader, RoleFulfiller:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", v)
	}
}
