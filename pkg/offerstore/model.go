package offerstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/chainsafe/swap-offers/pkg/catalog"
	"github.com/chainsafe/swap-offers/pkg/offer"
	"github.com/chainsafe/swap-offers/pkg/userstore"
)

// OfferDao maps to the 'offers' table.
type OfferDao struct {
	bun.BaseModel `bun:"table:offers,alias:o"`
	ID            uuid.UUID          `bun:"id,pk,type:uuid"`
	Status        int16              `bun:"status,notnull,default:0"`
	TraderID      uuid.UUID          `bun:"trader_id,notnull,type:uuid"`
	Trader        *userstore.UserDao `bun:"rel:belongs-to,join:trader_id=id"`
	FulfillerID   *uuid.UUID         `bun:"fulfiller_id,type:uuid"`
	Fulfiller     *userstore.UserDao `bun:"rel:belongs-to,join:fulfiller_id=id"`
	ChainAID      uuid.UUID          `bun:"chain_a_id,notnull,type:uuid"`
	ChainA        *catalog.ChainDao  `bun:"rel:belongs-to,join:chain_a_id=id"`
	ChainBID      uuid.UUID          `bun:"chain_b_id,notnull,type:uuid"`
	ChainB        *catalog.ChainDao  `bun:"rel:belongs-to,join:chain_b_id=id"`
	TokenIn       []TokenLegDoc      `bun:"token_in,type:jsonb,notnull"`
	TokenOut      []TokenLegDoc      `bun:"token_out,type:jsonb,notnull"`
	NFTIn         []NFTLegDoc        `bun:"nft_in,type:jsonb,notnull"`
	NFTOut        []NFTLegDoc        `bun:"nft_out,type:jsonb,notnull"`
	OnChainID     *string            `bun:"on_chain_id,type:varchar(128)"`
	CreatedAt     time.Time          `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time          `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// TokenLegDoc is the stored form of a token leg. Amounts are kept as strings
// so no precision is lost in jsonb.
type TokenLegDoc struct {
	TokenID uuid.UUID `json:"token_id"`
	Amount  string    `json:"amount"`
}

// NFTLegDoc is the stored form of an NFT leg.
type NFTLegDoc struct {
	NFTID        string    `json:"nft_id"`
	CollectionID uuid.UUID `json:"collection_id"`
}

func toOfferDao(o *offer.Offer) *OfferDao {
	dao := &OfferDao{
		ID:          o.ID,
		Status:      int16(o.Status),
		TraderID:    o.TraderID,
		FulfillerID: o.FulfillerID,
		ChainAID:    o.ChainAID,
		ChainBID:    o.ChainBID,
		TokenIn:     toTokenDocs(o.TokenIn),
		TokenOut:    toTokenDocs(o.TokenOut),
		NFTIn:       toNFTDocs(o.NFTIn),
		NFTOut:      toNFTDocs(o.NFTOut),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	if o.OnChainID != "" {
		onChainID := o.OnChainID
		dao.OnChainID = &onChainID
	}
	return dao
}

// toTokenDocs never returns nil so the column is written as [] rather than null.
func toTokenDocs(legs []offer.TokenLeg) []TokenLegDoc {
	docs := make([]TokenLegDoc, 0, len(legs))
	for _, l := range legs {
		docs = append(docs, TokenLegDoc{TokenID: l.TokenID, Amount: l.Amount.String()})
	}
	return docs
}

func toNFTDocs(legs []offer.NFTLeg) []NFTLegDoc {
	docs := make([]NFTLegDoc, 0, len(legs))
	for _, l := range legs {
		docs = append(docs, NFTLegDoc(l))
	}
	return docs
}

func toOffer(dao *OfferDao) (*offer.Offer, error) {
	tokenIn, err := fromTokenDocs(dao.TokenIn)
	if err != nil {
		return nil, err
	}
	tokenOut, err := fromTokenDocs(dao.TokenOut)
	if err != nil {
		return nil, err
	}

	o := &offer.Offer{
		ID:          dao.ID,
		Status:      offer.Status(dao.Status),
		TraderID:    dao.TraderID,
		FulfillerID: dao.FulfillerID,
		ChainAID:    dao.ChainAID,
		ChainBID:    dao.ChainBID,
		TokenIn:     tokenIn,
		TokenOut:    tokenOut,
		NFTIn:       fromNFTDocs(dao.NFTIn),
		NFTOut:      fromNFTDocs(dao.NFTOut),
		CreatedAt:   dao.CreatedAt,
		UpdatedAt:   dao.UpdatedAt,
	}
	if dao.OnChainID != nil {
		o.OnChainID = *dao.OnChainID
	}
	if dao.Trader != nil && dao.Trader.ID != uuid.Nil {
		o.Trader = &offer.Participant{ID: dao.Trader.ID, WalletAddress: dao.Trader.WalletAddress}
	}
	if dao.Fulfiller != nil && dao.Fulfiller.ID != uuid.Nil {
		o.Fulfiller = &offer.Participant{ID: dao.Fulfiller.ID, WalletAddress: dao.Fulfiller.WalletAddress}
	}
	o.ChainA = toChain(dao.ChainA)
	o.ChainB = toChain(dao.ChainB)
	return o, nil
}

func toChain(dao *catalog.ChainDao) *offer.Chain {
	if dao == nil || dao.ID == uuid.Nil {
		return nil
	}
	return &offer.Chain{ID: dao.ID, ChainID: dao.ChainID, Name: dao.Name}
}

func fromTokenDocs(docs []TokenLegDoc) ([]offer.TokenLeg, error) {
	legs := make([]offer.TokenLeg, 0, len(docs))
	for _, d := range docs {
		amount := decimal.Zero
		if d.Amount != "" {
			var err error
			if amount, err = decimal.NewFromString(d.Amount); err != nil {
				return nil, err
			}
		}
		legs = append(legs, offer.TokenLeg{TokenID: d.TokenID, Amount: amount})
	}
	return legs, nil
}

func fromNFTDocs(docs []NFTLegDoc) []offer.NFTLeg {
	legs := make([]offer.NFTLeg, 0, len(docs))
	for _, d := range docs {
		legs = append(legs, offer.NFTLeg(d))
	}
	return legs
}
