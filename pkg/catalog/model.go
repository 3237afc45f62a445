package catalog

import (
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ChainDao maps to the 'chains' table.
type ChainDao struct {
	bun.BaseModel `bun:"table:chains,alias:c"`
	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	ChainID       string    `bun:"chain_id,unique,notnull,type:varchar(64)"`
	Name          string    `bun:"name,notnull,type:varchar(128)"`
}

// TokenDao maps to the 'tokens' table.
type TokenDao struct {
	bun.BaseModel `bun:"table:tokens,alias:t"`
	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	ChainRef      uuid.UUID `bun:"chain_ref,notnull,type:uuid"`
	Chain         *ChainDao `bun:"rel:belongs-to,join:chain_ref=id"`
	Address       string    `bun:"address,notnull,type:varchar(128)"`
	Symbol        string    `bun:"symbol,notnull,type:varchar(32)"`
	Decimals      int16     `bun:"decimals,notnull,default:18"`
}

// NFTCollectionDao maps to the 'nft_collections' table.
type NFTCollectionDao struct {
	bun.BaseModel `bun:"table:nft_collections,alias:nc"`
	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	ChainRef      uuid.UUID `bun:"chain_ref,notnull,type:uuid"`
	Chain         *ChainDao `bun:"rel:belongs-to,join:chain_ref=id"`
	Address       string    `bun:"address,notnull,type:varchar(128)"`
	Name          string    `bun:"name,notnull,type:varchar(128)"`
}

func toChain(dao *ChainDao) Chain {
	return Chain{ID: dao.ID, ChainID: dao.ChainID, Name: dao.Name}
}

func toToken(dao *TokenDao) Token {
	return Token{
		ID:       dao.ID,
		ChainRef: dao.ChainRef,
		Address:  dao.Address,
		Symbol:   dao.Symbol,
		Decimals: dao.Decimals,
	}
}

func toNFTCollection(dao *NFTCollectionDao) NFTCollection {
	return NFTCollection{
		ID:       dao.ID,
		ChainRef: dao.ChainRef,
		Address:  dao.Address,
		Name:     dao.Name,
	}
}
