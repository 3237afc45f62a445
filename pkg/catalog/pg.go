package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PGStore is the postgres backed catalog.
type PGStore struct {
	db bun.IDB
}

// NewStore creates a new postgres implementation of the catalog
func NewStore(db bun.IDB) *PGStore {
	return &PGStore{db: db}
}

func parseRef(ref string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(ref))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrMalformedReference, ref)
	}
	return id, nil
}

func (s *PGStore) resolve(ctx context.Context, model any, alias, kind, ref string) (uuid.UUID, error) {
	id, err := parseRef(ref)
	if err != nil {
		return uuid.Nil, err
	}
	exists, err := s.db.NewSelect().
		Model(model).
		Where("?.id = ?", bun.Ident(alias), id).
		Exists(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to resolve %s: %w", kind, err)
	}
	if !exists {
		return uuid.Nil, fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
	}
	return id, nil
}

// ResolveChain validates a chain reference and returns its id.
func (s *PGStore) ResolveChain(ctx context.Context, ref string) (uuid.UUID, error) {
	return s.resolve(ctx, (*ChainDao)(nil), "c", "chain", ref)
}

// ResolveToken validates a token reference and returns its id.
func (s *PGStore) ResolveToken(ctx context.Context, ref string) (uuid.UUID, error) {
	return s.resolve(ctx, (*TokenDao)(nil), "t", "token", ref)
}

// ResolveNFTCollection validates an NFT collection reference and returns its id.
func (s *PGStore) ResolveNFTCollection(ctx context.Context, ref string) (uuid.UUID, error) {
	return s.resolve(ctx, (*NFTCollectionDao)(nil), "nc", "nft collection", ref)
}

func (s *PGStore) ListChains(ctx context.Context) ([]Chain, error) {
	var daos []ChainDao
	if err := s.db.NewSelect().Model(&daos).Order("c.chain_id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list chains: %w", err)
	}
	out := make([]Chain, 0, len(daos))
	for i := range daos {
		out = append(out, toChain(&daos[i]))
	}
	return out, nil
}

// ListTokens returns all tokens, optionally narrowed to one chain.
func (s *PGStore) ListTokens(ctx context.Context, chainRef *uuid.UUID) ([]Token, error) {
	var daos []TokenDao
	q := s.db.NewSelect().Model(&daos).Order("t.symbol ASC", "t.id ASC")
	if chainRef != nil {
		q = q.Where("t.chain_ref = ?", *chainRef)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}
	out := make([]Token, 0, len(daos))
	for i := range daos {
		out = append(out, toToken(&daos[i]))
	}
	return out, nil
}

// ListNFTCollections returns all collections, optionally narrowed to one chain.
func (s *PGStore) ListNFTCollections(ctx context.Context, chainRef *uuid.UUID) ([]NFTCollection, error) {
	var daos []NFTCollectionDao
	q := s.db.NewSelect().Model(&daos).Order("nc.name ASC", "nc.id ASC")
	if chainRef != nil {
		q = q.Where("nc.chain_ref = ?", *chainRef)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list nft collections: %w", err)
	}
	out := make([]NFTCollection, 0, len(daos))
	for i := range daos {
		out = append(out, toNFTCollection(&daos[i]))
	}
	return out, nil
}

// UpsertChain inserts a chain or renames the existing one with the same
// external chain id. The stored id is written back to c.
func (s *PGStore) UpsertChain(ctx context.Context, c *Chain) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	dao := &ChainDao{ID: c.ID, ChainID: c.ChainID, Name: c.Name}
	_, err := s.db.NewInsert().
		Model(dao).
		On("CONFLICT (chain_id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Returning("id").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert chain %s: %w", c.ChainID, err)
	}
	c.ID = dao.ID
	return nil
}

func (s *PGStore) UpsertToken(ctx context.Context, t *Token) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	_, err := s.db.NewInsert().
		Model(&TokenDao{
			ID:       t.ID,
			ChainRef: t.ChainRef,
			Address:  t.Address,
			Symbol:   t.Symbol,
			Decimals: t.Decimals,
		}).
		On("CONFLICT (id) DO UPDATE").
		Set("chain_ref = EXCLUDED.chain_ref").
		Set("address = EXCLUDED.address").
		Set("symbol = EXCLUDED.symbol").
		Set("decimals = EXCLUDED.decimals").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert token %s: %w", t.Symbol, err)
	}
	return nil
}

func (s *PGStore) UpsertNFTCollection(ctx context.Context, c *NFTCollection) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	_, err := s.db.NewInsert().
		Model(&NFTCollectionDao{
			ID:       c.ID,
			ChainRef: c.ChainRef,
			Address:  c.Address,
			Name:     c.Name,
		}).
		On("CONFLICT (id) DO UPDATE").
		Set("chain_ref = EXCLUDED.chain_ref").
		Set("address = EXCLUDED.address").
		Set("name = EXCLUDED.name").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert nft collection %s: %w", c.Name, err)
	}
	return nil
}
