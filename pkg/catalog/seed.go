package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Seed is the reference data loaded at startup. Tokens and collections name
// their chain by its external chain id.
type Seed struct {
	Chains []SeedChain `yaml:"chains" validate:"dive"`
	Tokens []SeedToken `yaml:"tokens" validate:"dive"`
	NFTs   []SeedNFT   `yaml:"nft_collections" validate:"dive"`
}

type SeedChain struct {
	ID      uuid.UUID `yaml:"id"`
	ChainID string    `yaml:"chain_id" validate:"required,max=64"`
	Name    string    `yaml:"name" validate:"required"`
}

type SeedToken struct {
	ID       uuid.UUID `yaml:"id" validate:"required"`
	Chain    string    `yaml:"chain" validate:"required"`
	Address  string    `yaml:"address" validate:"required"`
	Symbol   string    `yaml:"symbol" validate:"required,max=32"`
	Decimals int16     `yaml:"decimals" validate:"gte=0,lte=36"`
}

type SeedNFT struct {
	ID      uuid.UUID `yaml:"id" validate:"required"`
	Chain   string    `yaml:"chain" validate:"required"`
	Address string    `yaml:"address" validate:"required"`
	Name    string    `yaml:"name" validate:"required"`
}

var seedValidate = validator.New(validator.WithRequiredStructEnabled())

// LoadSeed reads and validates a seed file.
func LoadSeed(path string) (*Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed: %w", err)
	}
	return ParseSeed(raw)
}

// ParseSeed decodes and validates seed YAML.
func ParseSeed(raw []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse catalog seed: %w", err)
	}
	if err := seedValidate.Struct(&seed); err != nil {
		return nil, fmt.Errorf("invalid catalog seed: %w", err)
	}

	known := make(map[string]struct{}, len(seed.Chains))
	for _, c := range seed.Chains {
		known[c.ChainID] = struct{}{}
	}
	for _, t := range seed.Tokens {
		if _, ok := known[t.Chain]; !ok {
			return nil, fmt.Errorf("invalid catalog seed: token %s references unknown chain %q", t.Symbol, t.Chain)
		}
	}
	for _, n := range seed.NFTs {
		if _, ok := known[n.Chain]; !ok {
			return nil, fmt.Errorf("invalid catalog seed: nft collection %s references unknown chain %q", n.Name, n.Chain)
		}
	}
	return &seed, nil
}

// Apply upserts the seed in a single transaction.
func (s *PGStore) Apply(ctx context.Context, seed *Seed, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		st := NewStore(tx)

		chainIDs := make(map[string]uuid.UUID, len(seed.Chains))
		for _, sc := range seed.Chains {
			c := Chain{ID: sc.ID, ChainID: sc.ChainID, Name: sc.Name}
			if err := st.UpsertChain(ctx, &c); err != nil {
				return err
			}
			chainIDs[c.ChainID] = c.ID
		}

		for _, stok := range seed.Tokens {
			if err := st.UpsertToken(ctx, &Token{
				ID:       stok.ID,
				ChainRef: chainIDs[stok.Chain],
				Address:  stok.Address,
				Symbol:   stok.Symbol,
				Decimals: stok.Decimals,
			}); err != nil {
				return err
			}
		}

		for _, sn := range seed.NFTs {
			if err := st.UpsertNFTCollection(ctx, &NFTCollection{
				ID:       sn.ID,
				ChainRef: chainIDs[sn.Chain],
				Address:  sn.Address,
				Name:     sn.Name,
			}); err != nil {
				return err
			}
		}

		logger.Info("Catalog seeded",
			zap.Int("chains", len(seed.Chains)),
			zap.Int("tokens", len(seed.Tokens)),
			zap.Int("nft_collections", len(seed.NFTs)),
		)
		return nil
	})
}
