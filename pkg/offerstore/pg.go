package offerstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/chainsafe/swap-offers/pkg/offer"
)

// ErrOfferNotFound is returned when no offer has the requested id.
var ErrOfferNotFound = errors.New("offer not found")

// PGStore is the postgres backed offer store.
type PGStore struct {
	db bun.IDB
}

// NewStore creates a new postgres implementation of the offer store
func NewStore(db bun.IDB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) CreateOffer(ctx context.Context, o *offer.Offer) error {
	_, err := s.db.NewInsert().
		Model(toOfferDao(o)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}
	return nil
}

func (s *PGStore) selectOffers(daos any) *bun.SelectQuery {
	return s.db.NewSelect().
		Model(daos).
		Relation("Trader").
		Relation("Fulfiller").
		Relation("ChainA").
		Relation("ChainB")
}

// GetOffer loads an offer with its participants and chains resolved.
func (s *PGStore) GetOffer(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	dao := new(OfferDao)
	err := s.selectOffers(dao).
		Where("o.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrOfferNotFound, id)
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return toOffer(dao)
}

// UpdateOffer applies patch to the offer only if the stored row satisfies
// guard, in a single statement. It returns the number of rows changed, which
// is zero when the guard did not hold.
func (s *PGStore) UpdateOffer(ctx context.Context, id uuid.UUID, guard offer.Guard, patch offer.Patch) (int64, error) {
	q := s.db.NewUpdate().
		Model((*OfferDao)(nil)).
		Set("status = ?", int16(patch.Status)).
		Set("updated_at = ?", time.Now().UTC()).
		Where("o.id = ?", id)

	if patch.FulfillerID != nil {
		q = q.Set("fulfiller_id = ?", *patch.FulfillerID)
	}
	if patch.OnChainID != nil {
		q = q.Set("on_chain_id = ?", *patch.OnChainID)
	}
	q = applyGuard(q, guard)

	res, err := q.Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to update offer: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

// ListOffers returns the offers matching f, newest first.
func (s *PGStore) ListOffers(ctx context.Context, f offer.Filter) ([]*offer.Offer, error) {
	var daos []OfferDao
	q := applyFilter(s.selectOffers(&daos), f).
		Order("o.created_at DESC", "o.id DESC")
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return toOffers(daos)
}

// ListOffersByParticipant returns the offers where userID is the trader,
// the fulfiller, or either when role is empty. Newest first.
func (s *PGStore) ListOffersByParticipant(ctx context.Context, userID uuid.UUID, role offer.Role) ([]*offer.Offer, error) {
	var daos []OfferDao
	q := applyParticipant(s.selectOffers(&daos), userID, role).
		Order("o.created_at DESC", "o.id DESC")
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list offers for participant: %w", err)
	}
	return toOffers(daos)
}

func toOffers(daos []OfferDao) ([]*offer.Offer, error) {
	out := make([]*offer.Offer, 0, len(daos))
	for i := range daos {
		o, err := toOffer(&daos[i])
		if err != nil {
			return nil, fmt.Errorf("failed to decode offer %s: %w", daos[i].ID, err)
		}
		out = append(out, o)
	}
	return out, nil
}
