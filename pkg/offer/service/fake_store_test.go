package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/chainsafe/swap-offers/pkg/offer"
	"github.com/chainsafe/swap-offers/pkg/offerstore"
	"github.com/chainsafe/swap-offers/pkg/userstore"
)

// memStore is an in-memory Store whose UpdateOffer is an atomic
// compare-and-swap under a mutex, mirroring the single-statement update of
// the postgres store.
type memStore struct {
	mu     sync.Mutex
	offers map[uuid.UUID]offer.Offer
}

func newMemStore() *memStore {
	return &memStore{offers: make(map[uuid.UUID]offer.Offer)}
}

func (m *memStore) CreateOffer(_ context.Context, o *offer.Offer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.offers[o.ID] = copyOffer(*o)
	return nil
}

func (m *memStore) GetOffer(_ context.Context, id uuid.UUID) (*offer.Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.offers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", offerstore.ErrOfferNotFound, id)
	}
	c := copyOffer(o)
	return &c, nil
}

func (m *memStore) UpdateOffer(_ context.Context, id uuid.UUID, g offer.Guard, p offer.Patch) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.offers[id]
	if !ok || o.Status > g.MaxStatus {
		return 0, nil
	}
	if g.TraderID != nil && o.TraderID != *g.TraderID {
		return 0, nil
	}
	if g.FulfillerID != nil && (o.FulfillerID == nil || *o.FulfillerID != *g.FulfillerID) {
		return 0, nil
	}
	if g.NoFulfiller && o.FulfillerID != nil {
		return 0, nil
	}
	if g.OnChainID != nil && o.OnChainID != "" && o.OnChainID != *g.OnChainID {
		return 0, nil
	}

	o.Status = p.Status
	if p.FulfillerID != nil {
		f := *p.FulfillerID
		o.FulfillerID = &f
	}
	if p.OnChainID != nil {
		o.OnChainID = *p.OnChainID
	}
	m.offers[id] = o
	return 1, nil
}

func (m *memStore) ListOffers(_ context.Context, f offer.Filter) ([]*offer.Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*offer.Offer
	for _, o := range m.offers {
		if f.Status != nil && o.Status != *f.Status {
			continue
		}
		c := copyOffer(o)
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) ListOffersByParticipant(_ context.Context, userID uuid.UUID, role offer.Role) ([]*offer.Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*offer.Offer
	for _, o := range m.offers {
		isTrader := o.TraderID == userID
		isFulfiller := o.FulfillerID != nil && *o.FulfillerID == userID
		if (role == offer.RoleTrader && isTrader) || (role == offer.RoleFulfiller && isFulfiller) || (role == "" && (isTrader || isFulfiller)) {
			c := copyOffer(o)
			out = append(out, &c)
		}
	}
	return out, nil
}

func copyOffer(o offer.Offer) offer.Offer {
	if o.FulfillerID != nil {
		f := *o.FulfillerID
		o.FulfillerID = &f
	}
	o.TokenIn = append([]offer.TokenLeg{}, o.TokenIn...)
	o.TokenOut = append([]offer.TokenLeg{}, o.TokenOut...)
	o.NFTIn = append([]offer.NFTLeg{}, o.NFTIn...)
	o.NFTOut = append([]offer.NFTLeg{}, o.NFTOut...)
	return o
}

// walletBook resolves wallets registered in a fixed map.
type walletBook map[string]uuid.UUID

func (b walletBook) ResolveWallet(_ context.Context, wallet string) (uuid.UUID, error) {
	id, ok := b[wallet]
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: %s", userstore.ErrUserNotFound, wallet)
	}
	return id, nil
}
