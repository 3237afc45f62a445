package offerstore

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chainsafe/swap-offers/pkg/catalog"
	"github.com/chainsafe/swap-offers/pkg/offer"
	"github.com/chainsafe/swap-offers/pkg/pgutil"
	mghelper "github.com/chainsafe/swap-offers/pkg/pgutil/migrations"
	"github.com/chainsafe/swap-offers/pkg/user"
	"github.com/chainsafe/swap-offers/pkg/userstore"
)

type fixture struct {
	ctx     context.Context
	store   *PGStore
	users   []*user.User
	eth     catalog.Chain
	polygon catalog.Chain
}

func setupFixture(t *testing.T, nUsers int) *fixture {
	t.Helper()

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(ctx, db,
		&userstore.UserDao{},
		&catalog.ChainDao{},
		&OfferDao{},
	); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	f := &fixture{ctx: ctx, store: NewStore(db)}

	us := userstore.NewStore(db)
	for i := 0; i < nUsers; i++ {
		u := user.New(uuid.NewString())
		if err := us.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
		f.users = append(f.users, u)
	}

	cs := catalog.NewStore(db)
	f.eth = catalog.Chain{ChainID: "1", Name: "Ethereum"}
	f.polygon = catalog.Chain{ChainID: "137", Name: "Polygon"}
	for _, c := range []*catalog.Chain{&f.eth, &f.polygon} {
		if err := cs.UpsertChain(ctx, c); err != nil {
			t.Fatalf("UpsertChain() failed: %v", err)
		}
	}
	return f
}

func (f *fixture) newOffer(t *testing.T, trader *user.User, chainA, chainB uuid.UUID) *offer.Offer {
	t.Helper()
	o := offer.New(trader.ID, chainA, chainB)
	if err := f.store.CreateOffer(f.ctx, o); err != nil {
		t.Fatalf("CreateOffer() failed: %v", err)
	}
	return o
}

func TestOfferPGStore_CreateAndGet(t *testing.T) {
	f := setupFixture(t, 1)

	o := offer.New(f.users[0].ID, f.eth.ID, f.polygon.ID)
	o.TokenIn = []offer.TokenLeg{{TokenID: uuid.New(), Amount: decimal.RequireFromString("1.000000000000000001")}}
	o.NFTOut = []offer.NFTLeg{{NFTID: "punk-7", CollectionID: uuid.New()}}
	if err := f.store.CreateOffer(f.ctx, o); err != nil {
		t.Fatalf("CreateOffer() failed: %v", err)
	}

	got, err := f.store.GetOffer(f.ctx, o.ID)
	if err != nil {
		t.Fatalf("GetOffer() failed: %v", err)
	}
	if got.Status != offer.StatusCreated {
		t.Fatalf("expected CREATED, got %s", got.Status)
	}
	if got.Trader == nil || got.Trader.WalletAddress != f.users[0].WalletAddress {
		t.Fatalf("expected resolved trader, got %+v", got.Trader)
	}
	if got.Fulfiller != nil || got.HasFulfiller() {
		t.Fatalf("expected no fulfiller, got %+v", got.Fulfiller)
	}
	if got.ChainA == nil || got.ChainA.ChainID != "1" || got.ChainB == nil || got.ChainB.ChainID != "137" {
		t.Fatalf("expected resolved chains, got %+v / %+v", got.ChainA, got.ChainB)
	}
	if len(got.TokenIn) != 1 || !got.TokenIn[0].Amount.Equal(o.TokenIn[0].Amount) {
		t.Fatalf("expected token amount to round trip exactly, got %+v", got.TokenIn)
	}
	if got.TokenOut == nil || got.NFTIn == nil {
		t.Fatalf("empty legs must load as empty slices")
	}

	_, err = f.store.GetOffer(f.ctx, uuid.New())
	if !errors.Is(err, ErrOfferNotFound) {
		t.Fatalf("expected ErrOfferNotFound, got %v", err)
	}
}

func TestOfferPGStore_UpdateOfferGuards(t *testing.T) {
	f := setupFixture(t, 2)
	trader, other := f.users[0], f.users[1]
	o := f.newOffer(t, trader, f.eth.ID, f.polygon.ID)

	// Wrong trader: guard fails.
	n, err := f.store.UpdateOffer(f.ctx, o.ID,
		offer.Guard{MaxStatus: offer.StatusAcceptedByA, TraderID: &other.ID},
		offer.Patch{Status: offer.StatusAcceptedByA})
	if err != nil {
		t.Fatalf("UpdateOffer() failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected guard to reject write, %d rows changed", n)
	}

	onChainID := "0xabc"
	n, err = f.store.UpdateOffer(f.ctx, o.ID,
		offer.Guard{MaxStatus: offer.StatusAcceptedByA, TraderID: &trader.ID},
		offer.Patch{Status: offer.StatusAcceptedByA, OnChainID: &onChainID})
	if err != nil {
		t.Fatalf("UpdateOffer() failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row changed, got %d", n)
	}

	got, err := f.store.GetOffer(f.ctx, o.ID)
	if err != nil {
		t.Fatalf("GetOffer() failed: %v", err)
	}
	if got.Status != offer.StatusAcceptedByA || got.OnChainID != onChainID {
		t.Fatalf("unexpected offer after accept: %s %q", got.Status, got.OnChainID)
	}
	if got.UpdatedAt.Before(o.UpdatedAt.Truncate(time.Millisecond)) {
		t.Fatalf("expected updated_at to move forward")
	}

	// A recorded on-chain id is never replaced.
	otherChainID := "0xdef"
	n, err = f.store.UpdateOffer(f.ctx, o.ID,
		offer.Guard{MaxStatus: offer.StatusAcceptedByA, TraderID: &trader.ID, OnChainID: &otherChainID},
		offer.Patch{Status: offer.StatusAcceptedByA, OnChainID: &otherChainID})
	if err != nil {
		t.Fatalf("UpdateOffer() failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected recorded on-chain id to be kept, %d rows changed", n)
	}

	// Status may never go backwards even with a matching identity.
	n, err = f.store.UpdateOffer(f.ctx, o.ID,
		offer.Guard{MaxStatus: offer.StatusCreated, TraderID: &trader.ID},
		offer.Patch{Status: offer.StatusCreated})
	if err != nil {
		t.Fatalf("UpdateOffer() failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected monotonic guard to reject write")
	}
}

func TestOfferPGStore_ConcurrentClaimHasSingleWinner(t *testing.T) {
	const claimers = 8
	f := setupFixture(t, claimers+1)
	o := f.newOffer(t, f.users[0], f.eth.ID, f.polygon.ID)

	var (
		wins   atomic.Int32
		winner atomic.Value
		wg     sync.WaitGroup
		start  = make(chan struct{})
	)
	for _, u := range f.users[1:] {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			<-start
			n, err := f.store.UpdateOffer(f.ctx, o.ID,
				offer.Guard{MaxStatus: offer.StatusClaimedByB, NoFulfiller: true},
				offer.Patch{Status: offer.StatusClaimedByB, FulfillerID: &id})
			if err != nil {
				t.Errorf("UpdateOffer() failed: %v", err)
				return
			}
			if n == 1 {
				wins.Add(1)
				winner.Store(id)
			}
		}(u.ID)
	}
	close(start)
	wg.Wait()

	if got := wins.Load(); got != 1 {
		t.Fatalf("expected exactly one winning claim, got %d", got)
	}

	got, err := f.store.GetOffer(f.ctx, o.ID)
	if err != nil {
		t.Fatalf("GetOffer() failed: %v", err)
	}
	if got.FulfillerID == nil || *got.FulfillerID != winner.Load().(uuid.UUID) {
		t.Fatalf("stored fulfiller does not match the winner")
	}
	if got.Fulfiller == nil {
		t.Fatalf("expected resolved fulfiller")
	}
}

func TestOfferPGStore_ListOffersMatching(t *testing.T) {
	f := setupFixture(t, 2)
	trader, fulfiller := f.users[0], f.users[1]
	collection := uuid.New()

	ethOnly := offer.New(trader.ID, f.eth.ID, f.eth.ID)
	ethOnly.NFTIn = []offer.NFTLeg{{NFTID: "Azuki#100", CollectionID: collection}}
	ethOnly.CreatedAt = time.Now().UTC().Add(-time.Hour)
	if err := f.store.CreateOffer(f.ctx, ethOnly); err != nil {
		t.Fatalf("CreateOffer() failed: %v", err)
	}

	cross := offer.New(trader.ID, f.eth.ID, f.polygon.ID)
	cross.FulfillerID = &fulfiller.ID
	cross.NFTOut = []offer.NFTLeg{{NFTID: "100%_rare", CollectionID: uuid.New()}}
	if err := f.store.CreateOffer(f.ctx, cross); err != nil {
		t.Fatalf("CreateOffer() failed: %v", err)
	}

	claimed := offer.StatusClaimedByB
	created := offer.StatusCreated

	tests := []struct {
		name   string
		filter offer.Filter
		want   []uuid.UUID
	}{
		{"no filter newest first", offer.Filter{}, []uuid.UUID{cross.ID, ethOnly.ID}},
		{"chain on either leg", offer.Filter{ChainID: "137"}, []uuid.UUID{cross.ID}},
		{"chain on both", offer.Filter{ChainID: "1"}, []uuid.UUID{cross.ID, ethOnly.ID}},
		{"unknown chain", offer.Filter{ChainID: "10"}, nil},
		{"nft substring", offer.Filter{NFTID: "100"}, []uuid.UUID{cross.ID, ethOnly.ID}},
		{"nft literal percent", offer.Filter{NFTID: "0%_"}, []uuid.UUID{cross.ID}},
		{"nft collection", offer.Filter{NFTCollectionID: collection.String()}, []uuid.UUID{ethOnly.ID}},
		{"status", offer.Filter{Status: &created}, []uuid.UUID{cross.ID, ethOnly.ID}},
		{"status none", offer.Filter{Status: &claimed}, nil},
		{"combined", offer.Filter{ChainID: "1", NFTID: "azuki"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.store.ListOffers(f.ctx, tt.filter)
			if err != nil {
				t.Fatalf("ListOffers() failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d offers, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i].ID != tt.want[i] {
					t.Fatalf("offer %d: expected %s, got %s", i, tt.want[i], got[i].ID)
				}
			}
		})
	}

	byFulfiller, err := f.store.ListOffersByParticipant(f.ctx, fulfiller.ID, offer.RoleFulfiller)
	if err != nil {
		t.Fatalf("ListOffersByParticipant() failed: %v", err)
	}
	if len(byFulfiller) != 1 || byFulfiller[0].ID != cross.ID {
		t.Fatalf("unexpected fulfiller history: %+v", byFulfiller)
	}

	byTrader, err := f.store.ListOffersByParticipant(f.ctx, trader.ID, "")
	if err != nil {
		t.Fatalf("ListOffersByParticipant() failed: %v", err)
	}
	if len(byTrader) != 2 {
		t.Fatalf("expected 2 offers for trader, got %d", len(byTrader))
	}
}
