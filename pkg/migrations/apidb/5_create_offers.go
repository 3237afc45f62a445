package apidb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/chainsafe/swap-offers/pkg/offerstore"
	mghelper "github.com/chainsafe/swap-offers/pkg/pgutil/migrations"
)

var offerIndexColumns = []string{"status", "created_at", "trader_id", "fulfiller_id", "chain_a_id", "chain_b_id"}

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating offers table...")
		if err := mghelper.CreateSchema(ctx, db, &offerstore.OfferDao{}); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &offerstore.OfferDao{}, offerIndexColumns...); err != nil {
			return err
		}
		// containment lookups on the collection filter
		return mghelper.CreateModelGINIndexes(ctx, db, &offerstore.OfferDao{}, "nft_in", "nft_out")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping offers table...")
		return mghelper.DropTables(ctx, db, &offerstore.OfferDao{})
	})
}
