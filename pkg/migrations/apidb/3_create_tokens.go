package apidb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/chainsafe/swap-offers/pkg/catalog"
	mghelper "github.com/chainsafe/swap-offers/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating tokens table...")
		if err := mghelper.CreateSchema(ctx, db, &catalog.TokenDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &catalog.TokenDao{}, "chain_ref")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping tokens table...")
		return mghelper.DropTables(ctx, db, &catalog.TokenDao{})
	})
}
