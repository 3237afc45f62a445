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
		log.Println("creating chains table...")
		return mghelper.CreateSchema(ctx, db, &catalog.ChainDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping chains table...")
		return mghelper.DropTables(ctx, db, &catalog.ChainDao{})
	})
}
