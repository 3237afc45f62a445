package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/swap-offers/pkg/migrations/apidb"
	"github.com/chainsafe/swap-offers/pkg/pgutil"
)

func TestAPIDBMigrations_Apply(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, apidb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected migrations to run, but none were applied")
	}

	for _, table := range []string{
		"users",
		"chains",
		"tokens",
		"nft_collections",
		"offers",
		"bun_migrations",
	} {
		pgutil.AssertTableExists(t, db, table)
	}

	for _, index := range []string{
		"idx_tokens_chain_ref",
		"idx_nft_collections_chain_ref",
		"idx_offers_status",
		"idx_offers_created_at",
		"idx_offers_trader_id",
		"idx_offers_fulfiller_id",
		"idx_offers_chain_a_id",
		"idx_offers_chain_b_id",
		"idx_offers_nft_in",
		"idx_offers_nft_out",
	} {
		pgutil.AssertIndexExists(t, db, index)
	}
}

func TestMigrations_Idempotency(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, apidb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("First Migrate() failed: %v", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Second Migrate() failed: %v", err)
	}
	if !group.IsZero() {
		t.Error("Expected no new migrations on second run")
	}

	pgutil.AssertTableExists(t, db, "offers")
}

func TestMigrations_Rollback(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, apidb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	// everything ran as one group so a single rollback drops all tables
	group, err := migrator.Rollback(ctx)
	if err != nil {
		t.Fatalf("Rollback() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected rollback to process a migration")
	}

	for _, table := range []string{"offers", "nft_collections", "tokens", "chains", "users"} {
		pgutil.AssertTableNotExists(t, db, table)
	}
	pgutil.AssertTableExists(t, db, "bun_migrations")
}
