package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/swap-offers/pkg/config"
	"github.com/chainsafe/swap-offers/pkg/migrations/apidb"
	"github.com/chainsafe/swap-offers/pkg/pgutil"
	mghelper "github.com/chainsafe/swap-offers/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	// a missing .env is fine; variables may come from the environment
	_ = godotenv.Load()

	cfg, err := config.LoadAPIServer(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	ctx := context.Background()

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for swap offers database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, apidb.Migrations)

	if err = mghelper.RunMigrations(ctx, migrator, flag.Args()...); err != nil {
		mghelper.Exitf(err.Error())
	}
}
