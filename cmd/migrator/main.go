package main

import (
	"context"
	"flag"
	"log"

	"github.com/UnknownOlympus/athena/internal/config"
	"github.com/UnknownOlympus/athena/internal/repository"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
)

func main() {
	dir := flag.String("dir", "migrations", "directory with goose SQL migrations")
	flag.Parse()

	ctx := context.Background()
	cfg := config.MustLoad()

	dbpool, dbErr := repository.NewDatabase(
		ctx, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Dbname)
	if dbErr != nil {
		log.Fatalf("Failed to connect to DB: %v", dbErr)
	}
	defer dbpool.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal(err)
	}

	dtb := stdlib.OpenDBFromPool(dbpool)
	defer dtb.Close()

	if migrationErr := goose.Up(dtb, *dir); migrationErr != nil {
		log.Fatal(migrationErr)
	}

	log.Println("✅ Migrations applied successfully")
}
