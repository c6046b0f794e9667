// Offline maintenance entry: creates the schema and seeds reference data and
// price history. Safe to re-run; prices upsert in place.
package main

import (
	"log"

	"github.com/RahulHansraj/FarmToMarket/config"
	"github.com/RahulHansraj/FarmToMarket/database"
	"github.com/RahulHansraj/FarmToMarket/pkg/seed"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	table, err := seed.LoadPriceTable(cfg.PriceTablePath)
	if err != nil {
		log.Fatalf("price table: %v", err)
	}

	if err := seed.New(db, table).Run(); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("[seed] done")
}
