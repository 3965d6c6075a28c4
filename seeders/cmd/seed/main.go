package main

import (
	"flag"
	"log"

	"bordados-backend/pkg/config"
	"bordados-backend/pkg/database/postgresql"
	"bordados-backend/seeders"
)

func main() {
	runDemo := flag.Bool("demo", false, "Cargar clientes y pedidos de demostración")
	flag.Parse()

	if !*runDemo {
		log.Println("❌ No se eligió ningún seeder.")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Ejemplo: go run ./seeders/cmd/seed -demo")
		return
	}

	cfg := config.New()
	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	seeders.SeedDemoData(db)
}
