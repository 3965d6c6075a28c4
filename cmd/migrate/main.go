package main

import (
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"bordados-backend/migrations"
	"bordados-backend/pkg/config"
)

// Runner de migraciones: `go run ./cmd/migrate -cmd up`.
// Las migraciones van embebidas en el binario.
func main() {
	cmd := flag.String("cmd", "up", "comando goose: up, down, status, version")
	flag.Parse()

	cfg := config.New()

	db, err := goose.OpenDBWithDriver("pgx", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("no se pudo abrir la conexión: %v", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("dialecto inválido: %v", err)
	}

	if err := goose.Run(*cmd, db, "."); err != nil {
		log.Fatalf("migración fallida (%s): %v", *cmd, err)
	}
}
