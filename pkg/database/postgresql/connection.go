package postgresql

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectDB(dsn string) *pgxpool.Pool {
	dbpool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("Error creando el pool de conexiones: %v", err)
	}

	if err := dbpool.Ping(context.Background()); err != nil {
		log.Fatalf("No se pudo hacer ping a la BD: %v", err)
	}

	log.Println("✅ Conectado a PostgreSQL")
	return dbpool
}
