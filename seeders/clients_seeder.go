package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedClients(ctx context.Context, db *pgxpool.Pool) ([]uint64, error) {
	log.Println("  - Cargando tabla 'clients'...")

	ids := make([]uint64, 0, len(clientsData))
	for _, c := range clientsData {
		var id uint64
		var phone, email *string
		if c.Phone != "" {
			phone = &c.Phone
		}
		if c.Email != "" {
			email = &c.Email
		}

		// Si el cliente ya existe se reusa su fila: el seeder es idempotente.
		err := db.QueryRow(ctx, `
			SELECT id FROM clients WHERE name = $1 AND deleted_at IS NULL`, c.Name).Scan(&id)
		if err == nil {
			ids = append(ids, id)
			continue
		}

		err = db.QueryRow(ctx, `
			INSERT INTO clients (name, phone, email) VALUES ($1, $2, $3) RETURNING id`,
			c.Name, phone, email).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
