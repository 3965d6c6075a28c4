package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDemoData carga clientes y pedidos de demostración.
func SeedDemoData(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Cargando datos de demostración...")

	clientIDs, err := seedClients(ctx, db)
	if err != nil {
		log.Fatalf("❌ Error cargando clientes: %v", err)
	}
	if err := seedOrders(ctx, db, clientIDs); err != nil {
		log.Fatalf("❌ Error cargando pedidos: %v", err)
	}

	log.Println("✅ Datos de demostración cargados.")
}
