package seeders

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const seedActor = "seeder"

// seedOrders inserta pedidos de demostración. Cada pedido nace con su
// registro RECIBIDO en el historial, en la misma transacción: los datos de
// prueba respetan la misma invariante que los reales.
func seedOrders(ctx context.Context, db *pgxpool.Pool, clientIDs []uint64) error {
	log.Println("  - Cargando tabla 'orders'...")

	for _, o := range ordersData {
		if o.ClientIndex >= len(clientIDs) {
			return fmt.Errorf("índice de cliente fuera de rango: %d", o.ClientIndex)
		}
		clientID := clientIDs[o.ClientIndex]

		var exists bool
		err := db.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM orders
				WHERE client_id = $1 AND description = $2 AND deleted_at IS NULL
			)`, clientID, o.Description).Scan(&exists)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		total, err := decimal.NewFromString(o.Total)
		if err != nil {
			return fmt.Errorf("total inválido %q: %w", o.Total, err)
		}
		dueDate := time.Now().AddDate(0, 0, o.DueDays)

		tx, err := db.Begin(ctx)
		if err != nil {
			return err
		}

		var orderID uint64
		err = tx.QueryRow(ctx, `
			INSERT INTO orders (client_id, description, service_type, quantity, total, due_date, urgent, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, 'RECIBIDO')
			RETURNING id`,
			clientID, o.Description, o.ServiceType, o.Quantity, total, dueDate, o.Urgent,
		).Scan(&orderID)
		if err != nil {
			_ = tx.Rollback(ctx)
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO order_status_history (order_id, status, observation, changed_by)
			VALUES ($1, 'RECIBIDO', 'Pedido recibido', $2)`, orderID, seedActor)
		if err != nil {
			_ = tx.Rollback(ctx)
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}
	}
	return nil
}
