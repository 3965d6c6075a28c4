package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bordados-backend/internal/entities"
)

type OrderHistoryRepositoryInterface interface {
	CreateInTx(ctx context.Context, tx pgx.Tx, entry *entities.OrderStatusHistory) (uint64, error)
	FindByOrderID(ctx context.Context, orderID uint64) ([]entities.OrderStatusHistory, error)
	SumDeliveredInTx(ctx context.Context, tx pgx.Tx, orderID uint64) (int, error)
	LatestStatusByOrderID(ctx context.Context, orderID uint64) (string, error)
}

type OrderHistoryRepository struct {
	storage *pgxpool.Pool
}

func NewOrderHistoryRepository(storage *pgxpool.Pool) OrderHistoryRepositoryInterface {
	return &OrderHistoryRepository{storage: storage}
}

func (r *OrderHistoryRepository) CreateInTx(ctx context.Context, tx pgx.Tx, entry *entities.OrderStatusHistory) (uint64, error) {
	query := `
		INSERT INTO order_status_history (order_id, status, observation, quantity_delivered, photo_urls, changed_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, changed_at`
	err := tx.QueryRow(ctx, query,
		entry.OrderID, entry.Status, entry.Observation,
		entry.QuantityDelivered, entry.PhotoURLs, entry.ChangedBy,
	).Scan(&entry.ID, &entry.ChangedAt)
	if err != nil {
		return 0, fmt.Errorf("error insertando historial de estado: %w", err)
	}
	return entry.ID, nil
}

func (r *OrderHistoryRepository) FindByOrderID(ctx context.Context, orderID uint64) ([]entities.OrderStatusHistory, error) {
	query := `
		SELECT id, order_id, status, observation, quantity_delivered, photo_urls, changed_by, changed_at
		FROM order_status_history
		WHERE order_id = $1
		ORDER BY changed_at ASC, id ASC`

	rows, err := r.storage.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("error consultando historial: %w", err)
	}
	defer rows.Close()

	var history []entities.OrderStatusHistory
	for rows.Next() {
		var h entities.OrderStatusHistory
		if err := rows.Scan(
			&h.ID, &h.OrderID, &h.Status, &h.Observation,
			&h.QuantityDelivered, &h.PhotoURLs, &h.ChangedBy, &h.ChangedAt,
		); err != nil {
			return nil, fmt.Errorf("error escaneando historial: %w", err)
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

// SumDeliveredInTx suma las unidades de TODAS las entregas parciales del
// pedido, leyendo dentro de la misma transacción que valida el tope.
func (r *OrderHistoryRepository) SumDeliveredInTx(ctx context.Context, tx pgx.Tx, orderID uint64) (int, error) {
	var sum int
	err := tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(quantity_delivered), 0)
		FROM order_status_history
		WHERE order_id = $1 AND status = 'ENTREGA_PARCIAL'`, orderID).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("error sumando entregas parciales: %w", err)
	}
	return sum, nil
}

// LatestStatusByOrderID devuelve el estado del registro más reciente.
// Sirve para el chequeo de integridad contra orders.status.
func (r *OrderHistoryRepository) LatestStatusByOrderID(ctx context.Context, orderID uint64) (string, error) {
	var status string
	err := r.storage.QueryRow(ctx, `
		SELECT status FROM order_status_history
		WHERE order_id = $1
		ORDER BY changed_at DESC, id DESC
		LIMIT 1`, orderID).Scan(&status)
	if err != nil {
		return "", fmt.Errorf("error leyendo último estado del historial: %w", err)
	}
	return status, nil
}
