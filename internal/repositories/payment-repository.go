package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"bordados-backend/internal/entities"
)

type PaymentRepositoryInterface interface {
	CreateInTx(ctx context.Context, tx pgx.Tx, payment *entities.Payment) (uint64, error)
	FindByOrderID(ctx context.Context, orderID uint64) ([]entities.Payment, error)
	SumPaidInTx(ctx context.Context, tx pgx.Tx, orderID uint64) (decimal.Decimal, error)
	SumPaid(ctx context.Context, orderID uint64) (decimal.Decimal, error)
}

type PaymentRepository struct {
	storage *pgxpool.Pool
}

func NewPaymentRepository(storage *pgxpool.Pool) PaymentRepositoryInterface {
	return &PaymentRepository{storage: storage}
}

func (r *PaymentRepository) CreateInTx(ctx context.Context, tx pgx.Tx, payment *entities.Payment) (uint64, error) {
	query := `
		INSERT INTO payments (order_id, amount, method, notes, photo_urls, received_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, paid_at`
	err := tx.QueryRow(ctx, query,
		payment.OrderID, payment.Amount, payment.Method,
		payment.Notes, payment.PhotoURLs, payment.ReceivedBy,
	).Scan(&payment.ID, &payment.PaidAt)
	if err != nil {
		return 0, fmt.Errorf("error insertando pago: %w", err)
	}
	return payment.ID, nil
}

func (r *PaymentRepository) FindByOrderID(ctx context.Context, orderID uint64) ([]entities.Payment, error) {
	query := `
		SELECT id, order_id, amount, method, notes, photo_urls, received_by, paid_at
		FROM payments
		WHERE order_id = $1
		ORDER BY paid_at ASC, id ASC`

	rows, err := r.storage.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("error consultando pagos: %w", err)
	}
	defer rows.Close()

	var payments []entities.Payment
	for rows.Next() {
		var p entities.Payment
		if err := rows.Scan(
			&p.ID, &p.OrderID, &p.Amount, &p.Method,
			&p.Notes, &p.PhotoURLs, &p.ReceivedBy, &p.PaidAt,
		); err != nil {
			return nil, fmt.Errorf("error escaneando pago: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func sumPaid(ctx context.Context, q querier, orderID uint64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := q.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE order_id = $1`, orderID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error sumando pagos: %w", err)
	}
	return sum, nil
}

// SumPaidInTx lee el acumulado dentro de la transacción que va a validar el
// recorte: el saldo restante debe calcularse sobre lo que la transacción ve.
func (r *PaymentRepository) SumPaidInTx(ctx context.Context, tx pgx.Tx, orderID uint64) (decimal.Decimal, error) {
	return sumPaid(ctx, tx, orderID)
}

func (r *PaymentRepository) SumPaid(ctx context.Context, orderID uint64) (decimal.Decimal, error) {
	return sumPaid(ctx, r.storage, orderID)
}
