package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"bordados-backend/internal/entities"
	"bordados-backend/pkg/constants"
	apperrors "bordados-backend/pkg/errors"
	"bordados-backend/pkg/types"
)

// OrderListRow es la fila enriquecida de los listados: el pedido más los
// acumulados que salen de un solo query (pagos y unidades entregadas).
// Los derivados (atraso, prioridad) los calcula el servicio de agregados.
type OrderListRow struct {
	entities.Order
	ClientName   string
	TotalPaid    decimal.Decimal
	DeliveredQty int
}

type OrderRepositoryInterface interface {
	CreateOrderInTx(ctx context.Context, tx pgx.Tx, order *entities.Order) (uint64, error)
	FindOrder(ctx context.Context, id uint64) (*entities.Order, error)
	FindOrderForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Order, error)
	UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, status constants.OrderStatus) error
	UpdateOrderFields(ctx context.Context, order *entities.Order) error
	SoftDeleteOrder(ctx context.Context, id uint64) error
	GetOrders(ctx context.Context, filter types.Filter) ([]OrderListRow, uint64, error)
}

type OrderRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewOrderRepository(storage *pgxpool.Pool, logger *zap.Logger) OrderRepositoryInterface {
	return &OrderRepository{storage: storage, logger: logger}
}

const orderColumns = `id, order_number, client_id, description, service_type, quantity,
	total, due_date, urgent, status, created_at, updated_at`

// Columnas ordenables del listado. Todo lo que no esté acá se ignora:
// el valor viene de la query string y jamás se interpola crudo.
var orderSortColumns = map[string]string{
	"created_at":   "ord.created_at",
	"due_date":     "ord.due_date",
	"total":        "ord.total",
	"order_number": "ord.order_number",
	"quantity":     "ord.quantity",
}

// orderByClause arma el ORDER BY del listado a partir del filtro. Los
// urgentes siempre van primero; el criterio secundario sale del filtro y
// por defecto es created_at DESC.
func orderByClause(sort map[string]string) string {
	column, direction := "ord.created_at", "DESC"
	for name, dir := range sort {
		expr, ok := orderSortColumns[name]
		if !ok {
			continue
		}
		column = expr
		if strings.EqualFold(dir, "asc") {
			direction = "ASC"
		}
		break
	}
	return "ORDER BY ord.urgent DESC, " + column + " " + direction
}

func scanOrder(row pgx.Row) (*entities.Order, error) {
	var o entities.Order
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.ClientID, &o.Description, &o.ServiceType,
		&o.Quantity, &o.Total, &o.DueDate, &o.Urgent, &o.Status,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("error escaneando pedido: %w", err)
	}
	return &o, nil
}

func (r *OrderRepository) CreateOrderInTx(ctx context.Context, tx pgx.Tx, order *entities.Order) (uint64, error) {
	query := `
		INSERT INTO orders (client_id, description, service_type, quantity, total, due_date, urgent, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, order_number`
	err := tx.QueryRow(ctx, query,
		order.ClientID, order.Description, order.ServiceType, order.Quantity,
		order.Total, order.DueDate, order.Urgent, order.Status,
	).Scan(&order.ID, &order.OrderNumber)
	if err != nil {
		return 0, fmt.Errorf("error insertando pedido: %w", err)
	}
	return order.ID, nil
}

func (r *OrderRepository) FindOrder(ctx context.Context, id uint64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND deleted_at IS NULL`
	return scanOrder(r.storage.QueryRow(ctx, query, id))
}

// FindOrderForUpdateInTx bloquea la fila del pedido durante la transición:
// la fila de orders es el único estado mutable compartido.
func (r *OrderRepository) FindOrderForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`
	return scanOrder(tx.QueryRow(ctx, query, id))
}

func (r *OrderRepository) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, status constants.OrderStatus) error {
	tag, err := tx.Exec(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`,
		status, id)
	if err != nil {
		return fmt.Errorf("error actualizando estado del pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) UpdateOrderFields(ctx context.Context, order *entities.Order) error {
	tag, err := r.storage.Exec(ctx, `
		UPDATE orders
		SET description = $1, service_type = $2, quantity = $3, total = $4,
		    due_date = $5, urgent = $6, updated_at = NOW()
		WHERE id = $7 AND deleted_at IS NULL`,
		order.Description, order.ServiceType, order.Quantity, order.Total,
		order.DueDate, order.Urgent, order.ID)
	if err != nil {
		return fmt.Errorf("error actualizando pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) SoftDeleteOrder(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE orders SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("error eliminando pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) GetOrders(ctx context.Context, filter types.Filter) ([]OrderListRow, uint64, error) {
	where := `ord.deleted_at IS NULL`
	args := []any{}
	argn := 1

	if filter.Status != "" {
		where += fmt.Sprintf(" AND ord.status = $%d", argn)
		args = append(args, filter.Status)
		argn++
	}
	if filter.ClientID != 0 {
		where += fmt.Sprintf(" AND ord.client_id = $%d", argn)
		args = append(args, filter.ClientID)
		argn++
	}
	if filter.OnlyUrgent {
		where += " AND ord.urgent = TRUE"
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND (ord.description ILIKE $%d OR c.name ILIKE $%d)", argn, argn)
		args = append(args, "%"+filter.Search+"%")
		argn++
	}
	if filter.DateFrom != nil {
		where += fmt.Sprintf(" AND ord.created_at >= $%d", argn)
		args = append(args, *filter.DateFrom)
		argn++
	}
	if filter.DateTo != nil {
		where += fmt.Sprintf(" AND ord.created_at <= $%d", argn)
		args = append(args, *filter.DateTo)
		argn++
	}

	var total uint64
	countQuery := `SELECT COUNT(*) FROM orders ord LEFT JOIN clients c ON ord.client_id = c.id WHERE ` + where
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error contando pedidos: %w", err)
	}

	query := `
		SELECT
			ord.id, ord.order_number, ord.client_id, ord.description, ord.service_type,
			ord.quantity, ord.total, ord.due_date, ord.urgent, ord.status,
			ord.created_at, ord.updated_at,
			c.name AS client_name,
			COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.order_id = ord.id), 0) AS total_paid,
			COALESCE((SELECT SUM(h.quantity_delivered) FROM order_status_history h
			          WHERE h.order_id = ord.id AND h.status = 'ENTREGA_PARCIAL'), 0) AS delivered_qty
		FROM orders ord
		LEFT JOIN clients c ON ord.client_id = c.id
		WHERE ` + where + `
		` + orderByClause(filter.Sort) + fmt.Sprintf(`
		LIMIT $%d OFFSET $%d`, argn, argn+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listando pedidos: %w", err)
	}
	defer rows.Close()

	items := make([]OrderListRow, 0)
	for rows.Next() {
		var it OrderListRow
		if err := rows.Scan(
			&it.ID, &it.OrderNumber, &it.ClientID, &it.Description, &it.ServiceType,
			&it.Quantity, &it.Total, &it.DueDate, &it.Urgent, &it.Status,
			&it.CreatedAt, &it.UpdatedAt,
			&it.ClientName, &it.TotalPaid, &it.DeliveredQty,
		); err != nil {
			return nil, 0, fmt.Errorf("error escaneando fila del listado: %w", err)
		}
		items = append(items, it)
	}
	return items, total, rows.Err()
}
