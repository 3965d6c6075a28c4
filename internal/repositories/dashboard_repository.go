package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"bordados-backend/pkg/types"
)

// Todas las cifras del tablero se recalculan sobre las filas actuales en
// cada request. No hay tabla de rollup: corrección antes que velocidad.
type DashboardRepositoryInterface interface {
	GetCountByStatus(ctx context.Context, period sq.Sqlizer) ([]types.DashboardCountByStatus, error)
	GetMonthlySeries(ctx context.Context, months int) ([]types.DashboardMonthlyPoint, error)
	GetServiceTypeStats(ctx context.Context, period sq.Sqlizer) ([]types.DashboardServiceTypeStat, error)
	GetDelayStats(ctx context.Context, period sq.Sqlizer) (*types.DashboardDelayStats, error)
	GetTopClients(ctx context.Context, period sq.Sqlizer, limit uint64) ([]types.DashboardTopClient, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

func applyPeriod(b sq.SelectBuilder, period sq.Sqlizer) sq.SelectBuilder {
	if period != nil {
		return b.Where(period)
	}
	return b
}

// 1. Conteo por estado (solo pedidos vivos)
func (r *DashboardRepository) GetCountByStatus(ctx context.Context, period sq.Sqlizer) ([]types.DashboardCountByStatus, error) {
	b := sq.Select("o.status", "COUNT(*)").
		From("orders o").
		Where(sq.Eq{"o.deleted_at": nil}).
		GroupBy("o.status")
	b = applyPeriod(b, period)

	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error en conteo por estado: %w", err)
	}
	defer rows.Close()

	out := make([]types.DashboardCountByStatus, 0)
	for rows.Next() {
		var s types.DashboardCountByStatus
		if err := rows.Scan(&s.Status, &s.Count); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// 2. Serie mensual: pedidos creados y facturación por mes calendario.
// La facturación excluye cancelados; un pedido cancelado no es ingreso.
func (r *DashboardRepository) GetMonthlySeries(ctx context.Context, months int) ([]types.DashboardMonthlyPoint, error) {
	query := `
		SELECT
			TO_CHAR(DATE_TRUNC('month', o.created_at), 'YYYY-MM') AS month,
			COUNT(*) AS orders,
			COALESCE(SUM(o.total) FILTER (WHERE o.status != 'CANCELADO'), 0) AS revenue
		FROM orders o
		WHERE o.deleted_at IS NULL
		  AND o.created_at >= DATE_TRUNC('month', NOW()) - ($1 || ' months')::interval
		GROUP BY 1
		ORDER BY 1 ASC`

	rows, err := r.storage.Query(ctx, query, fmt.Sprintf("%d", months))
	if err != nil {
		return nil, fmt.Errorf("error en serie mensual: %w", err)
	}
	defer rows.Close()

	out := make([]types.DashboardMonthlyPoint, 0)
	for rows.Next() {
		var p types.DashboardMonthlyPoint
		if err := rows.Scan(&p.Month, &p.Orders, &p.Revenue); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// 3. Volumen y facturación por tipo de servicio
func (r *DashboardRepository) GetServiceTypeStats(ctx context.Context, period sq.Sqlizer) ([]types.DashboardServiceTypeStat, error) {
	b := sq.Select(
		"o.service_type",
		"COUNT(*)",
		"COALESCE(SUM(o.total) FILTER (WHERE o.status != 'CANCELADO'), 0)",
	).
		From("orders o").
		Where(sq.Eq{"o.deleted_at": nil}).
		GroupBy("o.service_type").
		OrderBy("COUNT(*) DESC")
	b = applyPeriod(b, period)

	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error en stats por servicio: %w", err)
	}
	defer rows.Close()

	out := make([]types.DashboardServiceTypeStat, 0)
	for rows.Next() {
		var s types.DashboardServiceTypeStat
		if err := rows.Scan(&s.ServiceType, &s.Orders, &s.Revenue); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// 4. Atrasados vs en término: la misma regla que isDelayed del agregado,
// expresada en SQL. Atrasado = vencido y no ENTREGADO/CANCELADO.
func (r *DashboardRepository) GetDelayStats(ctx context.Context, period sq.Sqlizer) (*types.DashboardDelayStats, error) {
	b := sq.Select(
		"COUNT(*) FILTER (WHERE o.due_date < NOW() AND o.status NOT IN ('ENTREGADO', 'CANCELADO'))",
		"COUNT(*) FILTER (WHERE o.due_date >= NOW() AND o.status NOT IN ('ENTREGADO', 'CANCELADO'))",
	).
		From("orders o").
		Where(sq.Eq{"o.deleted_at": nil})
	b = applyPeriod(b, period)

	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	stats := &types.DashboardDelayStats{}
	err = r.storage.QueryRow(ctx, query, args...).Scan(&stats.Delayed, &stats.OnTime)
	if err != nil {
		return nil, fmt.Errorf("error en stats de atraso: %w", err)
	}
	return stats, nil
}

// 5. Mejores clientes por facturación
func (r *DashboardRepository) GetTopClients(ctx context.Context, period sq.Sqlizer, limit uint64) ([]types.DashboardTopClient, error) {
	b := sq.Select(
		"c.id",
		"c.name",
		"COUNT(o.id)",
		"COALESCE(SUM(o.total), 0)",
	).
		From("orders o").
		Join("clients c ON o.client_id = c.id").
		Where(sq.Eq{"o.deleted_at": nil}).
		Where(sq.NotEq{"o.status": "CANCELADO"}).
		GroupBy("c.id", "c.name").
		OrderBy("COALESCE(SUM(o.total), 0) DESC").
		Limit(limit)
	b = applyPeriod(b, period)

	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error en top de clientes: %w", err)
	}
	defer rows.Close()

	out := make([]types.DashboardTopClient, 0)
	for rows.Next() {
		var t types.DashboardTopClient
		if err := rows.Scan(&t.ClientID, &t.Name, &t.Orders, &t.Revenue); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
