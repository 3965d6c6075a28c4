package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bordados-backend/internal/entities"
	apperrors "bordados-backend/pkg/errors"
	"bordados-backend/pkg/types"
)

type ClientRepositoryInterface interface {
	FindClient(ctx context.Context, id uint64) (*entities.Client, error)
	GetClients(ctx context.Context, filter types.Filter) ([]entities.Client, uint64, error)
}

type ClientRepository struct {
	storage *pgxpool.Pool
}

func NewClientRepository(storage *pgxpool.Pool) ClientRepositoryInterface {
	return &ClientRepository{storage: storage}
}

func (r *ClientRepository) FindClient(ctx context.Context, id uint64) (*entities.Client, error) {
	var c entities.Client
	err := r.storage.QueryRow(ctx, `
		SELECT id, name, phone, email, notes, created_at
		FROM clients WHERE id = $1 AND deleted_at IS NULL`, id,
	).Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Notes, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("error buscando cliente: %w", err)
	}
	return &c, nil
}

func (r *ClientRepository) GetClients(ctx context.Context, filter types.Filter) ([]entities.Client, uint64, error) {
	where := `deleted_at IS NULL`
	args := []any{}
	argn := 1
	if filter.Search != "" {
		where += fmt.Sprintf(" AND name ILIKE $%d", argn)
		args = append(args, "%"+filter.Search+"%")
		argn++
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM clients WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error contando clientes: %w", err)
	}

	query := `
		SELECT id, name, phone, email, notes, created_at
		FROM clients WHERE ` + where + fmt.Sprintf(`
		ORDER BY name ASC LIMIT $%d OFFSET $%d`, argn, argn+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listando clientes: %w", err)
	}
	defer rows.Close()

	clients := make([]entities.Client, 0)
	for rows.Next() {
		var c entities.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Notes, &c.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("error escaneando cliente: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, total, rows.Err()
}
