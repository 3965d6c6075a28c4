package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderByClause(t *testing.T) {
	// Sin filtro: urgentes primero, luego los más recientes.
	assert.Equal(t, "ORDER BY ord.urgent DESC, ord.created_at DESC", orderByClause(nil))

	assert.Equal(t, "ORDER BY ord.urgent DESC, ord.due_date ASC",
		orderByClause(map[string]string{"due_date": "asc"}))
	assert.Equal(t, "ORDER BY ord.urgent DESC, ord.total DESC",
		orderByClause(map[string]string{"total": "desc"}))

	// Una columna fuera de la lista blanca se ignora: el valor viene de la
	// query string.
	assert.Equal(t, "ORDER BY ord.urgent DESC, ord.created_at DESC",
		orderByClause(map[string]string{"1; DROP TABLE orders": "asc"}))
}
