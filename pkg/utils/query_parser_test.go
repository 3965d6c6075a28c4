package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQuery_Defaults(t *testing.T) {
	f := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, DefaultLimit, f.Limit)
	assert.Equal(t, 0, f.Offset)
	assert.Equal(t, map[string]string{"created_at": "desc"}, f.Sort)
}

func TestParseFilterFromQuery_Sort(t *testing.T) {
	f := ParseFilterFromQuery(url.Values{"sort": {"-total"}})
	assert.Equal(t, map[string]string{"total": "desc"}, f.Sort)

	f = ParseFilterFromQuery(url.Values{"sort": {"due_date"}})
	assert.Equal(t, map[string]string{"due_date": "asc"}, f.Sort)
}

func TestParseFilterFromQuery_Paginacion(t *testing.T) {
	f := ParseFilterFromQuery(url.Values{"limit": {"20"}, "page": {"3"}})
	assert.Equal(t, 20, f.Limit)
	assert.Equal(t, 40, f.Offset)

	// offset explícito gana sobre page.
	f = ParseFilterFromQuery(url.Values{"limit": {"20"}, "offset": {"15"}, "page": {"3"}})
	assert.Equal(t, 15, f.Offset)

	// limit fuera de rango se recorta al máximo.
	f = ParseFilterFromQuery(url.Values{"limit": {"9999"}})
	assert.Equal(t, MaxLimit, f.Limit)
}

func TestParseFilterFromQuery_Filtros(t *testing.T) {
	f := ParseFilterFromQuery(url.Values{
		"search":            {"juan"},
		"filter[status]":    {"listo"},
		"filter[client_id]": {"3"},
		"filter[urgent]":    {"true"},
	})

	assert.Equal(t, "juan", f.Search)
	assert.Equal(t, "LISTO", f.Status)
	assert.Equal(t, uint64(3), f.ClientID)
	assert.True(t, f.OnlyUrgent)
}
