package utils

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"bordados-backend/pkg/types"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// ParseFilterFromQuery arma el filtro de listados a partir de la query.
// Ej: /orders?search=juan&filter[status]=LISTO&filter[client_id]=3&sort=-created_at&limit=20
func ParseFilterFromQuery(query url.Values) types.Filter {
	f := types.Filter{
		Limit: DefaultLimit,
		Sort:  map[string]string{"created_at": "desc"},
	}

	if s := query.Get("search"); s != "" {
		f.Search = s
	}
	if s := query.Get("filter[status]"); s != "" {
		f.Status = strings.ToUpper(s)
	}
	if s := query.Get("filter[client_id]"); s != "" {
		if id, err := strconv.ParseUint(s, 10, 64); err == nil {
			f.ClientID = id
		}
	}
	if s := query.Get("filter[urgent]"); s == "true" || s == "1" {
		f.OnlyUrgent = true
	}
	if s := query.Get("dateFrom"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			f.DateFrom = &t
		}
	}
	if s := query.Get("dateTo"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			f.DateTo = &t
		}
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			if l > MaxLimit {
				l = MaxLimit
			}
			f.Limit = l
		}
	}
	if offsetStr := query.Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			f.Offset = o
		}
	}
	if pageStr := query.Get("page"); pageStr != "" && f.Offset == 0 {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			f.Offset = (p - 1) * f.Limit
		}
	}

	if sort := query.Get("sort"); sort != "" {
		f.Sort = map[string]string{}
		if strings.HasPrefix(sort, "-") {
			f.Sort[sort[1:]] = "desc"
		} else {
			f.Sort[sort] = "asc"
		}
	}
	return f
}
