package memory

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"flowa-be/internal/repository/specification"

	"github.com/google/uuid"
)

// record exposes a row under its column names so specifications can be
// evaluated without a database.
type record map[string]interface{}

type predicate func(rec record) (bool, error)

type orderKey struct {
	column string
	desc   bool
}

// query filters, orders and pages rows the way the SQL backend would.
func query[T any](rows []T, columns func(*T) record, specs []specification.Specification) ([]T, error) {
	var (
		filters []predicate
		orders  []orderKey
		page    *specification.Pagination
	)

	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			filters = append(filters, eq("id", s.ID))
		case specification.ByIDs:
			filters = append(filters, in("id", s.IDs))
		case specification.ByEmail:
			filters = append(filters, eq("email", strings.ToLower(strings.TrimSpace(s.Email))))
		case specification.UserOwnedBy:
			filters = append(filters, eq("user_id", s.UserID))
		case specification.OwnedBy:
			filters = append(filters, eq("owner_id", s.OwnerID))
		case specification.ByBrandID:
			filters = append(filters, eq("brand_id", s.BrandID))
		case specification.ActiveOnly:
			filters = append(filters, eq("is_active", true))
		case specification.ByChatSessionID:
			filters = append(filters, eq("chat_session_id", s.ChatSessionID))
		case specification.ByThemeID:
			filters = append(filters, eq("theme_id", s.ThemeID))
		case specification.ByPlatform:
			filters = append(filters, eq("platform", s.Platform))
		case specification.ByStatus:
			filters = append(filters, eq("status", s.Status))
		case specification.Connected:
			filters = append(filters, eq("is_connected", true))
		case specification.OrderBy:
			orders = append(orders, orderKey{column: s.Field, desc: s.Desc})
		case specification.InLogOrder:
			orders = append(orders, orderKey{column: "position"})
		case specification.Pagination:
			p := s
			page = &p
		default:
			return nil, fmt.Errorf("memory: unsupported specification %T", spec)
		}
	}

	type candidate struct {
		row T
		rec record
	}

	var matched []candidate
	for i := range rows {
		rec := columns(&rows[i])
		ok := true
		for _, f := range filters {
			hit, err := f(rec)
			if err != nil {
				return nil, err
			}
			if !hit {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, candidate{row: rows[i], rec: rec})
		}
	}

	for _, o := range orders {
		for _, c := range matched {
			if _, ok := c.rec[o.column]; !ok {
				return nil, fmt.Errorf("memory: unknown column %q", o.column)
			}
		}
	}
	if len(orders) > 0 {
		sort.SliceStable(matched, func(i, j int) bool {
			for _, o := range orders {
				a, b := matched[i].rec[o.column], matched[j].rec[o.column]
				if o.desc {
					a, b = b, a
				}
				if less(a, b) {
					return true
				}
				if less(b, a) {
					return false
				}
			}
			return false
		})
	}

	if page != nil {
		start := page.Offset
		if start > len(matched) {
			start = len(matched)
		}
		matched = matched[start:]
		if page.Limit > 0 && page.Limit < len(matched) {
			matched = matched[:page.Limit]
		}
	}

	out := make([]T, len(matched))
	for i, c := range matched {
		out[i] = c.row
	}
	return out, nil
}

func first[T any](rows []T, columns func(*T) record, specs []specification.Specification) (*T, error) {
	found, err := query(rows, columns, specs)
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return &found[0], nil
}

func eq(column string, want interface{}) predicate {
	return func(rec record) (bool, error) {
		got, ok := rec[column]
		if !ok {
			return false, fmt.Errorf("memory: unknown column %q", column)
		}
		return same(got, want), nil
	}
}

func in(column string, ids []uuid.UUID) predicate {
	return func(rec record) (bool, error) {
		got, ok := rec[column]
		if !ok {
			return false, fmt.Errorf("memory: unknown column %q", column)
		}
		for _, id := range ids {
			if same(got, id) {
				return true, nil
			}
		}
		return false, nil
	}
}

// same compares loosely so a named string type matches its plain value.
func same(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

func less(a, b interface{}) bool {
	switch x := a.(type) {
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Before(y)
		}
	case int:
		if y, ok := b.(int); ok {
			return x < y
		}
	case int64:
		if y, ok := b.(int64); ok {
			return x < y
		}
	case float64:
		if y, ok := b.(float64); ok {
			return x < y
		}
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}
