package store

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-diner/internal/query"
)

// columns maps JSON field names accepted in a [query.Spec] onto table
// columns. Fields outside the map cannot be filtered or sorted on.
type columns map[string]string

var (
	foodColumns = columns{
		"_id":        "id",
		"foodId":     "food_id",
		"name":       "name",
		"category":   "category",
		"price":      "price",
		"quantity":   "quantity",
		"orderCount": "order_count",
		"origin":     "origin",
		"madeBy":     "made_by",
	}

	orderColumns = columns{
		"_id":        "id",
		"email":      "email",
		"foodId":     "food_id",
		"foodName":   "food_name",
		"price":      "price",
		"quantity":   "quantity",
		"orderCount": "order_count",
		"orderedAt":  "ordered_at",
	}

	addedFoodColumns = columns{
		"_id":       "id",
		"email":     "email",
		"name":      "name",
		"category":  "category",
		"price":     "price",
		"quantity":  "quantity",
		"origin":    "origin",
		"createdAt": "created_at",
	}
)

const (
	foodSelectColumns      = "id, food_id, name, category, price, quantity, order_count, image, description, origin, made_by"
	orderSelectColumns     = "id, email, food_id, food_name, price, quantity, order_count, ordered_at"
	userSelectColumns      = "id, email, name, photo_url, created_at"
	addedFoodSelectColumns = "id, email, name, category, price, quantity, image, description, origin, created_at"

	approximateFoodCount = `SELECT reltuples::bigint FROM pg_class WHERE relname = 'foods'`
	exactFoodCount       = `SELECT count(*) FROM foods`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// applySpec translates spec into WHERE, ORDER BY, LIMIT and OFFSET clauses.
// Unknown fields are rejected with [query.ErrInvalidParameter].
func applySpec(b sq.SelectBuilder, spec query.Spec, cols columns) (sq.SelectBuilder, error) {
	// sorted for a stable statement text
	for _, field := range slices.Sorted(maps.Keys(spec.Filter)) {
		column, ok := cols[field]
		if !ok {
			return b, fmt.Errorf("%w: unknown filter field %q", query.ErrInvalidParameter, field)
		}
		b = b.Where(criterionSQL(column, spec.Filter[field]))
	}

	if spec.Sort != nil {
		column, ok := cols[spec.Sort.Field]
		if !ok {
			return b, fmt.Errorf("%w: unknown sort field %q", query.ErrInvalidParameter, spec.Sort.Field)
		}
		direction := "DESC"
		if spec.Sort.Direction == query.Ascending {
			direction = "ASC"
		}
		b = b.OrderBy(column + " " + direction)
	}

	if spec.Paginated() {
		b = b.Limit(uint64(spec.Limit())).Offset(uint64(spec.Offset()))
	}

	return b, nil
}

func criterionSQL(column string, c query.Criterion) sq.Sqlizer {
	switch {
	case c.Op == query.OpContains && c.CaseInsensitive:
		return sq.Expr("LOWER("+column+") LIKE ? ESCAPE '\\'", "%"+likeEscaper.Replace(strings.ToLower(c.Value))+"%")
	case c.Op == query.OpContains:
		return sq.Expr(column+" LIKE ? ESCAPE '\\'", "%"+likeEscaper.Replace(c.Value)+"%")
	case c.CaseInsensitive:
		return sq.Expr("LOWER("+column+") = ?", strings.ToLower(c.Value))
	default:
		return sq.Eq{column: c.Value}
	}
}
