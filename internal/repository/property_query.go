package repository

import (
	"fmt"
	"strings"

	"github.com/Priya1724/RealEstateFinal/internal/model"
)

// SearchCriteria holds the optional filters accepted by the public search
// endpoint. Zero values mean "no filter".
type SearchCriteria struct {
	Location string
	Type     model.PropertyType
	MinPrice *float64
	MaxPrice *float64
	Keywords string
}

// buildSearchWhere folds the present filters into a WHERE clause with
// positional args. Every query is pinned to approved listings; blank or
// whitespace-only strings contribute no predicate. Inverted price bounds are
// legal and simply match nothing.
func buildSearchWhere(c SearchCriteria) (string, []interface{}) {
	clauses := []string{"status = $1"}
	args := []interface{}{model.StatusApproved}
	idx := 2

	if v := strings.TrimSpace(c.Location); v != "" {
		clauses = append(clauses, fmt.Sprintf("location ILIKE $%d", idx))
		args = append(args, "%"+v+"%")
		idx++
	}
	if c.Type != "" {
		clauses = append(clauses, fmt.Sprintf("type = $%d", idx))
		args = append(args, c.Type)
		idx++
	}
	if c.MinPrice != nil {
		clauses = append(clauses, fmt.Sprintf("price >= $%d", idx))
		args = append(args, *c.MinPrice)
		idx++
	}
	if c.MaxPrice != nil {
		clauses = append(clauses, fmt.Sprintf("price <= $%d", idx))
		args = append(args, *c.MaxPrice)
		idx++
	}
	if v := strings.TrimSpace(c.Keywords); v != "" {
		pattern := "%" + v + "%"
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", idx, idx+1))
		args = append(args, pattern, pattern)
		idx += 2
	}

	return strings.Join(clauses, " AND "), args
}
