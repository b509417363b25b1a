package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/poiesic/gleaner/storage"
)

// buildWhere renders a filter as a WHERE clause with numbered placeholders
// starting at $1. An empty filter yields an empty clause.
func buildWhere(f storage.Filter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Title != "" {
		add("strpos(lower(title), lower($%d)) > 0", f.Title)
	}
	if !f.Start.IsZero() {
		add("pub_date >= $%d", f.Start)
	}
	if !f.End.IsZero() {
		add("pub_date <= $%d", f.End)
	}
	if len(f.Topics) > 0 {
		add("topics && $%d", pq.Array(f.Topics))
	}
	if len(f.Entities) > 0 {
		add("entities && $%d", pq.Array(f.Entities))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
