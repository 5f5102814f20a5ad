package query

import (
	"fmt"
	"strings"
)

// Builder accumulates WHERE conditions together with their bound
// arguments and renders Postgres $n placeholders. User input only ever
// enters a query through Bind.
type Builder struct {
	conds []string
	args  []interface{}
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Bind registers a query argument and returns its placeholder.
func (b *Builder) Bind(v interface{}) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// And appends a ready condition. The condition must only reference
// placeholders obtained from Bind.
func (b *Builder) And(cond string) {
	b.conds = append(b.conds, cond)
}

// AndIn appends "col IN ($n,...)" with every value bound.
func (b *Builder) AndIn(col string, vals []string) {
	if len(vals) == 0 {
		return
	}
	params := make([]string, len(vals))
	for i, v := range vals {
		params[i] = b.Bind(v)
	}
	b.conds = append(b.conds, col+" IN ("+strings.Join(params, ",")+")")
}

// InCondition renders "col IN ($n,...)" with every value bound,
// without appending it, for callers composing larger predicates.
func (b *Builder) InCondition(col string, vals []string) string {
	params := make([]string, len(vals))
	for i, v := range vals {
		params[i] = b.Bind(v)
	}
	return col + " IN (" + strings.Join(params, ",") + ")"
}

// Where renders "WHERE c1 AND c2 ..." or an empty string.
func (b *Builder) Where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.conds, " AND ")
}

// Clause renders " AND c1 AND c2 ..." for appending to a query that
// already has a WHERE section.
func (b *Builder) Clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " AND " + strings.Join(b.conds, " AND ")
}

func (b *Builder) Args() []interface{} {
	return b.args
}

func (b *Builder) HasConditions() bool {
	return len(b.conds) > 0
}
