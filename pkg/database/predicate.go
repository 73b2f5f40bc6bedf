package database

import "strings"

// Args collects bind values while a statement is being rendered, so that
// placeholders are numbered in the order they appear in the SQL text.
type Args struct {
	dialect Dialect
	values  []any
}

// NewArgs creates an empty argument list for the given dialect.
func NewArgs(d Dialect) *Args {
	return &Args{dialect: d}
}

// Add appends a value and returns its placeholder.
func (a *Args) Add(v any) string {
	a.values = append(a.values, v)
	return a.dialect.Placeholder(len(a.values))
}

// Values returns the collected bind values.
func (a *Args) Values() []any {
	return a.values
}

// Predicate is a boolean condition over an entity's columns. It is rendered
// into a WHERE clause and evaluated by the store, never in memory.
type Predicate interface {
	ToSQL(args *Args) string
}

type comparison struct {
	column string
	op     string
	value  any
}

func (p comparison) ToSQL(args *Args) string {
	return p.column + " " + p.op + " " + args.Add(p.value)
}

// Eq matches rows where column equals value.
func Eq(column string, value any) Predicate {
	return comparison{column: column, op: "=", value: value}
}

// Neq matches rows where column differs from value.
func Neq(column string, value any) Predicate {
	return comparison{column: column, op: "<>", value: value}
}

type contains struct {
	column string
	term   string
}

func (p contains) ToSQL(args *Args) string {
	return args.dialect.Contains(p.column, args.Add(p.term))
}

// Contains matches rows where column holds term as a case-sensitive substring.
func Contains(column, term string) Predicate {
	return contains{column: column, term: term}
}

type junction struct {
	op    string
	parts []Predicate
}

func (j junction) ToSQL(args *Args) string {
	if len(j.parts) == 0 {
		// empty AND is true, empty OR is false
		if j.op == "AND" {
			return "1 = 1"
		}
		return "1 = 0"
	}
	if len(j.parts) == 1 {
		return j.parts[0].ToSQL(args)
	}
	rendered := make([]string, 0, len(j.parts))
	for _, p := range j.parts {
		rendered = append(rendered, p.ToSQL(args))
	}
	return "(" + strings.Join(rendered, " "+j.op+" ") + ")"
}

// And matches rows satisfying every predicate.
func And(ps ...Predicate) Predicate {
	return junction{op: "AND", parts: ps}
}

// Or matches rows satisfying at least one predicate.
func Or(ps ...Predicate) Predicate {
	return junction{op: "OR", parts: ps}
}

// All matches every row.
func All() Predicate {
	return And()
}
