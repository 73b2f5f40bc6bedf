package database

import "fmt"

// Dialect hides the few SQL differences between the supported stores.
type Dialect interface {
	// Name is the database/sql driver name.
	Name() string

	// GooseDialect is the dialect name understood by the migration tool.
	GooseDialect() string

	// Placeholder renders the n-th (1-based) bind parameter.
	Placeholder(n int) string

	// Contains renders a case-sensitive substring test of column against
	// an already rendered placeholder.
	Contains(column, placeholder string) string
}

type postgresDialect struct{}

func (postgresDialect) Name() string             { return "pgx" }
func (postgresDialect) GooseDialect() string     { return "postgres" }
func (postgresDialect) Placeholder(n int) string { return fmt.Sprintf("$%d", n) }
func (postgresDialect) Contains(col, ph string) string {
	return fmt.Sprintf("strpos(%s, %s) > 0", col, ph)
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string           { return "sqlite" }
func (sqliteDialect) GooseDialect() string   { return "sqlite3" }
func (sqliteDialect) Placeholder(int) string { return "?" }
func (sqliteDialect) Contains(col, ph string) string {
	return fmt.Sprintf("instr(%s, %s) > 0", col, ph)
}

var (
	// Postgres renders $n placeholders and uses strpos for substrings.
	Postgres Dialect = postgresDialect{}

	// SQLite renders ? placeholders and uses instr for substrings.
	SQLite Dialect = sqliteDialect{}
)
