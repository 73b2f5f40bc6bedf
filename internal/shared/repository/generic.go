package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"bookshop-catalog/internal/entity"
	"bookshop-catalog/pkg/database"
)

// ErrIdentityAssigned is returned by Add for an entity that already has an id.
var ErrIdentityAssigned = errors.New("entity already has an identity")

// Scanner is implemented by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Mapper binds an entity kind to its table.
type Mapper[T entity.Entity] struct {
	Table string

	// Columns lists every column except id, in the order Values returns them.
	Columns []string

	Values func(T) []any

	// Scan reads one row laid out as id followed by Columns.
	Scan func(Scanner) (T, error)
}

// Repository is the data-access contract shared by every entity kind.
type Repository[T entity.Entity] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (T, error)
	Add(ctx context.Context, e T) error
	Update(ctx context.Context, e T) error
	Remove(ctx context.Context, e T) error
	Commit(ctx context.Context) (int64, error)
	Search(ctx context.Context, p database.Predicate) ([]T, error)
	Close() error
}

// GenericRepository implements Repository for any mapped entity. Entity
// repositories embed it and add their own queries.
type GenericRepository[T entity.Entity] struct {
	session *database.Session
	mapper  Mapper[T]
}

func NewGenericRepository[T entity.Entity](session *database.Session, mapper Mapper[T]) *GenericRepository[T] {
	return &GenericRepository[T]{session: session, mapper: mapper}
}

func (r *GenericRepository[T]) Session() *database.Session {
	return r.session
}

// NewArgs starts a bind list in the session's dialect.
func (r *GenericRepository[T]) NewArgs() *database.Args {
	return database.NewArgs(r.session.Dialect())
}

func (r *GenericRepository[T]) selectList() string {
	return "id, " + strings.Join(r.mapper.Columns, ", ")
}

// GetAll returns every row of the table in store order.
func (r *GenericRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", r.selectList(), r.mapper.Table)
	return r.QueryList(ctx, r.mapper.Scan, query)
}

// GetByID returns the zero value (nil) without error when no row matches.
func (r *GenericRepository[T]) GetByID(ctx context.Context, id int64) (T, error) {
	args := r.NewArgs()
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = %s", r.selectList(), r.mapper.Table, args.Add(id))
	return r.QueryOne(ctx, r.mapper.Scan, query, args.Values()...)
}

// Add inserts the entity and commits; the identity is set on success.
func (r *GenericRepository[T]) Add(ctx context.Context, e T) error {
	if e.GetID() != 0 {
		return fmt.Errorf("add to %s: %w", r.mapper.Table, ErrIdentityAssigned)
	}

	args := r.NewArgs()
	placeholders := make([]string, 0, len(r.mapper.Columns))
	for _, v := range r.mapper.Values(e) {
		placeholders = append(placeholders, args.Add(v))
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		r.mapper.Table,
		strings.Join(r.mapper.Columns, ", "),
		strings.Join(placeholders, ", "),
	)

	if err := r.session.Stage(database.Operation{
		Query:    query,
		Args:     args.Values(),
		OnInsert: e.SetID,
	}); err != nil {
		return err
	}

	if _, err := r.Commit(ctx); err != nil {
		return fmt.Errorf("add to %s: %w", r.mapper.Table, err)
	}
	return nil
}

// Update replaces every column of the row identified by the entity.
func (r *GenericRepository[T]) Update(ctx context.Context, e T) error {
	args := r.NewArgs()
	values := r.mapper.Values(e)
	sets := make([]string, 0, len(r.mapper.Columns))
	for i, col := range r.mapper.Columns {
		sets = append(sets, col+" = "+args.Add(values[i]))
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = %s",
		r.mapper.Table,
		strings.Join(sets, ", "),
		args.Add(e.GetID()),
	)

	if err := r.session.Stage(database.Operation{
		Query:      query,
		Args:       args.Values(),
		ExpectRows: 1,
	}); err != nil {
		return err
	}

	if _, err := r.Commit(ctx); err != nil {
		return fmt.Errorf("update %s %d: %w", r.mapper.Table, e.GetID(), err)
	}
	return nil
}

// Remove physically deletes the row identified by the entity.
func (r *GenericRepository[T]) Remove(ctx context.Context, e T) error {
	args := r.NewArgs()
	query := fmt.Sprintf("DELETE FROM %s WHERE id = %s", r.mapper.Table, args.Add(e.GetID()))

	if err := r.session.Stage(database.Operation{
		Query:      query,
		Args:       args.Values(),
		ExpectRows: 1,
	}); err != nil {
		return err
	}

	if _, err := r.Commit(ctx); err != nil {
		return fmt.Errorf("remove %s %d: %w", r.mapper.Table, e.GetID(), err)
	}
	return nil
}

func (r *GenericRepository[T]) Commit(ctx context.Context) (int64, error) {
	return r.session.Commit(ctx)
}

// Search returns the rows matching p, evaluated by the store.
func (r *GenericRepository[T]) Search(ctx context.Context, p database.Predicate) ([]T, error) {
	args := r.NewArgs()
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s", r.selectList(), r.mapper.Table, p.ToSQL(args))
	return r.QueryList(ctx, r.mapper.Scan, query, args.Values()...)
}

// Close releases the underlying session. Safe to call more than once.
func (r *GenericRepository[T]) Close() error {
	return r.session.Release()
}

// QueryList runs a read and scans every row with scan. It never returns a
// nil slice on success.
func (r *GenericRepository[T]) QueryList(ctx context.Context, scan func(Scanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := r.session.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", r.mapper.Table, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.mapper.Table, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", r.mapper.Table, err)
	}

	return items, nil
}

// QueryOne runs a single-row read. A missing row yields the zero value and
// a nil error.
func (r *GenericRepository[T]) QueryOne(ctx context.Context, scan func(Scanner) (T, error), query string, args ...any) (T, error) {
	var zero T

	row, err := r.session.QueryRowContext(ctx, query, args...)
	if err != nil {
		return zero, fmt.Errorf("query %s: %w", r.mapper.Table, err)
	}

	item, err := scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, nil
		}
		return zero, fmt.Errorf("scan %s: %w", r.mapper.Table, err)
	}

	return item, nil
}
