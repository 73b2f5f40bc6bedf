package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// Store is the process-wide entry point to the relational store. It never
// executes entity operations itself; each request acquires its own Session.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

func NewStore(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Dialect() Dialect {
	return s.dialect
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Acquire pins a dedicated connection for one request. The caller must
// Release the session when the request ends.
func (s *Store) Acquire(ctx context.Context) (*Session, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire store session: %w", err)
	}
	return &Session{conn: conn, dialect: s.dialect}, nil
}

// Operation is one staged write.
type Operation struct {
	Query string
	Args  []any

	// OnInsert is set for INSERT ... RETURNING id statements. It receives the
	// store-assigned identity once the whole unit has committed.
	OnInsert func(id int64)

	// ExpectRows fails the unit when the statement affects a different
	// number of rows. Zero disables the check.
	ExpectRows int64
}

// Session is a unit of work bound to one pinned connection. Reads go
// straight to the connection; writes are staged and flushed atomically by
// Commit. A Session is not safe for concurrent use.
type Session struct {
	conn    *sql.Conn
	dialect Dialect
	pending []Operation

	once       sync.Once
	released   bool
	releaseErr error
}

func (s *Session) Dialect() Dialect {
	return s.dialect
}

// Stage queues a write for the next Commit.
func (s *Session) Stage(op Operation) error {
	if s.released {
		return ErrSessionReleased
	}
	s.pending = append(s.pending, op)
	return nil
}

// Pending reports how many writes wait for Commit.
func (s *Session) Pending() int {
	return len(s.pending)
}

// Commit flushes every staged write in one transaction and returns the
// number of affected rows. On failure nothing is applied and the staged
// writes are discarded.
func (s *Session) Commit(ctx context.Context) (int64, error) {
	if s.released {
		return 0, ErrSessionReleased
	}

	ops := s.pending
	s.pending = nil
	if len(ops) == 0 {
		return 0, nil
	}

	ids := make([]int64, len(ops))
	affected, err := WithTransactionResult(ctx, s.conn, func(tx *sql.Tx) (int64, error) {
		var total int64
		for i, op := range ops {
			n, err := execOperation(ctx, tx, op, &ids[i])
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	})
	if err != nil {
		return 0, err
	}

	// identities become visible only after the unit is durable
	for i, op := range ops {
		if op.OnInsert != nil {
			op.OnInsert(ids[i])
		}
	}

	return affected, nil
}

func execOperation(ctx context.Context, tx *sql.Tx, op Operation, id *int64) (int64, error) {
	if op.OnInsert != nil {
		if err := tx.QueryRowContext(ctx, op.Query, op.Args...).Scan(id); err != nil {
			return 0, Classify(err)
		}
		return 1, nil
	}

	res, err := tx.ExecContext(ctx, op.Query, op.Args...)
	if err != nil {
		return 0, Classify(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if op.ExpectRows > 0 && n != op.ExpectRows {
		return 0, fmt.Errorf("%w: expected %d row(s), got %d", ErrNoRowsAffected, op.ExpectRows, n)
	}
	return n, nil
}

func (s *Session) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if s.released {
		return nil, ErrSessionReleased
	}
	return s.conn.QueryContext(ctx, query, args...)
}

func (s *Session) QueryRowContext(ctx context.Context, query string, args ...any) (*sql.Row, error) {
	if s.released {
		return nil, ErrSessionReleased
	}
	return s.conn.QueryRowContext(ctx, query, args...), nil
}

// Release discards staged writes and returns the connection to the pool.
// Only the first call has an effect.
func (s *Session) Release() error {
	s.once.Do(func() {
		s.released = true
		s.pending = nil
		s.releaseErr = s.conn.Close()
	})
	return s.releaseErr
}

func (s *Session) Released() bool {
	return s.released
}
