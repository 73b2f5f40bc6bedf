package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
)

var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
	ErrNoRowsAffected      = errors.New("no row matches the entity identity")
	ErrSessionReleased     = errors.New("store session already released")
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// SQLite extended result codes
const (
	sqliteConstraintForeignKey = 787
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// Classify tags driver errors with the matching sentinel so callers can use
// errors.Is without knowing which store is behind the session. The original
// error stays in the chain.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
		}
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		msg := liteErr.Error()
		switch {
		case liteErr.Code() == sqliteConstraintUnique,
			liteErr.Code() == sqliteConstraintPrimaryKey,
			strings.Contains(msg, "UNIQUE constraint failed"):
			return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		case liteErr.Code() == sqliteConstraintForeignKey,
			strings.Contains(msg, "FOREIGN KEY constraint failed"):
			return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
		}
	}

	return err
}

func IsUniqueViolation(err error) bool {
	return errors.Is(err, ErrUniqueViolation)
}

func IsForeignKeyViolation(err error) bool {
	return errors.Is(err, ErrForeignKeyViolation)
}
