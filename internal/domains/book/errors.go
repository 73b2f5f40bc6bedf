package book

import (
	"errors"
	"net/http"
)

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrDuplicateName    = errors.New("book name already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidBookID    = errors.New("invalid book id")
	ErrInvalidCategory  = errors.New("invalid category id")
	ErrIDMismatch       = errors.New("path id does not match body id")
)

// Error codes returned to HTTP clients.
const (
	CodeBookNotFound     = "BOOK_NOT_FOUND"
	CodeDuplicateName    = "BOOK_DUPLICATE_NAME"
	CodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	CodeInvalidBookID    = "INVALID_BOOK_ID"
	CodeInvalidCategory  = "INVALID_CATEGORY_ID"
	CodeInternal         = "INTERNAL_SERVER_ERROR"
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrBookNotFound)
}

func IsDuplicateName(err error) bool {
	return errors.Is(err, ErrDuplicateName)
}

func IsCategoryNotFound(err error) bool {
	return errors.Is(err, ErrCategoryNotFound)
}

// GetHTTPStatusCode maps a service error to the status the handler answers with.
// An unknown category is the client's mistake, so it is a 400, not a 404.
func GetHTTPStatusCode(err error) int {
	switch {
	case IsNotFound(err):
		return http.StatusNotFound
	case IsDuplicateName(err):
		return http.StatusConflict
	case IsCategoryNotFound(err),
		errors.Is(err, ErrInvalidBookID),
		errors.Is(err, ErrInvalidCategory),
		errors.Is(err, ErrIDMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func GetErrorCode(err error) string {
	switch {
	case IsNotFound(err):
		return CodeBookNotFound
	case IsDuplicateName(err):
		return CodeDuplicateName
	case IsCategoryNotFound(err):
		return CodeCategoryNotFound
	case errors.Is(err, ErrInvalidBookID), errors.Is(err, ErrIDMismatch):
		return CodeInvalidBookID
	case errors.Is(err, ErrInvalidCategory):
		return CodeInvalidCategory
	default:
		return CodeInternal
	}
}

// GetErrorMessage hides store failures from clients.
func GetErrorMessage(err error) string {
	switch {
	case IsNotFound(err):
		return "Book not found"
	case IsDuplicateName(err):
		return "A book with this name already exists"
	case IsCategoryNotFound(err):
		return "The specified category does not exist"
	case errors.Is(err, ErrInvalidBookID):
		return "Book id must be a positive integer"
	case errors.Is(err, ErrInvalidCategory):
		return "Category id must be a positive integer"
	case errors.Is(err, ErrIDMismatch):
		return "Book id in the path does not match the request body"
	default:
		return "Internal server error"
	}
}
