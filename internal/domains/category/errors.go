package category

import (
	"errors"
	"net/http"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateName     = errors.New("category name already exists")
	ErrCategoryHasBooks  = errors.New("category still has books")
	ErrInvalidCategoryID = errors.New("invalid category id")
	ErrIDMismatch        = errors.New("path id does not match body id")
)

// Error codes returned to HTTP clients.
const (
	CodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	CodeDuplicateName    = "CATEGORY_DUPLICATE_NAME"
	CodeCategoryHasBooks = "CATEGORY_HAS_BOOKS"
	CodeInvalidID        = "INVALID_CATEGORY_ID"
	CodeInternal         = "INTERNAL_SERVER_ERROR"
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrCategoryNotFound)
}

func IsDuplicateName(err error) bool {
	return errors.Is(err, ErrDuplicateName)
}

func IsHasBooks(err error) bool {
	return errors.Is(err, ErrCategoryHasBooks)
}

// GetHTTPStatusCode maps a service error to the status the handler answers with.
func GetHTTPStatusCode(err error) int {
	switch {
	case IsNotFound(err):
		return http.StatusNotFound
	case IsDuplicateName(err):
		return http.StatusConflict
	case IsHasBooks(err),
		errors.Is(err, ErrInvalidCategoryID),
		errors.Is(err, ErrIDMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func GetErrorCode(err error) string {
	switch {
	case IsNotFound(err):
		return CodeCategoryNotFound
	case IsDuplicateName(err):
		return CodeDuplicateName
	case IsHasBooks(err):
		return CodeCategoryHasBooks
	case errors.Is(err, ErrInvalidCategoryID), errors.Is(err, ErrIDMismatch):
		return CodeInvalidID
	default:
		return CodeInternal
	}
}

// GetErrorMessage hides store failures from clients.
func GetErrorMessage(err error) string {
	switch {
	case IsNotFound(err):
		return "Category not found"
	case IsDuplicateName(err):
		return "A category with this name already exists"
	case IsHasBooks(err):
		return "Cannot delete a category that still has books. Move or delete them first."
	case errors.Is(err, ErrInvalidCategoryID):
		return "Category id must be a positive integer"
	case errors.Is(err, ErrIDMismatch):
		return "Category id in the path does not match the request body"
	default:
		return "Internal server error"
	}
}
