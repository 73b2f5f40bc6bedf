package book

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", ErrBookNotFound, http.StatusNotFound, CodeBookNotFound},
		{"wrapped duplicate", fmt.Errorf("add book: %w", ErrDuplicateName), http.StatusConflict, CodeDuplicateName},
		{"unknown category", ErrCategoryNotFound, http.StatusBadRequest, CodeCategoryNotFound},
		{"bad book id", ErrInvalidBookID, http.StatusBadRequest, CodeInvalidBookID},
		{"bad category id", ErrInvalidCategory, http.StatusBadRequest, CodeInvalidCategory},
		{"id mismatch", ErrIDMismatch, http.StatusBadRequest, CodeInvalidBookID},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, GetHTTPStatusCode(tt.err))
			assert.Equal(t, tt.wantCode, GetErrorCode(tt.err))
		})
	}
}

func TestGetErrorMessage_HidesStoreFailures(t *testing.T) {
	assert.Equal(t, "Internal server error", GetErrorMessage(errors.New("pq: password authentication failed")))
	assert.Equal(t, "Book not found", GetErrorMessage(ErrBookNotFound))
}
