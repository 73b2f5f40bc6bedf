package handler

import (
	"net/http"

	"bookshop-catalog/internal/domains/book"
	"bookshop-catalog/internal/shared/response"
	"bookshop-catalog/internal/shared/utils"
	"bookshop-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ServiceResolver returns the book service of the current request scope.
type ServiceResolver func(c *gin.Context) book.BookService

// Handler - HTTP handler for /v1/books
type Handler struct {
	service ServiceResolver
}

func NewHandler(resolve ServiceResolver) *Handler {
	return &Handler{
		service: resolve,
	}
}

// ListBooks - GET /v1/books
// Sorted by name, each book carries its category name.
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.service(c).GetAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.List(c, "Get books successfully", book.BooksToResp(books), len(books))
}

// GetBook - GET /v1/books/:id
func (h *Handler) GetBook(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		h.handleError(c, book.ErrInvalidBookID)
		return
	}

	result, err := h.service(c).GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get book successfully", book.BookToResp(result))
}

// ListByCategory - GET /v1/books/get-books-by-category/:categoryId
// An empty category answers 404.
func (h *Handler) ListByCategory(c *gin.Context) {
	categoryID, err := utils.ParseID(c, "categoryId")
	if err != nil {
		h.handleError(c, book.ErrInvalidCategory)
		return
	}

	books, err := h.service(c).GetByCategoryID(c.Request.Context(), categoryID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if len(books) == 0 {
		response.NotFound(c, "No book found for this category")
		return
	}

	response.List(c, "Get books by category successfully", book.BooksToResp(books), len(books))
}

// CreateBook - POST /v1/books
func (h *Handler) CreateBook(c *gin.Context) {
	var req book.CreateBookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	created, err := h.service(c).Add(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Create book successfully", book.BookToResp(created))
}

// UpdateBook - PUT /v1/books/:id
// The body id must match the path id.
func (h *Handler) UpdateBook(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		h.handleError(c, book.ErrInvalidBookID)
		return
	}

	var req book.UpdateBookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.ID != id {
		h.handleError(c, book.ErrIDMismatch)
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	updated, err := h.service(c).Update(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Update book successfully", book.BookToResp(updated))
}

// DeleteBook - DELETE /v1/books/:id
func (h *Handler) DeleteBook(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		h.handleError(c, book.ErrInvalidBookID)
		return
	}

	svc := h.service(c)
	existing, err := svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if _, err := svc.Remove(c.Request.Context(), existing); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Delete book successfully", nil)
}

// SearchByName - GET /v1/books/search/:bookName
func (h *Handler) SearchByName(c *gin.Context) {
	books, err := h.service(c).SearchByName(c.Request.Context(), c.Param("bookName"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	if len(books) == 0 {
		response.NotFound(c, "No book matches the search term")
		return
	}

	response.List(c, "Search books successfully", book.BooksToResp(books), len(books))
}

// SearchWithCategory - GET /v1/books/search-book-with-category/:searchKey
// Matches name, author, description or category name.
func (h *Handler) SearchWithCategory(c *gin.Context) {
	books, err := h.service(c).SearchAcrossFields(c.Request.Context(), c.Param("searchKey"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	if len(books) == 0 {
		response.NotFound(c, "No book matches the search term")
		return
	}

	response.List(c, "Search books successfully", book.BooksToResp(books), len(books))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := book.GetHTTPStatusCode(err)
	if status == http.StatusInternalServerError {
		logger.ErrorWithFields("book request failed", err, map[string]interface{}{
			"path":       c.FullPath(),
			"request_id": c.GetString("request_id"),
		})
	}
	response.ErrorResponse(c, status, book.GetErrorCode(err), book.GetErrorMessage(err))
}
