package container

import (
	"bookshop-catalog/internal/domains/book"
	bookRepo "bookshop-catalog/internal/domains/book/repository"
	bookService "bookshop-catalog/internal/domains/book/service"
	"bookshop-catalog/internal/domains/category"
	categoryRepo "bookshop-catalog/internal/domains/category/repository"
	categoryService "bookshop-catalog/internal/domains/category/service"
	"bookshop-catalog/internal/shared/middleware"
	pkgdb "bookshop-catalog/pkg/database"

	"github.com/gin-gonic/gin"
)

// Scope is everything one request needs. All repositories share the
// scope's session, so closing the scope releases it exactly once.
type Scope struct {
	Session    *pkgdb.Session
	Books      book.BookService
	Categories category.CategoryService
}

func NewScope(session *pkgdb.Session) *Scope {
	books := bookService.NewBookService(bookRepo.NewBookRepository(session))
	categories := categoryService.NewCategoryService(categoryRepo.NewCategoryRepository(session), books)

	return &Scope{
		Session:    session,
		Books:      books,
		Categories: categories,
	}
}

// Close releases the session. The second Close is a no-op that reports
// the same result as the first.
func (s *Scope) Close() error {
	err := s.Categories.Close()
	if bErr := s.Books.Close(); err == nil {
		err = bErr
	}
	return err
}

func scopeFrom(c *gin.Context) *Scope {
	s, ok := middleware.ScopeFrom[*Scope](c)
	if !ok {
		panic("container: request scope missing, register middleware.RequestScope")
	}
	return s
}

// BookService resolves the book service of the request scope.
func BookService(c *gin.Context) book.BookService {
	return scopeFrom(c).Books
}

// CategoryService resolves the category service of the request scope.
func CategoryService(c *gin.Context) category.CategoryService {
	return scopeFrom(c).Categories
}
