package service

import (
	"context"
	"errors"
	"fmt"

	"bookshop-catalog/internal/domains/book"
	"bookshop-catalog/internal/entity"
	"bookshop-catalog/pkg/database"
	"bookshop-catalog/pkg/logger"
)

type bookServiceImpl struct {
	repository book.BookRepository
}

func NewBookService(repo book.BookRepository) book.BookService {
	return &bookServiceImpl{
		repository: repo,
	}
}

func (s *bookServiceImpl) GetAll(ctx context.Context) ([]*entity.Book, error) {
	books, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (s *bookServiceImpl) GetByID(ctx context.Context, id int64) (*entity.Book, error) {
	b, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}
	if b == nil {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (s *bookServiceImpl) Add(ctx context.Context, b *entity.Book) (*entity.Book, error) {
	if b == nil {
		return nil, fmt.Errorf("add book: nil book")
	}

	// ========== STEP 1: Name must be unique ==========
	existing, err := s.repository.Search(ctx, database.Eq("name", b.Name))
	if err != nil {
		return nil, fmt.Errorf("add book: check name: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("book name already taken", map[string]interface{}{
			"name":        b.Name,
			"existing_id": existing[0].ID,
		})
		return nil, book.ErrDuplicateName
	}

	// ========== STEP 2: Persist ==========
	if err := s.repository.Add(ctx, b); err != nil {
		return nil, s.translate("add book", b, err)
	}

	logger.Info("book created", map[string]interface{}{
		"id":          b.ID,
		"name":        b.Name,
		"category_id": b.CategoryID,
	})
	return s.reload(ctx, b), nil
}

func (s *bookServiceImpl) Update(ctx context.Context, b *entity.Book) (*entity.Book, error) {
	if b == nil {
		return nil, fmt.Errorf("update book: nil book")
	}

	// ========== STEP 1: Book must exist ==========
	current, err := s.repository.GetByID(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("update book %d: %w", b.ID, err)
	}
	if current == nil {
		return nil, book.ErrBookNotFound
	}

	// ========== STEP 2: Name unique among other books ==========
	existing, err := s.repository.Search(ctx, database.And(
		database.Eq("name", b.Name),
		database.Neq("id", b.ID),
	))
	if err != nil {
		return nil, fmt.Errorf("update book %d: check name: %w", b.ID, err)
	}
	if len(existing) > 0 {
		logger.Info("book name already taken", map[string]interface{}{
			"id":          b.ID,
			"name":        b.Name,
			"existing_id": existing[0].ID,
		})
		return nil, book.ErrDuplicateName
	}

	// ========== STEP 3: Persist ==========
	if err := s.repository.Update(ctx, b); err != nil {
		return nil, s.translate("update book", b, err)
	}
	return s.reload(ctx, b), nil
}

func (s *bookServiceImpl) Remove(ctx context.Context, b *entity.Book) (bool, error) {
	if b == nil {
		return false, fmt.Errorf("remove book: nil book")
	}

	if err := s.repository.Remove(ctx, b); err != nil {
		return false, s.translate("remove book", b, err)
	}

	logger.Info("book removed", map[string]interface{}{
		"id": b.ID,
	})
	return true, nil
}

func (s *bookServiceImpl) GetByCategoryID(ctx context.Context, categoryID int64) ([]*entity.Book, error) {
	books, err := s.repository.GetByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list books of category %d: %w", categoryID, err)
	}
	return books, nil
}

func (s *bookServiceImpl) SearchByName(ctx context.Context, term string) ([]*entity.Book, error) {
	books, err := s.repository.Search(ctx, database.Contains("name", term))
	if err != nil {
		return nil, fmt.Errorf("search books by name: %w", err)
	}
	return books, nil
}

func (s *bookServiceImpl) SearchAcrossFields(ctx context.Context, term string) ([]*entity.Book, error) {
	books, err := s.repository.SearchAcrossFields(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	return books, nil
}

func (s *bookServiceImpl) Close() error {
	return s.repository.Close()
}

// reload fetches the committed book with its category. The write already
// succeeded, so a failed read falls back to the caller's copy.
func (s *bookServiceImpl) reload(ctx context.Context, b *entity.Book) *entity.Book {
	fresh, err := s.repository.GetByID(ctx, b.ID)
	if err != nil || fresh == nil {
		logger.Warn("reload book after write", map[string]interface{}{
			"id":    b.ID,
			"error": fmt.Sprint(err),
		})
		return b
	}
	return fresh
}

func (s *bookServiceImpl) translate(op string, b *entity.Book, err error) error {
	switch {
	case database.IsUniqueViolation(err):
		return book.ErrDuplicateName
	case database.IsForeignKeyViolation(err):
		return book.ErrCategoryNotFound
	case errors.Is(err, database.ErrNoRowsAffected):
		return book.ErrBookNotFound
	}

	logger.ErrorWithFields(op+" failed", err, map[string]interface{}{
		"id":          b.ID,
		"name":        b.Name,
		"category_id": b.CategoryID,
	})
	return fmt.Errorf("%s %d: %w", op, b.ID, err)
}
