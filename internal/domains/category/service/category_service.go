package service

import (
	"context"
	"errors"
	"fmt"

	"bookshop-catalog/internal/domains/book"
	"bookshop-catalog/internal/domains/category"
	"bookshop-catalog/internal/entity"
	"bookshop-catalog/pkg/database"
	"bookshop-catalog/pkg/logger"
)

type categoryServiceImpl struct {
	repository category.CategoryRepository
	books      book.BookService
}

// NewCategoryService needs the book service of the same request scope to
// guard removals.
func NewCategoryService(repo category.CategoryRepository, books book.BookService) category.CategoryService {
	return &categoryServiceImpl{
		repository: repo,
		books:      books,
	}
}

func (s *categoryServiceImpl) GetAll(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryServiceImpl) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	c, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	if c == nil {
		return nil, category.ErrCategoryNotFound
	}
	return c, nil
}

func (s *categoryServiceImpl) Add(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	if c == nil {
		return nil, fmt.Errorf("add category: nil category")
	}

	// ========== Name must be unique ==========
	existing, err := s.repository.Search(ctx, database.Eq("name", c.Name))
	if err != nil {
		return nil, fmt.Errorf("add category: check name: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("category name already taken", map[string]interface{}{
			"name":        c.Name,
			"existing_id": existing[0].ID,
		})
		return nil, category.ErrDuplicateName
	}

	if err := s.repository.Add(ctx, c); err != nil {
		return nil, s.translate("add category", c, err)
	}

	logger.Info("category created", map[string]interface{}{
		"id":   c.ID,
		"name": c.Name,
	})
	return c, nil
}

func (s *categoryServiceImpl) Update(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	if c == nil {
		return nil, fmt.Errorf("update category: nil category")
	}

	current, err := s.repository.GetByID(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("update category %d: %w", c.ID, err)
	}
	if current == nil {
		return nil, category.ErrCategoryNotFound
	}

	// Keeping its own name is allowed.
	existing, err := s.repository.Search(ctx, database.And(
		database.Eq("name", c.Name),
		database.Neq("id", c.ID),
	))
	if err != nil {
		return nil, fmt.Errorf("update category %d: check name: %w", c.ID, err)
	}
	if len(existing) > 0 {
		logger.Info("category name already taken", map[string]interface{}{
			"id":          c.ID,
			"name":        c.Name,
			"existing_id": existing[0].ID,
		})
		return nil, category.ErrDuplicateName
	}

	if err := s.repository.Update(ctx, c); err != nil {
		return nil, s.translate("update category", c, err)
	}
	return c, nil
}

func (s *categoryServiceImpl) Remove(ctx context.Context, c *entity.Category) (bool, error) {
	if c == nil {
		return false, fmt.Errorf("remove category: nil category")
	}

	books, err := s.books.GetByCategoryID(ctx, c.ID)
	if err != nil {
		return false, fmt.Errorf("remove category %d: list books: %w", c.ID, err)
	}
	if len(books) > 0 {
		logger.Info("category still has books", map[string]interface{}{
			"id":    c.ID,
			"books": len(books),
		})
		return false, category.ErrCategoryHasBooks
	}

	if err := s.repository.Remove(ctx, c); err != nil {
		return false, s.translate("remove category", c, err)
	}

	logger.Info("category removed", map[string]interface{}{
		"id": c.ID,
	})
	return true, nil
}

func (s *categoryServiceImpl) SearchByName(ctx context.Context, term string) ([]*entity.Category, error) {
	categories, err := s.repository.Search(ctx, database.Contains("name", term))
	if err != nil {
		return nil, fmt.Errorf("search categories: %w", err)
	}
	return categories, nil
}

func (s *categoryServiceImpl) Close() error {
	return s.repository.Close()
}

// translate turns constraint failures raised at commit into the same
// rejections the guards above produce.
func (s *categoryServiceImpl) translate(op string, c *entity.Category, err error) error {
	switch {
	case database.IsUniqueViolation(err):
		return category.ErrDuplicateName
	case database.IsForeignKeyViolation(err):
		return category.ErrCategoryHasBooks
	case errors.Is(err, database.ErrNoRowsAffected):
		return category.ErrCategoryNotFound
	}

	logger.ErrorWithFields(op+" failed", err, map[string]interface{}{
		"id":   c.ID,
		"name": c.Name,
	})
	return fmt.Errorf("%s %d: %w", op, c.ID, err)
}
