package category

import (
	"context"

	"bookshop-catalog/internal/entity"
)

// CategoryService applies the catalog rules for categories before
// delegating to the repository.
//
// Rejections come back as absent (nil or false) together with one of the
// sentinel errors in errors.go. Any other error is a store failure.
type CategoryService interface {
	GetAll(ctx context.Context) ([]*entity.Category, error)
	GetByID(ctx context.Context, id int64) (*entity.Category, error)

	// Add and Update reject names already used by another category.
	Add(ctx context.Context, c *entity.Category) (*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) (*entity.Category, error)

	// Remove reports false with ErrCategoryHasBooks while any book still
	// references the category.
	Remove(ctx context.Context, c *entity.Category) (bool, error)

	SearchByName(ctx context.Context, term string) ([]*entity.Category, error)

	// Close releases the underlying store session.
	Close() error
}
