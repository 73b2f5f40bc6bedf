package book

import (
	"context"

	"bookshop-catalog/internal/entity"
	"bookshop-catalog/internal/shared/repository"
)

// BookRepository extends the generic contract with category-aware reads.
// GetAll and GetByID return books with their Category populated.
type BookRepository interface {
	repository.Repository[*entity.Book]

	GetAllOrderedByName(ctx context.Context) ([]*entity.Book, error)
	GetByIDWithCategory(ctx context.Context, id int64) (*entity.Book, error)
	GetByCategoryID(ctx context.Context, categoryID int64) ([]*entity.Book, error)

	// SearchAcrossFields matches term as a substring of the book name,
	// author, description or its category name.
	SearchAcrossFields(ctx context.Context, term string) ([]*entity.Book, error)
}
