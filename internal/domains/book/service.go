package book

import (
	"context"

	"bookshop-catalog/internal/entity"
)

// BookService enforces name uniqueness on writes; reads pass through.
type BookService interface {
	GetAll(ctx context.Context) ([]*entity.Book, error)
	GetByID(ctx context.Context, id int64) (*entity.Book, error)
	Add(ctx context.Context, b *entity.Book) (*entity.Book, error)
	Update(ctx context.Context, b *entity.Book) (*entity.Book, error)
	Remove(ctx context.Context, b *entity.Book) (bool, error)
	GetByCategoryID(ctx context.Context, categoryID int64) ([]*entity.Book, error)
	SearchByName(ctx context.Context, term string) ([]*entity.Book, error)
	SearchAcrossFields(ctx context.Context, term string) ([]*entity.Book, error)
	Close() error
}
