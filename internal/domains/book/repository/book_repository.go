package repository

import (
	"context"

	"bookshop-catalog/internal/domains/book"
	"bookshop-catalog/internal/entity"
	"bookshop-catalog/internal/shared/repository"
	"bookshop-catalog/pkg/database"
)

var mapper = repository.Mapper[*entity.Book]{
	Table:   "books",
	Columns: []string{"name", "author", "description", "publish_date", "category_id"},
	Values: func(b *entity.Book) []any {
		return []any{b.Name, b.Author, b.Description, b.PublishDate.UTC(), b.CategoryID}
	},
	Scan: scanBook,
}

const selectWithCategory = `
	SELECT b.id, b.name, b.author, b.description, b.publish_date, b.category_id,
	       c.id, c.name
	FROM books b
	INNER JOIN categories c ON c.id = b.category_id`

type bookRepository struct {
	*repository.GenericRepository[*entity.Book]
}

// NewBookRepository binds a book repository to one store session.
func NewBookRepository(session *database.Session) book.BookRepository {
	return &bookRepository{
		GenericRepository: repository.NewGenericRepository(session, mapper),
	}
}

func (r *bookRepository) GetAll(ctx context.Context) ([]*entity.Book, error) {
	return r.GetAllOrderedByName(ctx)
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*entity.Book, error) {
	return r.GetByIDWithCategory(ctx, id)
}

func (r *bookRepository) GetAllOrderedByName(ctx context.Context) ([]*entity.Book, error) {
	return r.QueryList(ctx, scanBookWithCategory, selectWithCategory+" ORDER BY b.name ASC")
}

func (r *bookRepository) GetByIDWithCategory(ctx context.Context, id int64) (*entity.Book, error) {
	args := r.NewArgs()
	query := selectWithCategory + " WHERE b.id = " + args.Add(id)
	return r.QueryOne(ctx, scanBookWithCategory, query, args.Values()...)
}

func (r *bookRepository) GetByCategoryID(ctx context.Context, categoryID int64) ([]*entity.Book, error) {
	return r.Search(ctx, database.Eq("category_id", categoryID))
}

func (r *bookRepository) SearchAcrossFields(ctx context.Context, term string) ([]*entity.Book, error) {
	args := r.NewArgs()
	where := database.Or(
		database.Contains("b.name", term),
		database.Contains("b.author", term),
		database.Contains("b.description", term),
		database.Contains("c.name", term),
	).ToSQL(args)

	query := selectWithCategory + " WHERE " + where + " ORDER BY b.name ASC"
	return r.QueryList(ctx, scanBookWithCategory, query, args.Values()...)
}

func scanBook(s repository.Scanner) (*entity.Book, error) {
	var (
		b         entity.Book
		published database.Timestamp
	)
	if err := s.Scan(&b.ID, &b.Name, &b.Author, &b.Description, &published, &b.CategoryID); err != nil {
		return nil, err
	}
	b.PublishDate = published.Time
	return &b, nil
}

func scanBookWithCategory(s repository.Scanner) (*entity.Book, error) {
	var (
		b         entity.Book
		c         entity.Category
		published database.Timestamp
	)
	if err := s.Scan(
		&b.ID, &b.Name, &b.Author, &b.Description, &published, &b.CategoryID,
		&c.ID, &c.Name,
	); err != nil {
		return nil, err
	}
	b.PublishDate = published.Time
	b.Category = &c
	return &b, nil
}
