package repository

import (
	"bookshop-catalog/internal/domains/category"
	"bookshop-catalog/internal/entity"
	"bookshop-catalog/internal/shared/repository"
	"bookshop-catalog/pkg/database"
)

const table = "categories"

var mapper = repository.Mapper[*entity.Category]{
	Table:   table,
	Columns: []string{"name"},
	Values: func(c *entity.Category) []any {
		return []any{c.Name}
	},
	Scan: func(s repository.Scanner) (*entity.Category, error) {
		c := &entity.Category{}
		if err := s.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		return c, nil
	},
}

type categoryRepository struct {
	*repository.GenericRepository[*entity.Category]
}

// NewCategoryRepository binds a category repository to one store session.
func NewCategoryRepository(session *database.Session) category.CategoryRepository {
	return &categoryRepository{
		GenericRepository: repository.NewGenericRepository(session, mapper),
	}
}
