package category

import (
	"bookshop-catalog/internal/entity"
	"bookshop-catalog/internal/shared/repository"
)

// CategoryRepository adds nothing to the generic contract; it exists so
// the service depends on a category-specific type.
type CategoryRepository interface {
	repository.Repository[*entity.Category]
}
