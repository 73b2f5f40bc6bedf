package entity

const CategoryNameMaxLength = 100

// Category groups books. Books is a derived view discovered through
// books.category_id; a category never owns or persists it.
type Category struct {
	BaseEntity
	Name  string `json:"name" db:"name"`
	Books []Book `json:"books,omitempty" db:"-"`
}
