package entity

import "time"

const (
	BookNameMaxLength        = 100
	BookAuthorMaxLength      = 100
	BookDescriptionMaxLength = 250
)

// Book belongs to exactly one Category. Category is populated only by reads
// that join the categories table.
type Book struct {
	BaseEntity
	Name        string    `json:"name" db:"name"`
	Author      string    `json:"author" db:"author"`
	Description string    `json:"description" db:"description"`
	PublishDate time.Time `json:"publish_date" db:"publish_date"`
	CategoryID  int64     `json:"category_id" db:"category_id"`
	Category    *Category `json:"category,omitempty" db:"-"`
}
