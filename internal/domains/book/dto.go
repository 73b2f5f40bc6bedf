package book

import (
	"time"

	"bookshop-catalog/internal/entity"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateBookReq struct {
	Name        string    `json:"name"`
	Author      string    `json:"author"`
	Description string    `json:"description"`
	PublishDate time.Time `json:"publish_date"`
	CategoryID  int64     `json:"category_id"`
}

func (r CreateBookReq) Validate() error {
	return validation.ValidateStruct(&r, bookFieldRules(&r.Name, &r.Author, &r.Description, &r.PublishDate, &r.CategoryID)...)
}

func (r CreateBookReq) ToEntity() *entity.Book {
	return &entity.Book{
		Name:        r.Name,
		Author:      r.Author,
		Description: r.Description,
		PublishDate: r.PublishDate.UTC(),
		CategoryID:  r.CategoryID,
	}
}

type UpdateBookReq struct {
	ID int64 `json:"id"`
	CreateBookReq
}

func (r UpdateBookReq) Validate() error {
	rules := append([]*validation.FieldRules{
		validation.Field(&r.ID,
			validation.Required.Error("id is required"),
			validation.Min(int64(1)),
		),
	}, bookFieldRules(&r.Name, &r.Author, &r.Description, &r.PublishDate, &r.CategoryID)...)
	return validation.ValidateStruct(&r, rules...)
}

func (r UpdateBookReq) ToEntity() *entity.Book {
	b := r.CreateBookReq.ToEntity()
	b.SetID(r.ID)
	return b
}

func bookFieldRules(name, author, description *string, publishDate *time.Time, categoryID *int64) []*validation.FieldRules {
	return []*validation.FieldRules{
		validation.Field(name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, entity.BookNameMaxLength),
		),
		validation.Field(author,
			validation.Required.Error("author is required"),
			validation.RuneLength(1, entity.BookAuthorMaxLength),
		),
		validation.Field(description,
			validation.Required.Error("description is required"),
			validation.RuneLength(1, entity.BookDescriptionMaxLength),
		),
		validation.Field(publishDate,
			validation.Required.Error("publish_date is required"),
		),
		validation.Field(categoryID,
			validation.Required.Error("category_id is required"),
			validation.Min(int64(1)),
		),
	}
}

type BookResp struct {
	ID           int64     `json:"id"`
	CategoryID   int64     `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	Name         string    `json:"name"`
	Author       string    `json:"author"`
	Description  string    `json:"description"`
	PublishDate  time.Time `json:"publish_date"`
}

func BookToResp(b *entity.Book) *BookResp {
	if b == nil {
		return nil
	}
	resp := &BookResp{
		ID:          b.ID,
		CategoryID:  b.CategoryID,
		Name:        b.Name,
		Author:      b.Author,
		Description: b.Description,
		PublishDate: b.PublishDate,
	}
	if b.Category != nil {
		resp.CategoryName = b.Category.Name
	}
	return resp
}

func BooksToResp(books []*entity.Book) []*BookResp {
	out := make([]*BookResp, 0, len(books))
	for _, b := range books {
		out = append(out, BookToResp(b))
	}
	return out
}
