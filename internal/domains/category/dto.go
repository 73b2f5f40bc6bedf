package category

import (
	"bookshop-catalog/internal/entity"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateCategoryReq struct {
	Name string `json:"name"`
}

func (r CreateCategoryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, entity.CategoryNameMaxLength),
		),
	)
}

func (r CreateCategoryReq) ToEntity() *entity.Category {
	return &entity.Category{Name: r.Name}
}

type UpdateCategoryReq struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (r UpdateCategoryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID,
			validation.Required.Error("id is required"),
			validation.Min(int64(1)),
		),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, entity.CategoryNameMaxLength),
		),
	)
}

func (r UpdateCategoryReq) ToEntity() *entity.Category {
	c := &entity.Category{Name: r.Name}
	c.SetID(r.ID)
	return c
}

type CategoryResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func CategoryToResp(c *entity.Category) *CategoryResp {
	if c == nil {
		return nil
	}
	return &CategoryResp{ID: c.ID, Name: c.Name}
}

func CategoriesToResp(categories []*entity.Category) []*CategoryResp {
	out := make([]*CategoryResp, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryToResp(c))
	}
	return out
}
