package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"bookshop-catalog/internal/domains/category"
	"bookshop-catalog/internal/domains/category/service"
	"bookshop-catalog/internal/entity"
	"bookshop-catalog/internal/shared/repository"
	"bookshop-catalog/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockCategoryRepository struct {
	mock.Mock
	repository.Repository[*entity.Category]
}

func (m *mockCategoryRepository) Remove(ctx context.Context, c *entity.Category) error {
	return m.Called(ctx, c).Error(0)
}

type mockBookService struct {
	mock.Mock
}

func (m *mockBookService) GetByCategoryID(ctx context.Context, categoryID int64) ([]*entity.Book, error) {
	args := m.Called(ctx, categoryID)
	books, _ := args.Get(0).([]*entity.Book)
	return books, args.Error(1)
}

func (m *mockBookService) GetAll(context.Context) ([]*entity.Book, error) { panic("unexpected call") }
func (m *mockBookService) GetByID(context.Context, int64) (*entity.Book, error) {
	panic("unexpected call")
}
func (m *mockBookService) Add(context.Context, *entity.Book) (*entity.Book, error) {
	panic("unexpected call")
}
func (m *mockBookService) Update(context.Context, *entity.Book) (*entity.Book, error) {
	panic("unexpected call")
}
func (m *mockBookService) Remove(context.Context, *entity.Book) (bool, error) {
	panic("unexpected call")
}
func (m *mockBookService) SearchByName(context.Context, string) ([]*entity.Book, error) {
	panic("unexpected call")
}
func (m *mockBookService) SearchAcrossFields(context.Context, string) ([]*entity.Book, error) {
	panic("unexpected call")
}
func (m *mockBookService) Close() error { return nil }

func TestCategoryService_RemoveDoesNotWriteWhenBooksExist(t *testing.T) {
	repo := new(mockCategoryRepository)
	books := new(mockBookService)
	svc := service.NewCategoryService(repo, books)

	c := &entity.Category{Name: "Fantasy"}
	c.SetID(3)
	books.On("GetByCategoryID", mock.Anything, int64(3)).Return([]*entity.Book{{Name: "The Hobbit"}}, nil)

	ok, err := svc.Remove(context.Background(), c)

	assert.False(t, ok)
	assert.ErrorIs(t, err, category.ErrCategoryHasBooks)
	repo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	books.AssertExpectations(t)
}

func TestCategoryService_RemoveTranslatesStoreErrors(t *testing.T) {
	storeDown := errors.New("connection reset")

	tests := []struct {
		name     string
		storeErr error
		want     error
	}{
		{"book added concurrently", fmt.Errorf("%w: fk", database.ErrForeignKeyViolation), category.ErrCategoryHasBooks},
		{"already deleted", fmt.Errorf("%w: 0 rows", database.ErrNoRowsAffected), category.ErrCategoryNotFound},
		{"store failure propagates", storeDown, storeDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockCategoryRepository)
			books := new(mockBookService)
			svc := service.NewCategoryService(repo, books)

			c := &entity.Category{Name: "Fantasy"}
			c.SetID(3)
			books.On("GetByCategoryID", mock.Anything, int64(3)).Return([]*entity.Book{}, nil)
			repo.On("Remove", mock.Anything, c).Return(tt.storeErr)

			ok, err := svc.Remove(context.Background(), c)

			assert.False(t, ok)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCategoryService_RemoveBookLookupFails(t *testing.T) {
	repo := new(mockCategoryRepository)
	books := new(mockBookService)
	svc := service.NewCategoryService(repo, books)

	c := &entity.Category{Name: "Fantasy"}
	c.SetID(3)
	books.On("GetByCategoryID", mock.Anything, int64(3)).Return(nil, errors.New("timeout"))

	ok, err := svc.Remove(context.Background(), c)

	assert.False(t, ok)
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}
