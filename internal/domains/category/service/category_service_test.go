package service_test

import (
	"context"
	"testing"

	bookRepo "bookshop-catalog/internal/domains/book/repository"
	bookService "bookshop-catalog/internal/domains/book/service"
	"bookshop-catalog/internal/domains/category"
	"bookshop-catalog/internal/domains/category/repository"
	"bookshop-catalog/internal/domains/category/service"
	"bookshop-catalog/internal/entity"
	"bookshop-catalog/internal/testutil"
	"bookshop-catalog/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (category.CategoryService, *database.Store) {
	t.Helper()

	store := testutil.NewStore(t)
	session := testutil.NewSession(t, store)
	books := bookService.NewBookService(bookRepo.NewBookRepository(session))
	return service.NewCategoryService(repository.NewCategoryRepository(session), books), store
}

func TestCategoryService_Add(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	created, err := svc.Add(ctx, &entity.Category{Name: "Fantasy"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	dup, err := svc.Add(ctx, &entity.Category{Name: "Fantasy"})
	assert.Nil(t, dup)
	assert.ErrorIs(t, err, category.ErrDuplicateName)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCategoryService_Update(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()
	fantasy := testutil.SeedCategory(t, store, "Fantasy")
	testutil.SeedCategory(t, store, "History")

	same, err := svc.Update(ctx, &entity.Category{BaseEntity: fantasy.BaseEntity, Name: "Fantasy"})
	require.NoError(t, err, "unchanged own name is allowed")
	assert.Equal(t, "Fantasy", same.Name)

	clash, err := svc.Update(ctx, &entity.Category{BaseEntity: fantasy.BaseEntity, Name: "History"})
	assert.Nil(t, clash)
	assert.ErrorIs(t, err, category.ErrDuplicateName)

	renamed, err := svc.Update(ctx, &entity.Category{BaseEntity: fantasy.BaseEntity, Name: "High Fantasy"})
	require.NoError(t, err)
	assert.Equal(t, "High Fantasy", renamed.Name)

	ghost := &entity.Category{Name: "Ghost"}
	ghost.SetID(404)
	_, err = svc.Update(ctx, ghost)
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestCategoryService_RemoveGuardsBooks(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()
	fantasy := testutil.SeedCategory(t, store, "Fantasy")
	hobbit := testutil.SeedBook(t, store, "The Hobbit", "J.R.R. Tolkien", "A hobbit's journey", fantasy.ID)

	ok, err := svc.Remove(ctx, fantasy)
	assert.False(t, ok)
	assert.ErrorIs(t, err, category.ErrCategoryHasBooks)

	still, err := svc.GetByID(ctx, fantasy.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fantasy", still.Name)

	var name string
	var categoryID int64
	err = store.DB().QueryRowContext(ctx,
		`SELECT name, category_id FROM books WHERE id = ?`, hobbit.ID,
	).Scan(&name, &categoryID)
	require.NoError(t, err, "book must survive a blocked category delete")
	assert.Equal(t, "The Hobbit", name)
	assert.Equal(t, fantasy.ID, categoryID)
}

func TestCategoryService_RemoveEmptyCategory(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()
	poetry := testutil.SeedCategory(t, store, "Poetry")

	ok, err := svc.Remove(ctx, poetry)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.GetByID(ctx, poetry.ID)
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)

	ok, err = svc.Remove(ctx, poetry)
	assert.False(t, ok)
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestCategoryService_SearchByName(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()
	testutil.SeedCategory(t, store, "Fantasy")
	testutil.SeedCategory(t, store, "Science Fiction")
	testutil.SeedCategory(t, store, "Dark Fantasy")

	found, err := svc.SearchByName(ctx, "Fantasy")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = svc.SearchByName(ctx, "Cooking")
	require.NoError(t, err)
	assert.Empty(t, found)
}
