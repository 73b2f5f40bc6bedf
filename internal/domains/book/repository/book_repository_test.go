package repository_test

import (
	"context"
	"testing"
	"time"

	"bookshop-catalog/internal/domains/book"
	"bookshop-catalog/internal/domains/book/repository"
	"bookshop-catalog/internal/entity"
	"bookshop-catalog/internal/testutil"
	"bookshop-catalog/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (book.BookRepository, *database.Store) {
	t.Helper()

	store := testutil.NewStore(t)
	return repository.NewBookRepository(testutil.NewSession(t, store)), store
}

func names(books []*entity.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Name)
	}
	return out
}

func TestBookRepository_RoundTrip(t *testing.T) {
	repo, store := setup(t)
	ctx := context.Background()
	fantasy := testutil.SeedCategory(t, store, "Fantasy")

	published := time.Date(1937, time.September, 21, 0, 0, 0, 0, time.UTC)
	b := &entity.Book{
		Name:        "The Hobbit",
		Author:      "J.R.R. Tolkien",
		Description: "There and back again",
		PublishDate: published,
		CategoryID:  fantasy.ID,
	}
	require.NoError(t, repo.Add(ctx, b))
	require.NotZero(t, b.ID)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, b.Name, got.Name)
	assert.Equal(t, b.Author, got.Author)
	assert.Equal(t, b.Description, got.Description)
	assert.True(t, published.Equal(got.PublishDate), "publish date %s", got.PublishDate)
	assert.Equal(t, fantasy.ID, got.CategoryID)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Fantasy", got.Category.Name)
}

func TestBookRepository_GetByIDAbsent(t *testing.T) {
	repo, _ := setup(t)

	got, err := repo.GetByIDWithCategory(context.Background(), 12345)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBookRepository_GetAllOrderedByName(t *testing.T) {
	repo, store := setup(t)
	c := testutil.SeedCategory(t, store, "Misc")
	for _, name := range []string{"Zed", "Alpha", "Mid"} {
		testutil.SeedBook(t, store, name, "Someone", "Something", c.ID)
	}

	books, err := repo.GetAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Alpha", "Mid", "Zed"}, names(books))
	for _, b := range books {
		require.NotNil(t, b.Category)
		assert.Equal(t, "Misc", b.Category.Name)
	}
}

func TestBookRepository_GetByCategoryID(t *testing.T) {
	repo, store := setup(t)
	ctx := context.Background()
	fantasy := testutil.SeedCategory(t, store, "Fantasy")
	history := testutil.SeedCategory(t, store, "History")
	empty := testutil.SeedCategory(t, store, "Poetry")
	testutil.SeedBook(t, store, "The Hobbit", "J.R.R. Tolkien", "A hobbit's journey", fantasy.ID)
	testutil.SeedBook(t, store, "Mistborn", "Brandon Sanderson", "Allomancy", fantasy.ID)
	testutil.SeedBook(t, store, "SPQR", "Mary Beard", "Ancient Rome", history.ID)

	books, err := repo.GetByCategoryID(ctx, fantasy.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"The Hobbit", "Mistborn"}, names(books))

	books, err = repo.GetByCategoryID(ctx, empty.ID)
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestBookRepository_SearchAcrossFields(t *testing.T) {
	repo, store := setup(t)
	ctx := context.Background()
	fantasy := testutil.SeedCategory(t, store, "Fantasy")
	history := testutil.SeedCategory(t, store, "History")
	testutil.SeedBook(t, store, "The Hobbit", "J.R.R. Tolkien", "A hobbit's journey", fantasy.ID)
	testutil.SeedBook(t, store, "The Silmarillion", "J.R.R. Tolkien", "Elder days", fantasy.ID)
	testutil.SeedBook(t, store, "SPQR", "Mary Beard", "Ancient Rome", history.ID)

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"author", "Tolkien", []string{"The Hobbit", "The Silmarillion"}},
		{"category name", "Hist", []string{"SPQR"}},
		{"description", "Rome", []string{"SPQR"}},
		{"book name", "Silm", []string{"The Silmarillion"}},
		{"no match", "Dostoevsky", []string{}},
		{"case-sensitive", "tolkien", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books, err := repo.SearchAcrossFields(ctx, tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(books))
			for _, b := range books {
				assert.NotNil(t, b.Category)
			}
		})
	}
}

func TestBookRepository_UpdateMovesCategory(t *testing.T) {
	repo, store := setup(t)
	ctx := context.Background()
	fantasy := testutil.SeedCategory(t, store, "Fantasy")
	classics := testutil.SeedCategory(t, store, "Classics")
	b := testutil.SeedBook(t, store, "The Hobbit", "J.R.R. Tolkien", "A hobbit's journey", fantasy.ID)

	b.CategoryID = classics.ID
	b.Description = "Children's classic"
	require.NoError(t, repo.Update(ctx, b))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Classics", got.Category.Name)
	assert.Equal(t, "Children's classic", got.Description)
}

func TestBookRepository_UnknownCategoryFailsAtCommit(t *testing.T) {
	repo, _ := setup(t)

	err := repo.Add(context.Background(), &entity.Book{
		Name:        "Orphan",
		Author:      "Nobody",
		Description: "No category",
		PublishDate: time.Now(),
		CategoryID:  999,
	})
	assert.True(t, database.IsForeignKeyViolation(err), "got %v", err)
}
