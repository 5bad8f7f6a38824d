package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dessertbook/internal/domain"
	"dessertbook/internal/testdb"
)

func seedPair(t *testing.T, db *gorm.DB) (*domain.Dessert, *domain.Ingredient) {
	t.Helper()
	ctx := context.Background()
	d := &domain.Dessert{Name: "Tiramisu", Description: "Coffee-flavored", SpecificTag: "Italian"}
	require.NoError(t, NewDessertRepository(db).Create(ctx, d))
	i := &domain.Ingredient{Name: "Mascarpone", Description: "Soft cheese"}
	require.NoError(t, NewIngredientRepository(db).Create(ctx, i))
	return d, i
}

func TestDessertRepository_CRUD(t *testing.T) {
	db := testdb.New(t)
	repo := NewDessertRepository(db)
	ctx := context.Background()

	d := &domain.Dessert{Name: "Flan", Description: "Custard", SpecificTag: "Spanish"}
	require.NoError(t, repo.Create(ctx, d))
	require.NotZero(t, d.ID)

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, *d, *got)

	d.Name = "Creme caramel"
	n, err := repo.Update(ctx, d)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.Update(ctx, &domain.Dessert{ID: 999, Name: "x", Description: "y"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	n, err = repo.Delete(ctx, d.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = repo.GetByID(ctx, d.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestInstructionRepository_ViewsAndPairs(t *testing.T) {
	db := testdb.New(t)
	d, i := seedPair(t, db)
	repo := NewInstructionRepository(db)
	ctx := context.Background()

	in := &domain.Instruction{DessertID: d.ID, IngredientID: i.ID, QtyOfIngredient: "250g"}
	require.NoError(t, repo.Create(ctx, in))

	view, err := repo.GetView(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tiramisu", view.DessertName)
	assert.Equal(t, "Mascarpone", view.IngredientName)
	assert.Equal(t, "250g", view.QtyOfIngredient)

	forDessert, err := repo.ListViewsForDessert(ctx, d.ID)
	require.NoError(t, err)
	assert.Len(t, forDessert, 1)

	desserts, err := NewDessertRepository(db).ListForIngredient(ctx, i.ID)
	require.NoError(t, err)
	require.Len(t, desserts, 1)
	assert.Equal(t, d.ID, desserts[0].ID)

	pair, err := repo.FindPair(ctx, d.ID, i.ID)
	require.NoError(t, err)
	assert.Equal(t, in.ID, pair.ID)

	n, err := repo.DeletePair(ctx, d.ID, i.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = repo.GetView(ctx, in.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReviewRepository_UpdateKeepsPictureColumns(t *testing.T) {
	db := testdb.New(t)
	d, _ := seedPair(t, db)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	rv := &domain.Review{Number: "5", Content: "Great", Time: time.Now().UTC().Truncate(time.Second), User: "ann", DessertID: d.ID}
	require.NoError(t, repo.Create(ctx, rv))

	n, err := repo.UpdateImage(ctx, rv.ID, ".png")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	rv.Content = "Even better"
	rv.HasPic = false
	rv.PicExtension = nil
	n, err = repo.Update(ctx, rv)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	view, err := repo.GetView(ctx, rv.ID)
	require.NoError(t, err)
	assert.Equal(t, "Even better", view.Content)
	assert.Equal(t, "Tiramisu", view.DessertName)
	assert.True(t, view.HasPic)
	require.NotNil(t, view.PicExtension)
	assert.Equal(t, ".png", *view.PicExtension)
	assert.Equal(t, domain.ImageFileName(rv.ID, ".png"), view.ImageName())

	withPics, err := repo.ListWithPicturesForDessert(ctx, d.ID)
	require.NoError(t, err)
	assert.Len(t, withPics, 1)
}

func TestUserRepository_EmailIsNormalized(t *testing.T) {
	db := testdb.New(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &domain.User{Email: "  Chef@Example.com ", PasswordHash: "hash", Name: "Chef"}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByEmail(ctx, "CHEF@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "chef@example.com", got.Email)
}
