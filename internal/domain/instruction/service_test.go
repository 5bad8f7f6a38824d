package instruction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dessertbook/internal/domain"
	"dessertbook/internal/repository"
	"dessertbook/internal/testdb"
)

func setup(t *testing.T) (*Service, *gorm.DB, int64, int64) {
	t.Helper()
	db := testdb.New(t)
	ctx := context.Background()

	d := &domain.Dessert{Name: "Tiramisu", Description: "Coffee-flavored", SpecificTag: "Italian"}
	require.NoError(t, repository.NewDessertRepository(db).Create(ctx, d))
	i := &domain.Ingredient{Name: "Espresso", Description: "Strong coffee"}
	require.NoError(t, repository.NewIngredientRepository(db).Create(ctx, i))

	return NewService(db), db, d.ID, i.ID
}

func countInstructions(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&domain.Instruction{}).Count(&n).Error)
	return n
}

func TestService_AddAndFind(t *testing.T) {
	svc, _, dessertID, ingredientID := setup(t)
	ctx := context.Background()

	res, err := svc.Add(ctx, InstructionDTO{
		DessertID:              dessertID,
		IngredientID:           ingredientID,
		QtyOfIngredient:        "2 cups",
		ChangeIngredientOption: "decaf works too",
	})
	require.NoError(t, err)
	require.True(t, res.Is(domain.StatusCreated))
	require.NotZero(t, res.CreatedID)

	got, err := svc.Find(ctx, res.CreatedID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2 cups", got.QtyOfIngredient)
	assert.Equal(t, "decaf works too", got.ChangeIngredientOption)
	assert.Equal(t, "Tiramisu", got.DessertName)
	assert.Equal(t, "Espresso", got.IngredientName)
}

func TestService_FindMissingReturnsNil(t *testing.T) {
	svc, _, _, _ := setup(t)

	got, err := svc.Find(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestService_AddWithMissingReferences(t *testing.T) {
	svc, db, dessertID, _ := setup(t)
	ctx := context.Background()

	res, err := svc.Add(ctx, InstructionDTO{DessertID: dessertID, IngredientID: 999, QtyOfIngredient: "2 cups"})
	require.NoError(t, err)
	assert.True(t, res.Is(domain.StatusNotFound))
	assert.Equal(t, []string{domain.MsgIngredientNotFound}, res.Messages)

	res, err = svc.Add(ctx, InstructionDTO{DessertID: 998, IngredientID: 999})
	require.NoError(t, err)
	assert.Equal(t, []string{domain.MsgDessertNotFound, domain.MsgIngredientNotFound}, res.Messages)

	assert.Zero(t, countInstructions(t, db))
}

func TestService_Update(t *testing.T) {
	svc, _, dessertID, ingredientID := setup(t)
	ctx := context.Background()

	created, err := svc.Add(ctx, InstructionDTO{DessertID: dessertID, IngredientID: ingredientID, QtyOfIngredient: "1 cup"})
	require.NoError(t, err)

	res, err := svc.Update(ctx, InstructionDTO{ID: created.CreatedID, DessertID: dessertID, IngredientID: ingredientID, QtyOfIngredient: "3 cups"})
	require.NoError(t, err)
	assert.True(t, res.Is(domain.StatusUpdated))

	got, err := svc.Find(ctx, created.CreatedID)
	require.NoError(t, err)
	assert.Equal(t, "3 cups", got.QtyOfIngredient)

	res, err = svc.Update(ctx, InstructionDTO{ID: created.CreatedID, DessertID: dessertID, IngredientID: 999})
	require.NoError(t, err)
	assert.True(t, res.Is(domain.StatusNotFound))

	got, err = svc.Find(ctx, created.CreatedID)
	require.NoError(t, err)
	assert.Equal(t, ingredientID, got.IngredientID)
}

func TestService_UpdateMissingRow(t *testing.T) {
	svc, _, dessertID, ingredientID := setup(t)

	res, err := svc.Update(context.Background(), InstructionDTO{ID: 77, DessertID: dessertID, IngredientID: ingredientID})
	require.NoError(t, err)
	assert.True(t, res.Is(domain.StatusNotFound))
	assert.Equal(t, []string{domain.MsgInstructionNotFound}, res.Messages)
}

func TestService_Delete(t *testing.T) {
	svc, db, dessertID, ingredientID := setup(t)
	ctx := context.Background()

	res, err := svc.Delete(ctx, 1234)
	require.NoError(t, err)
	assert.True(t, res.Is(domain.StatusNotFound))

	created, err := svc.Add(ctx, InstructionDTO{DessertID: dessertID, IngredientID: ingredientID})
	require.NoError(t, err)

	res, err = svc.Delete(ctx, created.CreatedID)
	require.NoError(t, err)
	assert.True(t, res.Is(domain.StatusDeleted))
	assert.Zero(t, countInstructions(t, db))
}

func TestService_LinkUnlinkRoundTrip(t *testing.T) {
	svc, db, dessertID, ingredientID := setup(t)
	ctx := context.Background()

	first, err := svc.Link(ctx, dessertID, ingredientID)
	require.NoError(t, err)
	require.True(t, first.Is(domain.StatusCreated))

	again, err := svc.Link(ctx, dessertID, ingredientID)
	require.NoError(t, err)
	assert.True(t, again.Is(domain.StatusCreated))
	assert.Equal(t, first.CreatedID, again.CreatedID)
	assert.EqualValues(t, 1, countInstructions(t, db))

	lines, err := svc.ListForDessert(ctx, dessertID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Empty(t, lines[0].QtyOfIngredient)

	res, err := svc.Unlink(ctx, dessertID, ingredientID)
	require.NoError(t, err)
	assert.True(t, res.Is(domain.StatusDeleted))
	assert.Zero(t, countInstructions(t, db))
}

func TestService_LinkMissingIngredient(t *testing.T) {
	svc, db, dessertID, _ := setup(t)

	res, err := svc.Link(context.Background(), dessertID, 42)
	require.NoError(t, err)
	assert.True(t, res.Is(domain.StatusNotFound))
	assert.Equal(t, []string{domain.MsgIngredientNotFound}, res.Messages)
	assert.Zero(t, countInstructions(t, db))
}

func TestService_CascadeOnDessertDelete(t *testing.T) {
	svc, db, dessertID, ingredientID := setup(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, InstructionDTO{DessertID: dessertID, IngredientID: ingredientID})
	require.NoError(t, err)

	_, err = repository.NewDessertRepository(db).Delete(ctx, dessertID)
	require.NoError(t, err)

	lines, err := svc.ListForDessert(ctx, dessertID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}
