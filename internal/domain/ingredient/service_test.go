package ingredient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dessertbook/internal/domain"
	"dessertbook/internal/domain/instruction"
	"dessertbook/internal/repository"
	"dessertbook/internal/testdb"
)

func newService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := testdb.New(t)
	return NewService(db, instruction.NewService(db)), db
}

func addDessert(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	d := &domain.Dessert{Name: name, Description: name + " description"}
	require.NoError(t, repository.NewDessertRepository(db).Create(context.Background(), d))
	return d.ID
}

func TestService_AddFindUpdate(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	res, err := svc.Add(ctx, IngredientDTO{Name: "Sugar", Description: "Sweet"})
	require.NoError(t, err)
	require.True(t, res.Is(domain.StatusCreated))

	got, err := svc.Find(ctx, res.CreatedID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, IngredientDTO{ID: res.CreatedID, Name: "Sugar", Description: "Sweet"}, *got)

	upd, err := svc.Update(ctx, IngredientDTO{ID: res.CreatedID, Name: "Brown sugar", Description: "Molasses"})
	require.NoError(t, err)
	assert.True(t, upd.Is(domain.StatusUpdated))

	got, err = svc.Find(ctx, res.CreatedID)
	require.NoError(t, err)
	assert.Equal(t, "Brown sugar", got.Name)

	upd, err = svc.Update(ctx, IngredientDTO{ID: 555, Name: "x", Description: "y"})
	require.NoError(t, err)
	assert.True(t, upd.Is(domain.StatusNotFound))
	assert.Equal(t, []string{domain.MsgIngredientNotFound}, upd.Messages)
}

func TestService_DeleteCascadesInstructions(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	res, err := svc.Add(ctx, IngredientDTO{Name: "Butter", Description: "Fat"})
	require.NoError(t, err)
	dessertID := addDessert(t, db, "Shortbread")

	link, err := svc.LinkDessert(ctx, res.CreatedID, dessertID)
	require.NoError(t, err)
	require.True(t, link.Is(domain.StatusCreated))

	del, err := svc.Delete(ctx, res.CreatedID)
	require.NoError(t, err)
	assert.True(t, del.Is(domain.StatusDeleted))

	ingredients, err := svc.ListForDessert(ctx, dessertID)
	require.NoError(t, err)
	assert.Empty(t, ingredients)

	del, err = svc.Delete(ctx, res.CreatedID)
	require.NoError(t, err)
	assert.True(t, del.Is(domain.StatusNotFound))
}

func TestService_LinkUnlinkRoundTrip(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	res, err := svc.Add(ctx, IngredientDTO{Name: "Eggs", Description: "Binding"})
	require.NoError(t, err)
	dessertID := addDessert(t, db, "Meringue")

	before, err := svc.ListForDessert(ctx, dessertID)
	require.NoError(t, err)

	_, err = svc.LinkDessert(ctx, res.CreatedID, dessertID)
	require.NoError(t, err)

	linked, err := svc.ListForDessert(ctx, dessertID)
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, "Eggs", linked[0].Name)

	unlink, err := svc.UnlinkDessert(ctx, res.CreatedID, dessertID)
	require.NoError(t, err)
	assert.True(t, unlink.Is(domain.StatusDeleted))

	after, err := svc.ListForDessert(ctx, dessertID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestService_UnlinkMissingDessert(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	res, err := svc.Add(ctx, IngredientDTO{Name: "Vanilla", Description: "Extract"})
	require.NoError(t, err)

	unlink, err := svc.UnlinkDessert(ctx, res.CreatedID, 321)
	require.NoError(t, err)
	assert.True(t, unlink.Is(domain.StatusNotFound))
	assert.Equal(t, []string{domain.MsgDessertNotFound}, unlink.Messages)
}
