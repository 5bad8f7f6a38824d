package database

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dessertbook/internal/domain"
)

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "dessert.db?_pragma=foreign_keys(1)", withForeignKeys("dessert.db"))
	assert.Equal(t, "file:x?mode=memory&_pragma=foreign_keys(1)", withForeignKeys("file:x?mode=memory"))
	assert.Equal(t, "x.db?_pragma=foreign_keys(0)", withForeignKeys("x.db?_pragma=foreign_keys(0)"))
}

func TestConnectAndMigrate_SQLiteCascades(t *testing.T) {
	db, err := Connect("file:database_cascade_test?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	d := domain.Dessert{Name: "Flan", Description: "Custard"}
	require.NoError(t, db.Create(&d).Error)
	ing := domain.Ingredient{Name: "Egg", Description: "Chicken egg"}
	require.NoError(t, db.Create(&ing).Error)
	require.NoError(t, db.Create(&domain.Instruction{DessertID: d.ID, IngredientID: ing.ID, QtyOfIngredient: "4"}).Error)

	require.NoError(t, db.Delete(&domain.Dessert{}, d.ID).Error)

	var count int64
	require.NoError(t, db.Model(&domain.Instruction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestConnect_SQLiteRejectsDanglingForeignKey(t *testing.T) {
	db, err := Connect("file:database_fk_test?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	err = db.Create(&domain.Instruction{DessertID: 404, IngredientID: 405}).Error
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsForeignKeyViolation(nil))
}
