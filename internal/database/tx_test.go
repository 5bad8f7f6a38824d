package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dessertbook/internal/database"
	"dessertbook/internal/domain"
	"dessertbook/internal/testdb"
)

func countDesserts(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&domain.Dessert{}).Count(&n).Error)
	return n
}

func TestRunInTx_CommitsOnSuccess(t *testing.T) {
	db := testdb.New(t)

	res, err := database.RunInTx(context.Background(), db, func(tx *gorm.DB) (domain.ServiceResponse, error) {
		d := &domain.Dessert{Name: "Pavlova", Description: "Meringue"}
		if err := tx.Create(d).Error; err != nil {
			return database.StoreError(err), nil
		}
		return domain.Created(d.ID), nil
	})

	require.NoError(t, err)
	assert.True(t, res.Is(domain.StatusCreated))
	assert.EqualValues(t, 1, countDesserts(t, db))
}

func TestRunInTx_RollsBackOnNotFound(t *testing.T) {
	db := testdb.New(t)

	res, err := database.RunInTx(context.Background(), db, func(tx *gorm.DB) (domain.ServiceResponse, error) {
		require.NoError(t, tx.Create(&domain.Dessert{Name: "Pavlova", Description: "Meringue"}).Error)
		return domain.NewResponse(domain.StatusNotFound, domain.MsgIngredientNotFound), nil
	})

	require.NoError(t, err)
	assert.True(t, res.Is(domain.StatusNotFound))
	assert.Zero(t, countDesserts(t, db))
}

func TestRunInTx_PropagatesConflict(t *testing.T) {
	db := testdb.New(t)

	_, err := database.RunInTx(context.Background(), db, func(tx *gorm.DB) (domain.ServiceResponse, error) {
		return domain.ServiceResponse{}, domain.ErrConcurrencyConflict
	})

	assert.True(t, errors.Is(err, domain.ErrConcurrencyConflict))
}
