package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dessertbook/internal/domain"
)

// RunInTx runs fn as one unit of work. The transaction commits only when fn
// reports a successful status; NotFound and Error responses roll back.
// A failed commit is reported as an Error response.
func RunInTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) (domain.ServiceResponse, error)) (domain.ServiceResponse, error) {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return domain.ServiceResponse{}, fmt.Errorf("begin transaction: %w", tx.Error)
	}

	done := false
	defer func() {
		if !done {
			tx.Rollback()
		}
	}()

	res, err := fn(tx)
	if err != nil || !res.Succeeded() {
		return res, err
	}

	done = true
	if err := tx.Commit().Error; err != nil {
		return domain.NewResponse(domain.StatusError, err.Error()), nil
	}
	return res, nil
}

// StoreError converts a failed write into a service response. Foreign key
// violations mean a referenced row disappeared and map to NotFound.
func StoreError(err error) domain.ServiceResponse {
	if IsForeignKeyViolation(err) {
		return domain.NewResponse(domain.StatusNotFound, err.Error())
	}
	return domain.NewResponse(domain.StatusError, err.Error())
}

// ExplainMissedUpdate is called when an update matched no row. A vanished row
// is NotFound; anything else is a conflict the operation cannot resolve.
func ExplainMissedUpdate(ctx context.Context, exists func(context.Context, int64) (bool, error), id int64, notFoundMsg string) (domain.ServiceResponse, error) {
	found, err := exists(ctx, id)
	if err != nil {
		return StoreError(err), nil
	}
	if !found {
		return domain.NewResponse(domain.StatusNotFound, notFoundMsg), nil
	}
	return domain.ServiceResponse{}, domain.ErrConcurrencyConflict
}
