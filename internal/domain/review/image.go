package review

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gorm.io/gorm"

	"dessertbook/internal/database"
	"dessertbook/internal/domain"
	"dessertbook/internal/repository"
)

const MaxImageSize = 5 * 1024 * 1024 // 5 MB

// UpdateImage replaces the photo of a review. The upload is validated before
// the current photo is touched, so a rejected upload leaves the review as it was.
func (s *Service) UpdateImage(ctx context.Context, id int64, upload ImageUpload) (domain.ServiceResponse, error) {
	return database.RunInTx(ctx, s.db, func(tx *gorm.DB) (domain.ServiceResponse, error) {
		repo := repository.NewReviewRepository(tx)
		rv, err := repo.GetByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewResponse(domain.StatusNotFound, domain.MsgReviewNotFound), nil
		}
		if err != nil {
			return database.StoreError(err), nil
		}

		if upload.Body == nil || upload.Size <= 0 {
			return domain.NewResponse(domain.StatusError, domain.MsgNoFileContent), nil
		}
		if upload.Size > MaxImageSize {
			return domain.NewResponse(domain.StatusError, fmt.Sprintf("File exceeds the %d byte limit", MaxImageSize)), nil
		}
		ext, ok := domain.NormalizeImageExtension(upload.Filename)
		if !ok {
			return domain.NewResponse(domain.StatusError, fmt.Sprintf("%s is not a valid file extension", ext)), nil
		}

		if old := rv.ImageName(); old != "" {
			if err := s.images.Remove(ctx, old); err != nil {
				return domain.NewResponse(domain.StatusError, err.Error()), nil
			}
		}

		name := domain.ImageFileName(id, ext)
		body := io.LimitReader(upload.Body, MaxImageSize)
		if err := s.images.Save(ctx, name, body, domain.ImageContentType(ext)); err != nil {
			return domain.NewResponse(domain.StatusError, err.Error()), nil
		}

		rows, err := repo.UpdateImage(ctx, id, ext)
		if err != nil || rows == 0 {
			_ = s.images.Remove(ctx, name)
			if err != nil {
				return database.StoreError(err), nil
			}
			return database.ExplainMissedUpdate(ctx, repo.Exists, id, domain.MsgReviewNotFound)
		}
		return domain.NewResponse(domain.StatusUpdated), nil
	})
}

// PurgeDessertImages removes the photos of every review of the dessert. tx is the
// caller's open transaction.
func (s *Service) PurgeDessertImages(ctx context.Context, tx *gorm.DB, dessertID int64) error {
	reviews, err := repository.NewReviewRepository(tx).ListWithPicturesForDessert(ctx, dessertID)
	if err != nil {
		return err
	}
	for i := range reviews {
		name := reviews[i].ImageName()
		if name == "" {
			continue
		}
		if err := s.images.Remove(ctx, name); err != nil {
			return fmt.Errorf("remove review image %s: %w", name, err)
		}
	}
	return nil
}
