package review

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"dessertbook/internal/database"
	"dessertbook/internal/domain"
	"dessertbook/internal/repository"
	"dessertbook/internal/storage"
)

// Service manages reviews and owns the lifecycle of their photos.
type Service struct {
	db     *gorm.DB
	images storage.ImageStore
	now    func() time.Time
}

func NewService(db *gorm.DB, images storage.ImageStore) *Service {
	return &Service{db: db, images: images, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]ReviewDTO, error) {
	views, err := repository.NewReviewRepository(s.db).ListViews(ctx)
	if err != nil {
		return nil, err
	}
	return s.fromViews(views), nil
}

// Find returns nil, nil when the review does not exist.
func (s *Service) Find(ctx context.Context, id int64) (*ReviewDTO, error) {
	view, err := repository.NewReviewRepository(s.db).GetView(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	dto := s.fromView(*view)
	return &dto, nil
}

func (s *Service) ListForDessert(ctx context.Context, dessertID int64) ([]ReviewDTO, error) {
	views, err := repository.NewReviewRepository(s.db).ListViewsForDessert(ctx, dessertID)
	if err != nil {
		return nil, err
	}
	return s.fromViews(views), nil
}

// Add stores a review without a photo. A zero Time is stamped with the current time.
func (s *Service) Add(ctx context.Context, dto ReviewDTO) (domain.ServiceResponse, error) {
	return database.RunInTx(ctx, s.db, func(tx *gorm.DB) (domain.ServiceResponse, error) {
		found, err := repository.NewDessertRepository(tx).Exists(ctx, dto.DessertID)
		if err != nil {
			return database.StoreError(err), nil
		}
		if !found {
			return domain.NewResponse(domain.StatusNotFound, domain.MsgDessertNotFound), nil
		}

		entity := dto.toEntity()
		entity.ID = 0
		if entity.Time.IsZero() {
			entity.Time = s.now().UTC()
		}
		if err := repository.NewReviewRepository(tx).Create(ctx, entity); err != nil {
			return database.StoreError(err), nil
		}
		return domain.Created(entity.ID), nil
	})
}

// Update rewrites the text fields and dessert reference. Photo state is left
// to UpdateImage.
func (s *Service) Update(ctx context.Context, dto ReviewDTO) (domain.ServiceResponse, error) {
	return database.RunInTx(ctx, s.db, func(tx *gorm.DB) (domain.ServiceResponse, error) {
		found, err := repository.NewDessertRepository(tx).Exists(ctx, dto.DessertID)
		if err != nil {
			return database.StoreError(err), nil
		}
		if !found {
			return domain.NewResponse(domain.StatusNotFound, domain.MsgDessertNotFound), nil
		}

		repo := repository.NewReviewRepository(tx)
		entity := dto.toEntity()
		if entity.Time.IsZero() {
			entity.Time = s.now().UTC()
		}
		rows, err := repo.Update(ctx, entity)
		if err != nil {
			return database.StoreError(err), nil
		}
		if rows == 0 {
			return database.ExplainMissedUpdate(ctx, repo.Exists, dto.ID, domain.MsgReviewNotFound)
		}
		return domain.NewResponse(domain.StatusUpdated), nil
	})
}

// Delete removes the review row and then its photo. If the photo cannot be
// removed the row is kept.
func (s *Service) Delete(ctx context.Context, id int64) (domain.ServiceResponse, error) {
	return database.RunInTx(ctx, s.db, func(tx *gorm.DB) (domain.ServiceResponse, error) {
		repo := repository.NewReviewRepository(tx)
		rv, err := repo.GetByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewResponse(domain.StatusNotFound, domain.MsgReviewNotFound), nil
		}
		if err != nil {
			return database.StoreError(err), nil
		}

		if _, err := repo.Delete(ctx, id); err != nil {
			return database.StoreError(err), nil
		}
		if name := rv.ImageName(); name != "" {
			if err := s.images.Remove(ctx, name); err != nil {
				return domain.NewResponse(domain.StatusError, err.Error()), nil
			}
		}
		return domain.NewResponse(domain.StatusDeleted), nil
	})
}
