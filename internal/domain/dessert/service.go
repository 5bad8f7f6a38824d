package dessert

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dessertbook/internal/database"
	"dessertbook/internal/domain"
	"dessertbook/internal/repository"
)

// Linker maintains the dessert/ingredient association.
type Linker interface {
	Link(ctx context.Context, dessertID, ingredientID int64) (domain.ServiceResponse, error)
	Unlink(ctx context.Context, dessertID, ingredientID int64) (domain.ServiceResponse, error)
}

// ImagePurger removes the stored photos of a dessert's reviews. It runs inside
// the delete transaction, before the cascade drops the review rows.
type ImagePurger interface {
	PurgeDessertImages(ctx context.Context, tx *gorm.DB, dessertID int64) error
}

type Service struct {
	db     *gorm.DB
	linker Linker
	images ImagePurger
}

// NewService creates the dessert service. images may be nil.
func NewService(db *gorm.DB, linker Linker, images ImagePurger) *Service {
	return &Service{db: db, linker: linker, images: images}
}

func (s *Service) List(ctx context.Context) ([]DessertDTO, error) {
	ds, err := repository.NewDessertRepository(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	return fromEntities(ds), nil
}

// Find returns nil, nil when the dessert does not exist.
func (s *Service) Find(ctx context.Context, id int64) (*DessertDTO, error) {
	d, err := repository.NewDessertRepository(s.db).GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	dto := fromEntity(*d)
	return &dto, nil
}

// ListForIngredient returns the desserts that use the ingredient.
func (s *Service) ListForIngredient(ctx context.Context, ingredientID int64) ([]DessertDTO, error) {
	ds, err := repository.NewDessertRepository(s.db).ListForIngredient(ctx, ingredientID)
	if err != nil {
		return nil, err
	}
	return fromEntities(ds), nil
}

func (s *Service) Add(ctx context.Context, dto DessertDTO) (domain.ServiceResponse, error) {
	return database.RunInTx(ctx, s.db, func(tx *gorm.DB) (domain.ServiceResponse, error) {
		entity := dto.toEntity()
		entity.ID = 0
		if err := repository.NewDessertRepository(tx).Create(ctx, entity); err != nil {
			return database.StoreError(err), nil
		}
		return domain.Created(entity.ID), nil
	})
}

func (s *Service) Update(ctx context.Context, dto DessertDTO) (domain.ServiceResponse, error) {
	return database.RunInTx(ctx, s.db, func(tx *gorm.DB) (domain.ServiceResponse, error) {
		repo := repository.NewDessertRepository(tx)
		rows, err := repo.Update(ctx, dto.toEntity())
		if err != nil {
			return database.StoreError(err), nil
		}
		if rows == 0 {
			return database.ExplainMissedUpdate(ctx, repo.Exists, dto.ID, domain.MsgDessertNotFound)
		}
		return domain.NewResponse(domain.StatusUpdated), nil
	})
}

// Delete removes the dessert; its reviews and recipe lines go with it.
func (s *Service) Delete(ctx context.Context, id int64) (domain.ServiceResponse, error) {
	return database.RunInTx(ctx, s.db, func(tx *gorm.DB) (domain.ServiceResponse, error) {
		repo := repository.NewDessertRepository(tx)
		found, err := repo.Exists(ctx, id)
		if err != nil {
			return database.StoreError(err), nil
		}
		if !found {
			return domain.NewResponse(domain.StatusNotFound, domain.MsgDessertNotFound), nil
		}

		if s.images != nil {
			if err := s.images.PurgeDessertImages(ctx, tx, id); err != nil {
				return domain.NewResponse(domain.StatusError, err.Error()), nil
			}
		}

		if _, err := repo.Delete(ctx, id); err != nil {
			return database.StoreError(err), nil
		}
		return domain.NewResponse(domain.StatusDeleted), nil
	})
}

func (s *Service) LinkIngredient(ctx context.Context, dessertID, ingredientID int64) (domain.ServiceResponse, error) {
	return s.linker.Link(ctx, dessertID, ingredientID)
}

func (s *Service) UnlinkIngredient(ctx context.Context, dessertID, ingredientID int64) (domain.ServiceResponse, error) {
	return s.linker.Unlink(ctx, dessertID, ingredientID)
}
