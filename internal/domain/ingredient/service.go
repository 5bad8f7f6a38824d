package ingredient

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

type Service struct {
	db     *gorm.DB
	linker Linker
}

func NewService(db *gorm.DB, linker Linker) *Service {
	return &Service{db: db, linker: linker}
}

func (s *Service) List(ctx context.Context) ([]IngredientDTO, error) {
	is, err := repository.NewIngredientRepository(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	return fromEntities(is), nil
}

// Find returns nil, nil when the ingredient does not exist.
func (s *Service) Find(ctx context.Context, id int64) (*IngredientDTO, error) {
	i, err := repository.NewIngredientRepository(s.db).GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &IngredientDTO{ID: i.ID, Name: i.Name, Description: i.Description}, nil
}

func (s *Service) ListForDessert(ctx context.Context, dessertID int64) ([]IngredientDTO, error) {
	is, err := repository.NewIngredientRepository(s.db).ListForDessert(ctx, dessertID)
	if err != nil {
		return nil, err
	}
	return fromEntities(is), nil
}

func (s *Service) Add(ctx context.Context, dto IngredientDTO) (domain.ServiceResponse, error) {
	return database.RunInTx(ctx, s.db, func(tx *gorm.DB) (domain.ServiceResponse, error) {
		entity := dto.toEntity()
		entity.ID = 0
		if err := repository.NewIngredientRepository(tx).Create(ctx, entity); err != nil {
			return database.StoreError(err), nil
		}
		return domain.Created(entity.ID), nil
	})
}

func (s *Service) Update(ctx context.Context, dto IngredientDTO) (domain.ServiceResponse, error) {
	return database.RunInTx(ctx, s.db, func(tx *gorm.DB) (domain.ServiceResponse, error) {
		repo := repository.NewIngredientRepository(tx)
		rows, err := repo.Update(ctx, dto.toEntity())
		if err != nil {
			return database.StoreError(err), nil
		}
		if rows == 0 {
			return database.ExplainMissedUpdate(ctx, repo.Exists, dto.ID, domain.MsgIngredientNotFound)
		}
		return domain.NewResponse(domain.StatusUpdated), nil
	})
}

// Delete removes the ingredient and every recipe line using it.
func (s *Service) Delete(ctx context.Context, id int64) (domain.ServiceResponse, error) {
	return database.RunInTx(ctx, s.db, func(tx *gorm.DB) (domain.ServiceResponse, error) {
		repo := repository.NewIngredientRepository(tx)
		found, err := repo.Exists(ctx, id)
		if err != nil {
			return database.StoreError(err), nil
		}
		if !found {
			return domain.NewResponse(domain.StatusNotFound, domain.MsgIngredientNotFound), nil
		}
		if _, err := repo.Delete(ctx, id); err != nil {
			return database.StoreError(err), nil
		}
		return domain.NewResponse(domain.StatusDeleted), nil
	})
}

func (s *Service) LinkDessert(ctx context.Context, ingredientID, dessertID int64) (domain.ServiceResponse, error) {
	return s.linker.Link(ctx, dessertID, ingredientID)
}

func (s *Service) UnlinkDessert(ctx context.Context, ingredientID, dessertID int64) (domain.ServiceResponse, error) {
	return s.linker.Unlink(ctx, dessertID, ingredientID)
}
