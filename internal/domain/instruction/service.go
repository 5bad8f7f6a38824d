package instruction

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dessertbook/internal/database"
	"dessertbook/internal/domain"
	"dessertbook/internal/repository"
)

// Service manages recipe lines. It is also the single writer of the
// dessert/ingredient association, see Link and Unlink.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List(ctx context.Context) ([]InstructionDTO, error) {
	views, err := repository.NewInstructionRepository(s.db).ListViews(ctx)
	if err != nil {
		return nil, err
	}
	return fromViews(views), nil
}

// Find returns nil, nil when the instruction does not exist.
func (s *Service) Find(ctx context.Context, id int64) (*InstructionDTO, error) {
	view, err := repository.NewInstructionRepository(s.db).GetView(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	dto := fromView(*view)
	return &dto, nil
}

func (s *Service) ListForDessert(ctx context.Context, dessertID int64) ([]InstructionDTO, error) {
	views, err := repository.NewInstructionRepository(s.db).ListViewsForDessert(ctx, dessertID)
	if err != nil {
		return nil, err
	}
	return fromViews(views), nil
}

func (s *Service) ListForIngredient(ctx context.Context, ingredientID int64) ([]InstructionDTO, error) {
	views, err := repository.NewInstructionRepository(s.db).ListViewsForIngredient(ctx, ingredientID)
	if err != nil {
		return nil, err
	}
	return fromViews(views), nil
}

func (s *Service) Add(ctx context.Context, dto InstructionDTO) (domain.ServiceResponse, error) {
	return database.RunInTx(ctx, s.db, func(tx *gorm.DB) (domain.ServiceResponse, error) {
		if res, ok, err := checkReferences(ctx, tx, dto.DessertID, dto.IngredientID); err != nil || !ok {
			return res, nil
		}

		entity := dto.toEntity()
		entity.ID = 0
		if err := repository.NewInstructionRepository(tx).Create(ctx, entity); err != nil {
			return database.StoreError(err), nil
		}
		return domain.Created(entity.ID), nil
	})
}

func (s *Service) Update(ctx context.Context, dto InstructionDTO) (domain.ServiceResponse, error) {
	return database.RunInTx(ctx, s.db, func(tx *gorm.DB) (domain.ServiceResponse, error) {
		if res, ok, err := checkReferences(ctx, tx, dto.DessertID, dto.IngredientID); err != nil || !ok {
			return res, nil
		}

		repo := repository.NewInstructionRepository(tx)
		rows, err := repo.Update(ctx, dto.toEntity())
		if err != nil {
			return database.StoreError(err), nil
		}
		if rows == 0 {
			return database.ExplainMissedUpdate(ctx, repo.Exists, dto.ID, domain.MsgInstructionNotFound)
		}
		return domain.NewResponse(domain.StatusUpdated), nil
	})
}

func (s *Service) Delete(ctx context.Context, id int64) (domain.ServiceResponse, error) {
	return database.RunInTx(ctx, s.db, func(tx *gorm.DB) (domain.ServiceResponse, error) {
		repo := repository.NewInstructionRepository(tx)
		found, err := repo.Exists(ctx, id)
		if err != nil {
			return database.StoreError(err), nil
		}
		if !found {
			return domain.NewResponse(domain.StatusNotFound, domain.MsgInstructionNotFound), nil
		}
		if _, err := repo.Delete(ctx, id); err != nil {
			return database.StoreError(err), nil
		}
		return domain.NewResponse(domain.StatusDeleted), nil
	})
}

// Link associates a dessert with an ingredient through a bare recipe line.
// Linking an already linked pair is a no-op that reports the existing line.
func (s *Service) Link(ctx context.Context, dessertID, ingredientID int64) (domain.ServiceResponse, error) {
	return database.RunInTx(ctx, s.db, func(tx *gorm.DB) (domain.ServiceResponse, error) {
		if res, ok, err := checkReferences(ctx, tx, dessertID, ingredientID); err != nil || !ok {
			return res, nil
		}

		repo := repository.NewInstructionRepository(tx)
		existing, err := repo.FindPair(ctx, dessertID, ingredientID)
		if err == nil {
			return domain.Created(existing.ID), nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return database.StoreError(err), nil
		}

		line := &domain.Instruction{DessertID: dessertID, IngredientID: ingredientID}
		if err := repo.Create(ctx, line); err != nil {
			return database.StoreError(err), nil
		}
		return domain.Created(line.ID), nil
	})
}

// Unlink removes every recipe line joining the pair.
func (s *Service) Unlink(ctx context.Context, dessertID, ingredientID int64) (domain.ServiceResponse, error) {
	return database.RunInTx(ctx, s.db, func(tx *gorm.DB) (domain.ServiceResponse, error) {
		if res, ok, err := checkReferences(ctx, tx, dessertID, ingredientID); err != nil || !ok {
			return res, nil
		}
		if _, err := repository.NewInstructionRepository(tx).DeletePair(ctx, dessertID, ingredientID); err != nil {
			return database.StoreError(err), nil
		}
		return domain.NewResponse(domain.StatusDeleted), nil
	})
}

// checkReferences reports NotFound with one message per missing row. ok is
// false whenever res should be returned as is.
func checkReferences(ctx context.Context, tx *gorm.DB, dessertID, ingredientID int64) (res domain.ServiceResponse, ok bool, err error) {
	dessertFound, err := repository.NewDessertRepository(tx).Exists(ctx, dessertID)
	if err != nil {
		return database.StoreError(err), false, err
	}
	ingredientFound, err := repository.NewIngredientRepository(tx).Exists(ctx, ingredientID)
	if err != nil {
		return database.StoreError(err), false, err
	}

	res = domain.NewResponse(domain.StatusNotFound)
	if !dessertFound {
		res.AddMessage(domain.MsgDessertNotFound)
	}
	if !ingredientFound {
		res.AddMessage(domain.MsgIngredientNotFound)
	}
	return res, dessertFound && ingredientFound, nil
}
