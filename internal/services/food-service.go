package services

import (
	"context"

	"github.com/franciscosanchezn/best-before-api/internal/models"
	"github.com/franciscosanchezn/best-before-api/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// FoodService provides methods to interact with the foods table
type FoodService interface {
	// ListFoods retrieves foods ordered by best-before date, latest first.
	// A negative limit returns every food.
	ListFoods(ctx context.Context, limit int) ([]models.Food, error)
	// CreateFood stores a new food and returns it with its assigned ID
	CreateFood(ctx context.Context, food models.NewFood) (models.Food, error)
	// DeleteFood deletes a food by its ID; unknown IDs are not an error
	DeleteFood(ctx context.Context, id int64) error
	// WithinTx runs fn with a transaction executor, committing when fn returns nil
	WithinTx(ctx context.Context, fn func(exec repository.Executor) error) error
}

// foodService is the implementation of the FoodService interface
type foodService struct {
	db  *sqlx.DB
	log logrus.FieldLogger
}

// NewFoodService creates a new instance of FoodService backed by the shared pool
func NewFoodService(db *sqlx.DB, log logrus.FieldLogger) FoodService {
	return &foodService{db: db, log: log}
}

func (s *foodService) ListFoods(ctx context.Context, limit int) ([]models.Food, error) {
	return repository.ListFoods(ctx, s.db, limit)
}

func (s *foodService) CreateFood(ctx context.Context, food models.NewFood) (models.Food, error) {
	created, err := repository.CreateFood(ctx, s.db, food)
	if err != nil {
		return models.Food{}, err
	}
	s.log.WithFields(logrus.Fields{
		"food_id":          created.ID,
		"best_before_date": created.BestBeforeDate.String(),
	}).Debug("Food created")
	return created, nil
}

func (s *foodService) DeleteFood(ctx context.Context, id int64) error {
	if err := repository.DeleteFood(ctx, s.db, id); err != nil {
		return err
	}
	s.log.WithField("food_id", id).Debug("Food deleted")
	return nil
}

func (s *foodService) WithinTx(ctx context.Context, fn func(exec repository.Executor) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return &repository.StorageError{Op: "begin transaction", Err: err}
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.log.WithError(rbErr).Warn("Failed to roll back transaction")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return &repository.StorageError{Op: "commit transaction", Err: err}
	}
	return nil
}
