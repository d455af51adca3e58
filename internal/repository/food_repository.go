package repository

import (
	"context"

	"github.com/franciscosanchezn/best-before-api/internal/models"
)

// NoLimit disables the LIMIT clause in ListFoods
const NoLimit = -1

const (
	listFoodsQuery        = `SELECT id, name, best_before_date FROM foods ORDER BY best_before_date DESC`
	listFoodsLimitedQuery = `SELECT id, name, best_before_date FROM foods ORDER BY best_before_date DESC LIMIT ?`
	createFoodQuery       = `INSERT INTO foods (name, best_before_date) VALUES (?, ?) RETURNING id, name, best_before_date`
	deleteFoodQuery       = `DELETE FROM foods WHERE id = ?`
)

// ListFoods returns foods with the latest best-before date first. A negative limit
// (NoLimit) returns every row.
func ListFoods(ctx context.Context, exec Executor, limit int) ([]models.Food, error) {
	foods := make([]models.Food, 0)

	var err error
	if limit < 0 {
		err = sqlxSelect(ctx, exec, &foods, listFoodsQuery)
	} else {
		err = sqlxSelect(ctx, exec, &foods, listFoodsLimitedQuery, limit)
	}
	if err != nil {
		return nil, storageError("list foods", err)
	}
	return foods, nil
}

// CreateFood inserts a row and reads back the stored values in the same statement.
// Field validation is left to the caller and to the table's constraints.
func CreateFood(ctx context.Context, exec Executor, newFood models.NewFood) (models.Food, error) {
	var food models.Food
	if err := sqlxGet(ctx, exec, &food, createFoodQuery, newFood.Name, newFood.BestBeforeDate); err != nil {
		return models.Food{}, storageError("create food", err)
	}
	return food, nil
}

// DeleteFood removes the row with the given id. Deleting an id that does not exist is not an error.
func DeleteFood(ctx context.Context, exec Executor, id int64) error {
	if _, err := exec.ExecContext(ctx, exec.Rebind(deleteFoodQuery), id); err != nil {
		return storageError("delete food", err)
	}
	return nil
}
