package services

import (
	"context"
	"time"

	"github.com/franciscosanchezn/best-before-api/internal/models"
	"github.com/franciscosanchezn/best-before-api/internal/repository"
)

// SampleFoods returns a few foods expiring relative to today, for local development
func SampleFoods(today time.Time) []models.NewFood {
	at := func(days int) *models.Date {
		d := models.DateOf(today.AddDate(0, 0, days))
		return &d
	}
	return []models.NewFood{
		{Name: "Milk", BestBeforeDate: at(5)},
		{Name: "Bread", BestBeforeDate: at(2)},
		{Name: "Yoghurt", BestBeforeDate: at(10)},
		{Name: "Cheddar", BestBeforeDate: at(30)},
	}
}

// SeedFoods inserts foods in a single transaction when the table is empty.
// It returns the number of rows inserted.
func SeedFoods(ctx context.Context, service FoodService, foods []models.NewFood) (int, error) {
	existing, err := service.ListFoods(ctx, 1)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	err = service.WithinTx(ctx, func(exec repository.Executor) error {
		for _, food := range foods {
			if _, err := repository.CreateFood(ctx, exec, food); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(foods), nil
}
