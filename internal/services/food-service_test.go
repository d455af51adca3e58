package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/franciscosanchezn/best-before-api/internal/database/databasetest"
	"github.com/franciscosanchezn/best-before-api/internal/models"
	"github.com/franciscosanchezn/best-before-api/internal/repository"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) FoodService {
	_, pool := databasetest.NewDB(t)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewFoodService(pool, logger)
}

func newFood(name, date string) models.NewFood {
	d, err := models.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return models.NewFood{Name: name, BestBeforeDate: &d}
}

func TestFoodServiceCreateListDelete(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	milk, err := service.CreateFood(ctx, newFood("Milk", "2024-06-01"))
	require.NoError(t, err)
	bread, err := service.CreateFood(ctx, newFood("Bread", "2024-05-20"))
	require.NoError(t, err)

	foods, err := service.ListFoods(ctx, repository.NoLimit)
	require.NoError(t, err)
	assert.Equal(t, []models.Food{milk, bread}, foods)

	require.NoError(t, service.DeleteFood(ctx, bread.ID))
	foods, err = service.ListFoods(ctx, repository.NoLimit)
	require.NoError(t, err)
	assert.Equal(t, []models.Food{milk}, foods)
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)
	boom := errors.New("boom")

	err := service.WithinTx(ctx, func(exec repository.Executor) error {
		if _, err := repository.CreateFood(ctx, exec, newFood("Eggs", "2024-07-01")); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	foods, err := service.ListFoods(ctx, repository.NoLimit)
	require.NoError(t, err)
	assert.Empty(t, foods)
}

func TestSeedFoodsOnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)
	today := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	inserted, err := SeedFoods(ctx, service, SampleFoods(today))
	require.NoError(t, err)
	assert.Equal(t, 4, inserted)

	inserted, err = SeedFoods(ctx, service, SampleFoods(today))
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	foods, err := service.ListFoods(ctx, repository.NoLimit)
	require.NoError(t, err)
	require.Len(t, foods, 4)
	assert.Equal(t, "Cheddar", foods[0].Name)
	assert.Equal(t, models.NewDate(2024, time.July, 1), foods[0].BestBeforeDate)
	assert.Equal(t, "Bread", foods[3].Name)
}
