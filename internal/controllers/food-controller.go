package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/best-before-api/internal/models"
	"github.com/franciscosanchezn/best-before-api/internal/repository"
	"github.com/franciscosanchezn/best-before-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DefaultListLimit caps list results when the client sends no limit
const DefaultListLimit = 500

// FoodController handles HTTP requests related to foods
type FoodController interface {
	// ListFoods retrieves foods ordered by best-before date
	ListFoods(c *gin.Context)
	// CreateFood creates a new food
	CreateFood(c *gin.Context)
	// DeleteFood deletes a food by its ID
	DeleteFood(c *gin.Context)
}

type controller struct {
	service      services.FoodService
	log          logrus.FieldLogger
	defaultLimit int
}

// NewFoodController creates a new instance of FoodController.
// A non-positive defaultLimit falls back to DefaultListLimit.
func NewFoodController(service services.FoodService, log logrus.FieldLogger, defaultLimit int) *controller {
	if defaultLimit <= 0 {
		defaultLimit = DefaultListLimit
	}
	return &controller{service: service, log: log, defaultLimit: defaultLimit}
}

// ListFoods godoc
// @Summary List foods
// @Description List foods ordered by best-before date, latest first
// @Tags foods
// @Produce json
// @Param limit query int false "Maximum number of foods to return (default 500)" minimum(0)
// @Success 200 {object} models.FoodList
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v0/foods [get]
func (c *controller) ListFoods(ctx *gin.Context) {
	limit := c.defaultLimit
	if raw, ok := ctx.GetQuery("limit"); ok {
		parsed, err := strconv.ParseUint(raw, 10, 31)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrInvalidParameter,
				"limit must be a non-negative integer", map[string]interface{}{"limit": raw}))
			return
		}
		limit = int(parsed)
	}

	foods, err := c.service.ListFoods(ctx.Request.Context(), limit)
	if err != nil {
		c.storageFailure(ctx, err, "Failed to retrieve foods")
		return
	}
	ctx.JSON(http.StatusOK, models.FoodList{Foods: foods})
}

// CreateFood godoc
// @Summary Create a food
// @Description Store a food with its best-before date
// @Tags foods
// @Accept json
// @Produce json
// @Param food body models.NewFood true "Food to create"
// @Success 200 {object} models.Food
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v0/foods [post]
func (c *controller) CreateFood(ctx *gin.Context) {
	var newFood models.NewFood
	if err := ctx.ShouldBindJSON(&newFood); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body: "+err.Error()))
		return
	}

	created, err := c.service.CreateFood(ctx.Request.Context(), newFood)
	if err != nil {
		c.storageFailure(ctx, err, "Failed to create food")
		return
	}
	ctx.JSON(http.StatusOK, created)
}

// DeleteFood godoc
// @Summary Delete a food
// @Description Delete a food by its ID. Deleting an unknown ID also succeeds.
// @Tags foods
// @Param id path int true "Food ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v0/foods/{id} [delete]
func (c *controller) DeleteFood(ctx *gin.Context) {
	id := ctx.Param("id")
	foodID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || foodID <= 0 {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrInvalidParameter,
			"Invalid food ID format", map[string]interface{}{"id": id}))
		return
	}

	if err := c.service.DeleteFood(ctx.Request.Context(), foodID); err != nil {
		c.storageFailure(ctx, err, "Failed to delete food")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// storageFailure logs err and answers 500 without leaking its text
func (c *controller) storageFailure(ctx *gin.Context, err error, message string) {
	entry := c.log.WithError(err).WithField("path", ctx.FullPath())
	var storageErr *repository.StorageError
	if errors.As(err, &storageErr) {
		entry = entry.WithField("op", storageErr.Op)
	}
	entry.Error(message)
	ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, message))
}
