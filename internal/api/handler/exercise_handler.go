package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/fitness-api/internal/core/domain"
	"github.com/fittrack/fitness-api/internal/core/ports"
)

// ExerciseHandler serves the read-only exercise catalog.
type ExerciseHandler struct {
	service ports.ExerciseService
}

func NewExerciseHandler(service ports.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{service: service}
}

type listExercisesResponse struct {
	Exercises []*domain.Exercise `json:"exercises"`
}

type exerciseEnvelope struct {
	Exercise *domain.Exercise `json:"exercise"`
}

// List handles GET /exercises.
//
// @Summary      List catalog exercises
// @Tags         exercises
// @Produce      json
// @Param        category  query     string  false  "Filter by category (strength, cardio, flexibility, balance)"
// @Success      200       {object}  listExercisesResponse
// @Failure      400       {object}  map[string]string
// @Failure      401       {object}  map[string]string
// @Router       /exercises [get]
func (h *ExerciseHandler) List(c echo.Context) error {
	exercises, err := h.service.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listExercisesResponse{Exercises: exercises})
}

// Get handles GET /exercises/:id.
//
// @Summary      Get a catalog exercise
// @Tags         exercises
// @Produce      json
// @Param        id   path      string  true  "Exercise id"
// @Success      200  {object}  exerciseEnvelope
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /exercises/{id} [get]
func (h *ExerciseHandler) Get(c echo.Context) error {
	exercise, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, exerciseEnvelope{Exercise: exercise})
}
