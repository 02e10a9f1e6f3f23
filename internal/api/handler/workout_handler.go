package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/fitness-api/internal/api/metrics"
	"github.com/fittrack/fitness-api/internal/core/ports"
)

// WorkoutHandler handles HTTP requests for workout operations. Every route
// sits behind the Auth middleware; the owner scope always comes from the
// session identity, never from the request payload.
type WorkoutHandler struct {
	service ports.WorkoutService
}

func NewWorkoutHandler(service ports.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{service: service}
}

// List handles GET /workouts.
//
// @Summary      List the current user's workouts
// @Tags         workouts
// @Produce      json
// @Success      200  {object}  listWorkoutsResponse
// @Failure      401  {object}  map[string]string
// @Router       /workouts [get]
func (h *WorkoutHandler) List(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	workouts, err := h.service.List(c.Request().Context(), ident.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listWorkoutsResponse{Workouts: toWorkoutResponses(workouts)})
}

// Get handles GET /workouts/:id.
//
// @Summary      Get a single workout
// @Tags         workouts
// @Produce      json
// @Param        id   path      string  true  "Workout id"
// @Success      200  {object}  workoutEnvelope
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /workouts/{id} [get]
func (h *WorkoutHandler) Get(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	workout, err := h.service.Get(c.Request().Context(), ident.ID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, workoutEnvelope{Workout: toWorkoutResponse(workout)})
}

// Create handles POST /workouts.
//
// @Summary      Create a workout
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Param        body  body      createWorkoutRequest  true  "Workout payload"
// @Success      201   {object}  workoutEnvelope
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /workouts [post]
func (h *WorkoutHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	workout, err := h.service.Create(c.Request().Context(), ident.ID, toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.WorkoutsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, workoutEnvelope{Workout: toWorkoutResponse(workout)})
}

// Update handles PUT /workouts/:id.
//
// @Summary      Partially update a workout
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Workout id"
// @Param        body  body      updateWorkoutRequest  true  "Fields to change"
// @Success      200   {object}  workoutEnvelope
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /workouts/{id} [put]
func (h *WorkoutHandler) Update(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	workout, err := h.service.Update(c.Request().Context(), ident.ID, c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}

	if req.Completed != nil && *req.Completed {
		metrics.WorkoutsCompletedTotal.Inc()
	}
	return c.JSON(http.StatusOK, workoutEnvelope{Workout: toWorkoutResponse(workout)})
}

// Delete handles DELETE /workouts/:id. The delete is hard: no tombstone, no
// cascade into the exercise catalog.
//
// @Summary      Delete a workout
// @Tags         workouts
// @Produce      json
// @Param        id   path      string  true  "Workout id"
// @Success      200  {object}  successResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /workouts/{id} [delete]
func (h *WorkoutHandler) Delete(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ident.ID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}
