package handlers

import (
	"errors"
	"net/http"
	request "proposal_forecasting/internal/adapter/http/dto/request"
	response "proposal_forecasting/internal/adapter/http/dto/response"
	"proposal_forecasting/internal/usecase"
	"proposal_forecasting/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidStagePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid pipeline stage payload", http.StatusBadRequest)
)

// PipelineStageHandler serves the pipeline stage management endpoints.

type PipelineStageHandler struct {
	usecase usecase.IPipelineStageUseCase
}

func NewPipelineStageHandler(uc usecase.IPipelineStageUseCase) *PipelineStageHandler {
	return &PipelineStageHandler{usecase: uc}
}

// ListStages godoc
// @Summary      List pipeline stages
// @Tags         pipeline
// @Produce      json
// @Param        X-User-ID  header  string  true  "Caller id"
// @Success      200  {array}   response.PipelineStageResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /pipeline/stages [get]
func (h *PipelineStageHandler) ListStages(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	stages, err := h.usecase.ListStages(c.Request.Context(), userID)
	if err != nil {
		appErr := mapPipelineStageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPipelineStages(stages))
}

// CreateStage godoc
// @Summary      Create a pipeline stage
// @Tags         pipeline
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string                                      true  "Caller id"
// @Param        stage      body    request.CreatePipelineStageRequest          true  "Stage"
// @Success      201  {object}  response.PipelineStageResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /pipeline/stages [post]
func (h *PipelineStageHandler) CreateStage(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var payload request.CreatePipelineStageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStagePayload.HTTPStatus, errInvalidStagePayload.ToHTTPError())
		return
	}

	stage, err := h.usecase.CreateStage(c.Request.Context(), userID, payload.ToInput())
	if err != nil {
		appErr := mapPipelineStageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPipelineStage(stage))
}

// UpdateStage godoc
// @Summary      Update a pipeline stage
// @Tags         pipeline
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string                              true  "Caller id"
// @Param        id         path    string                              true  "Stage id"
// @Param        stage      body    request.UpdatePipelineStageRequest  true  "Fields to change"
// @Success      200  {object}  response.PipelineStageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /pipeline/stages/{id} [patch]
func (h *PipelineStageHandler) UpdateStage(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var payload request.UpdatePipelineStageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStagePayload.HTTPStatus, errInvalidStagePayload.ToHTTPError())
		return
	}

	stage, err := h.usecase.UpdateStage(c.Request.Context(), userID, c.Param("id"), payload.ToUpdate())
	if err != nil {
		appErr := mapPipelineStageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPipelineStage(stage))
}

// DeleteStage godoc
// @Summary      Delete a pipeline stage
// @Tags         pipeline
// @Param        X-User-ID  header  string  true  "Caller id"
// @Param        id         path    string  true  "Stage id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /pipeline/stages/{id} [delete]
func (h *PipelineStageHandler) DeleteStage(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.usecase.DeleteStage(c.Request.Context(), userID, c.Param("id")); err != nil {
		appErr := mapPipelineStageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// InitializeDefaultStages godoc
// @Summary      Provision the default pipeline stages
// @Description  Creates the six default stages when the caller has none. Safe to repeat.
// @Tags         pipeline
// @Produce      json
// @Param        X-User-ID  header  string  true  "Caller id"
// @Success      200  {array}  response.PipelineStageResponse
// @Router       /pipeline/stages/defaults [post]
func (h *PipelineStageHandler) InitializeDefaultStages(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	stages, err := h.usecase.InitializeDefaultStages(c.Request.Context(), userID)
	if err != nil {
		appErr := mapPipelineStageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPipelineStages(stages))
}

func mapPipelineStageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidStageID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStageName):
		return pkg.NewDomainErrorSimple("INVALID_STAGE_NAME", "Stage name must not be empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStageProbability):
		return pkg.NewDomainErrorSimple("INVALID_STAGE_PROBABILITY", "Stage probability must be between 0 and 100", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStageOrder):
		return pkg.NewDomainErrorSimple("INVALID_STAGE_ORDER", "Stage order must not be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPipelineStageNotFound):
		return pkg.NewDomainErrorSimple("PIPELINE_STAGE_NOT_FOUND", "Pipeline stage not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
