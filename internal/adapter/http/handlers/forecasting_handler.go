package handlers

import (
	"errors"
	"net/http"
	response "proposal_forecasting/internal/adapter/http/dto/response"
	"proposal_forecasting/internal/usecase"
	"proposal_forecasting/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

// ForecastingHandler serves the read-only analytics endpoints. Every response is
// computed on request from the caller's proposals.

type ForecastingHandler struct {
	usecase usecase.IForecastingUseCase
}

func NewForecastingHandler(uc usecase.IForecastingUseCase) *ForecastingHandler {
	return &ForecastingHandler{usecase: uc}
}

// GetPipeline godoc
// @Summary      Weighted sales pipeline
// @Tags         analytics
// @Produce      json
// @Param        X-User-ID  header  string  true  "Caller id"
// @Success      200  {object}  response.PipelineResponse
// @Router       /pipeline [get]
func (h *ForecastingHandler) GetPipeline(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	snapshot, err := h.usecase.GetPipeline(c.Request.Context(), userID)
	if err != nil {
		appErr := mapForecastingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPipelineSnapshot(snapshot))
}

// GetForecast godoc
// @Summary      Revenue forecast
// @Tags         analytics
// @Produce      json
// @Param        X-User-ID  header  string  true  "Caller id"
// @Success      200  {object}  response.ForecastResponse
// @Router       /forecast [get]
func (h *ForecastingHandler) GetForecast(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	forecast, err := h.usecase.GetForecast(c.Request.Context(), userID)
	if err != nil {
		appErr := mapForecastingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromForecast(forecast))
}

// GetWinRate godoc
// @Summary      Win-rate analysis
// @Tags         analytics
// @Produce      json
// @Param        X-User-ID  header  string  true  "Caller id"
// @Success      200  {object}  response.WinRateResponse
// @Router       /analytics/win-rate [get]
func (h *ForecastingHandler) GetWinRate(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	winRate, err := h.usecase.GetWinRate(c.Request.Context(), userID)
	if err != nil {
		appErr := mapForecastingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWinRate(winRate))
}

// GetTeamPerformance godoc
// @Summary      Team performance
// @Description  Aggregates the caller's own figures. teamId is echoed back.
// @Tags         analytics
// @Produce      json
// @Param        X-User-ID  header  string  true   "Caller id"
// @Param        teamId     query   string  false  "Team id"
// @Success      200  {object}  response.TeamPerformanceResponse
// @Router       /analytics/team-performance [get]
func (h *ForecastingHandler) GetTeamPerformance(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	// Members are never taken from the request: there is no team directory to check
	// them against, so the API only reports on the caller.
	q := usecase.TeamPerformanceQuery{
		UserID: userID,
		TeamID: strings.TrimSpace(c.Query("teamId")),
	}

	team, err := h.usecase.GetTeamPerformance(c.Request.Context(), q)
	if err != nil {
		appErr := mapForecastingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTeamPerformance(team))
}

func mapForecastingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
