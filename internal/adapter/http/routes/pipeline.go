package routes

import (
	"net/http"
	"proposal_forecasting/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing      = "/ping"
	PathPipeline  = "/pipeline"
	PathForecast  = "/forecast"
	PathAnalytics = "/analytics"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addPipelineRoutes(rg *gin.RouterGroup, stageHandler *handlers.PipelineStageHandler, forecastingHandler *handlers.ForecastingHandler) {
	pipeline := rg.Group(PathPipeline)
	{
		pipeline.GET("", forecastingHandler.GetPipeline)

		pipeline.GET("/stages", stageHandler.ListStages)
		pipeline.POST("/stages", stageHandler.CreateStage)
		pipeline.POST("/stages/defaults", stageHandler.InitializeDefaultStages)
		pipeline.PATCH("/stages/:id", stageHandler.UpdateStage)
		pipeline.DELETE("/stages/:id", stageHandler.DeleteStage)
	}

	rg.GET(PathForecast, forecastingHandler.GetForecast)
}

func addAnalyticsRoutes(rg *gin.RouterGroup, forecastingHandler *handlers.ForecastingHandler) {
	analytics := rg.Group(PathAnalytics)
	{
		analytics.GET("/win-rate", forecastingHandler.GetWinRate)
		analytics.GET("/team-performance", forecastingHandler.GetTeamPerformance)
	}
}
