package routes

import (
	"context"
	"log"
	_ "proposal_forecasting/docs" // This will be auto-generated
	"proposal_forecasting/internal/adapter/http/handlers"
	"proposal_forecasting/internal/infrastructure/config"
	"proposal_forecasting/internal/infrastructure/store"
	"proposal_forecasting/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	repos, err := store.Open(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to open the %s store: %v", cfg.StoreDriver, err)
	}
	defer repos.Close()

	router := NewRouter(repos, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("[http] listening port=%d store=%s tz=%s", cfg.Port, cfg.StoreDriver, cfg.Location)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter wires use cases and handlers on top of the given repositories.
func NewRouter(repos *store.Repositories, cfg config.Config) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	stageUseCase := usecase.NewPipelineStageUseCase(repos.Stages)
	forecastingUseCase := usecase.NewForecastingUseCase(repos.Proposals, repos.Stages, repos.Users, cfg.Location)

	stageHandler := handlers.NewPipelineStageHandler(stageUseCase)
	forecastingHandler := handlers.NewForecastingHandler(forecastingUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPipelineRoutes(v1, stageHandler, forecastingHandler)
	addAnalyticsRoutes(v1, forecastingHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
