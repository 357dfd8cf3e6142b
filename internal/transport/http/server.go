package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "plantcare-api/internal/app"
	"plantcare-api/internal/bootstrap"
	"plantcare-api/internal/cache"
	"plantcare-api/internal/platform/rabbitmq"
	"plantcare-api/internal/repository"
	"plantcare-api/internal/transport/http/handler"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	predictionRepo := repository.NewPredictionRepository(app.MySQL)
	scanCache := cache.NewScanCache(
		app.Redis,
		time.Duration(app.Config.Redis.ScanCacheTTLSeconds)*time.Second,
	)
	publisher := rabbitmq.NewEventPublisher(app.MQConn, app.Config.RabbitMQ.ScanEventQueue)

	predictionService := appsvc.NewPredictionService(
		predictionRepo,
		app.Uploader,
		app.Registry,
		app.Advisor,
		publisher,
		scanCache,
	)

	predictionHandler := handler.NewPredictionHandler(predictionService)
	healthHandler := handler.NewHealthHandler(app)

	router.GET("/", predictionHandler.Root)
	router.GET("/healthz", healthHandler.Check)
	router.POST("/predict/", predictionHandler.Predict)
	router.GET("/scanned_data/", predictionHandler.ListAll)
	router.GET("/scanned_data/:user_id", predictionHandler.ListByUser)
	router.DELETE("/scanned_data/:user_id", predictionHandler.DeleteByUser)

	return router
}
