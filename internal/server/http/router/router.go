package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/fintrack/internal/server/http/handlers"
	"github.com/polkiloo/fintrack/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.FinanceFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	transactionHandler := handlers.NewTransactionHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.POST("/signup", authHandler.SignUp)
	engine.POST("/signin", authHandler.SignIn)
	engine.GET("/health", healthHandler.Status)

	transactions := engine.Group("/transactions")
	transactions.Use(middleware.AuthRequired(facade))
	transactions.GET("", transactionHandler.List)
	transactions.POST("", transactionHandler.Create)
	transactions.PUT("", transactionHandler.Update)
	transactions.DELETE("", transactionHandler.Delete)
	transactions.GET("/summary", transactionHandler.Summary)

	return engine
}
