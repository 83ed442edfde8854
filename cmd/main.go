package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "roboadvisor/docs"
	"roboadvisor/pkg/assets"
	"roboadvisor/pkg/db"
	"roboadvisor/pkg/middleware"
	"roboadvisor/pkg/portfolios"
	"roboadvisor/pkg/response"
	"roboadvisor/pkg/riskprofiles"
	"roboadvisor/pkg/trades"
)

const version = "0.1.0"

// @title           Robo Advisor API
// @version         0.1.0
// @description     REST API for managing investment portfolios and the assets held within them

// @BasePath  /

// @schemes   http
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	database := db.Connect()
	defer database.Close()

	portfoliosRepo := portfolios.NewSQLitePortfolioRepository(database)
	portfoliosService := portfolios.NewPortfolioService(portfoliosRepo)
	portfoliosHandler := portfolios.NewPortfolioHandler(portfoliosService)

	assetsRepo := assets.NewSQLiteAssetRepository(database)
	assetsService := assets.NewAssetService(assetsRepo, portfoliosRepo)
	assetsHandler := assets.NewAssetHandler(assetsService)

	tradesRepo := trades.NewSQLiteTradeRepository(database)
	tradesService := trades.NewTradeService(tradesRepo, assetsRepo)
	tradesHandler := trades.NewTradeHandler(tradesService)

	riskProfilesRepo := riskprofiles.NewSQLiteRiskProfileRepository(database)
	riskProfilesService := riskprofiles.NewRiskProfileService(riskProfilesRepo, portfoliosRepo)
	riskProfilesHandler := riskprofiles.NewRiskProfileHandler(riskProfilesService)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	// CORS configuration
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	var origins []string
	if allowedOrigins == "" {
		origins = []string{"*"}
	} else {
		parts := strings.Split(allowedOrigins, ",")
		origins = make([]string, 0, len(parts))
		for _, p := range parts {
			o := strings.TrimSpace(p)
			if o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) == 0 {
			origins = []string{"*"}
		}
	}

	allowCreds := strings.EqualFold(os.Getenv("CORS_ALLOW_CREDENTIALS"), "true")

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCreds,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Robo Advisor API",
			"version": version,
			"docs":    "/swagger/index.html",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := router.Group("/api/v1")
	portfoliosHandler.RegisterRoutes(api)
	assetsHandler.RegisterRoutes(api)
	tradesHandler.RegisterRoutes(api)
	riskProfilesHandler.RegisterRoutes(api)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(func(c *gin.Context) {
		response.SendAPIError(c, http.StatusNotFound, "route not found")
	})

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
