package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/pagegrade/backend/analyzer"
	"github.com/pagegrade/backend/logging"
	"github.com/pagegrade/backend/middleware"
)

func loadEnv() {
	// .env.development wins for local work, then the plain .env.
	if err := godotenv.Load(".env.development"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	loadEnv()
	gin.SetMode(envOr("GIN_MODE", gin.ReleaseMode))

	engine, err := analyzer.New(envOr("DATA_DIR", "data"))
	if err != nil {
		log.Fatal("Failed to initialize analyzer:", err)
	}
	defer engine.Shutdown()

	stats := logging.Initialize()
	router := buildRouter(engine, stats)

	port := envOr("PORT", "8082")
	log.Printf("Server starting on http://localhost:%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func buildRouter(engine *analyzer.Analyzer, stats *logging.Statistics) *gin.Engine {
	limiter := middleware.NewRateLimiter(2, 5) // 2 req/s, burst of 5

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RequestID())
	r.Use(limiter.RateLimit())
	r.Use(middleware.Stats(stats))
	r.Use(corsHeaders())

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		api.POST("/analyze", analyzeHandler(engine))
		api.GET("/statistics", func(c *gin.Context) {
			c.JSON(http.StatusOK, stats.GetStatistics())
		})
	}

	return r
}

func corsHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func analyzeHandler(engine *analyzer.Analyzer) gin.HandlerFunc {
	type analyzeRequest struct {
		Content       string `json:"content" binding:"required"`
		URL           string `json:"url"`
		TargetKeyword string `json:"targetKeyword"`
	}

	return func(c *gin.Context) {
		var req analyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Request must include content to analyze",
			})
			return
		}

		result, err := engine.Analyze(analyzer.AnalysisInput{
			Content:       req.Content,
			URL:           req.URL,
			TargetKeyword: req.TargetKeyword,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to analyze content: " + err.Error(),
			})
			return
		}

		c.Set(middleware.KeywordContextKey, result.Keywords.PrimaryKeyword)
		c.JSON(http.StatusOK, result)
	}
}
