package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pagegrade/backend/logging"
)

// KeywordContextKey is set by the analyze handler so the stats middleware
// can attribute the request to a keyword after it completes.
const KeywordContextKey = "analyzedKeyword"

// Stats tracks visitors and analysis requests
func Stats(stats *logging.Statistics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		stats.TrackVisitor(c.ClientIP())

		c.Next()

		// Only track analysis requests
		if c.Request.URL.Path == "/api/analyze" && c.Request.Method == "POST" {
			loadTime := float64(time.Since(start).Milliseconds())
			keyword := c.GetString(KeywordContextKey)
			stats.TrackAnalysis(keyword, loadTime, c.Writer.Status() >= 400)
		}

		// Periodically save statistics asynchronously
		if stats.GetStatistics()["totalRequests"].(int)%100 == 0 {
			go stats.Save()
		}
	}
}
