package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"venue-backend/controllers"
	"venue-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers into the HTTP surface.
func SetupRouter(
	ic *controllers.InquiryController,
	gc *controllers.GalleryController,
	sc *controllers.SEOController,
	imagesDir string,
	log zerolog.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(log), gin.Recovery())
	r.Static("/images", imagesDir)

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/sitemap.xml", sc.Sitemap)
	r.GET("/robots.txt", sc.Robots)

	api := r.Group("/api")
	{
		api.POST("/contact", ic.SubmitInquiry)
		api.GET("/gallery", gc.GetGallery)
		api.GET("/event-types", controllers.GetEventTypes)
		api.GET("/venue", controllers.GetVenueDetails)
		api.GET("/structured-data", sc.StructuredData)
	}

	return r
}
