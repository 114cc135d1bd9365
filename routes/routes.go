package routes

import (
	"net/http"
	"time"

	"timeback/handlers"
	"timeback/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes registers the landing page and HTML form endpoints.
func RegisterPageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.ShowPage)
	r.POST("/book", hb.SubmitForm)
	r.StaticFS("/static", web.Static())
}

// RegisterAPIRoutes registers the JSON endpoints.
func RegisterAPIRoutes(r *gin.Engine, hb *handlers.HandlerBundle, origins []string) {
	api := r.Group("/api")
	{
		api.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
			AllowCredentials: !allowsAll(origins),
			MaxAge:           12 * time.Hour,
		}))
		api.POST("/booking", hb.SubmitBooking)
		api.GET("/content", hb.GetContent)
		api.OPTIONS("/*any", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// RegisterRoutes centralizes registration of all endpoints.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, origins []string) {
	RegisterPageRoutes(r, hb)
	RegisterAPIRoutes(r, hb, origins)
	RegisterHealthRoute(r, hb)
}

func allowsAll(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
