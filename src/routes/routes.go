package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kertapati/horizon-sub000/src/domain"
	"github.com/kertapati/horizon-sub000/src/interface/handler"
	"github.com/kertapati/horizon-sub000/src/middleware"
	"github.com/kertapati/horizon-sub000/src/service"
)

// Handlers bundles the HTTP handlers the router wires up
type Handlers struct {
	Item      *handler.ItemHandler
	Dashboard *handler.DashboardHandler
	YearNote  *handler.YearNoteHandler
	Auth      *handler.AuthHandler
}

// SetupRoutes sets up all API routes
func SetupRoutes(r *gin.Engine, h Handlers, jwtService service.JWTService, userRepo domain.UserRepository) {
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)     // POST /auth/login
		auth.POST("/refresh", h.Auth.Refresh) // POST /auth/refresh
	}

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(jwtService, userRepo))

	items := api.Group("/items")
	{
		items.POST("", h.Item.CreateItem)       // POST /api/items
		items.GET("", h.Item.ListItems)         // GET /api/items
		items.GET("/archived", h.Item.ListArchivedItems)
		items.GET("/:id", h.Item.GetItem)       // GET /api/items/:id
		items.PUT("/:id", h.Item.UpdateItem)    // PUT /api/items/:id
		items.DELETE("/:id", h.Item.DeleteItem) // DELETE /api/items/:id (archived only)

		items.PATCH("/:id/status", h.Item.SetStatus)
		items.PATCH("/:id/priority", h.Item.SetPriority)
		items.PATCH("/:id/archive", h.Item.ArchiveItem)
		items.PATCH("/:id/restore", h.Item.RestoreItem)

		items.PATCH("/bulk/status", h.Item.BulkSetStatus)
	}

	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/stats", h.Dashboard.GetStats)
		dashboard.GET("/view", h.Dashboard.GetView)
		dashboard.GET("/groups/:category", h.Dashboard.GetGroups)
	}

	years := api.Group("/years")
	{
		years.GET("/:year/note", h.YearNote.GetNote)  // GET /api/years/:year/note
		years.PUT("/:year/note", h.YearNote.SaveNote) // PUT /api/years/:year/note
	}
}
