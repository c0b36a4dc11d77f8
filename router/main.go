package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/s-204-cmd/Scholars-spotlight-india/database"
	"github.com/s-204-cmd/Scholars-spotlight-india/handlers"
	auth_handlers "github.com/s-204-cmd/Scholars-spotlight-india/handlers/auth"
	college_handlers "github.com/s-204-cmd/Scholars-spotlight-india/handlers/college"
	"github.com/s-204-cmd/Scholars-spotlight-india/services"
	"github.com/s-204-cmd/Scholars-spotlight-india/utils"
	"github.com/s-204-cmd/Scholars-spotlight-india/utils/middleware"
)

// RouterConfig carries the shared instances the routes are wired against.
type RouterConfig struct {
	Store          database.Storage
	Session        *services.SessionService
	Catalog        *services.CatalogService
	AllowedOrigins string
}

func SetupRoutes(app *fiber.App, cfg RouterConfig) {
	// Apply security middleware
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    cfg.AllowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Health check endpoint (public)
	app.Get("/ping", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, cfg.Store))

	// Session middleware reads the single mock session; no tokens involved
	sessionMiddleware := middleware.NewSessionMiddleware(cfg.Session)

	// Initialize handlers
	authHandler := auth_handlers.NewAuthHandler(cfg.Session)
	collegeHandler := college_handlers.NewCollegeHandler(cfg.Catalog)

	// API v1 group
	api := app.Group("/api/v1")

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)     // Public: Resolve against the demo credential table
	authGroup.Post("/signup", authHandler.Signup)   // Public: Mock registration, always succeeds
	authGroup.Get("/session", authHandler.Session)  // Public: Current session state
	authGroup.Post("/logout", sessionMiddleware.RequireSession(), authHandler.Logout)

	// Profile route (protected)
	api.Get("/profile", sessionMiddleware.RequireSession(), authHandler.Profile)

	// College catalog routes
	colleges := api.Group("/colleges")
	colleges.Get("/", collegeHandler.ListColleges)          // Public: Canonical collection
	colleges.Get("/search", collegeHandler.SearchColleges)  // Public: Derived filtered view
	colleges.Get("/:id", collegeHandler.GetCollege)         // Public: Get college by ID
	colleges.Post("/", sessionMiddleware.RequireAdmin(), collegeHandler.CreateCollege)      // Admin only: Add college
	colleges.Put("/:id", sessionMiddleware.RequireAdmin(), collegeHandler.UpdateCollege)    // Admin only: Patch college
	colleges.Delete("/:id", sessionMiddleware.RequireAdmin(), collegeHandler.DeleteCollege) // Admin only: Remove college

	// Shortlist routes (protected, operate on the current session user)
	colleges.Post("/:id/shortlist", sessionMiddleware.RequireSession(), collegeHandler.ShortlistCollege)
	colleges.Delete("/:id/shortlist", sessionMiddleware.RequireSession(), collegeHandler.RemoveFromShortlist)
	colleges.Get("/:id/shortlist", sessionMiddleware.RequireSession(), collegeHandler.IsShortlisted)
	api.Get("/shortlist", sessionMiddleware.RequireSession(), collegeHandler.ListShortlisted)

	// Search filter routes
	api.Get("/filters", collegeHandler.GetFilters)      // Public: Active criteria
	api.Patch("/filters", collegeHandler.UpdateFilters) // Public: Shallow-merge criteria, recompute view
}
