package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mcordovar/datacenter-access/internal/api/http/handlers"
	"github.com/mcordovar/datacenter-access/internal/auth"
	"github.com/mcordovar/datacenter-access/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Entries        *handlers.EntriesHandler
	Facilities     *handlers.FacilitiesHandler
	Stats          *handlers.StatsHandler
	Attachments    *handlers.AttachmentsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)

	entries := protected.Group("/entries")
	entries.Get("", cfg.Entries.ListEntries)
	entries.Post("", cfg.Entries.CreateEntry)
	entries.Get("/search", cfg.Entries.SearchEntries)
	entries.Get("/:id", cfg.Entries.GetEntry)
	entries.Patch("/:id", cfg.Entries.UpdateEntry)
	entries.Delete("/:id", auth.RequireRole(domain.RoleAdmin, domain.RoleSecurity), cfg.Entries.DeleteEntry)

	facilities := protected.Group("/facilities")
	facilities.Get("", cfg.Facilities.ListFacilities)
	facilities.Get("/:id/rooms", cfg.Facilities.ListRooms)

	stats := protected.Group("/stats")
	stats.Get("/dashboard", cfg.Stats.Dashboard)
	stats.Get("/metrics", auth.RequireRole(domain.RoleAdmin), cfg.Stats.Metrics)

	attachments := protected.Group("/attachments")
	attachments.Get("/:subject", cfg.Attachments.ListPhotos)
	attachments.Post("/:subject", cfg.Attachments.AddPhoto)
	attachments.Put("/:subject", cfg.Attachments.ReplacePhotos)
	attachments.Delete("/:subject", cfg.Attachments.PurgePhotos)
}
