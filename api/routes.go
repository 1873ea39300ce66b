package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stardustenigma/portfolio-backend/cache"
	"github.com/stardustenigma/portfolio-backend/metrics"
)

// setupRoutes wires every route. Static pages and the feed/sitemap are
// served through the page cache; the contact form and the listing (whose
// content depends on fresh data and filters) are not.
func setupRoutes(r chi.Router, handlers *routeHandlers, pageCache *cache.Cache, staticTTL, feedTTL time.Duration) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Static informational pages, response-cached
		r.Group(func(r chi.Router) {
			r.Use(PageCacheMiddleware(pageCache, staticTTL))
			r.Get("/", handlers.siteHandler.getHome())
			r.Get("/about", handlers.siteHandler.getAbout())
			r.Get("/skills", handlers.siteHandler.getSkills())
			r.Get("/api/skills", handlers.siteHandler.getSkillsAPI())
		})

		// Project listing and detail
		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/projects/page/{page}", handlers.projectHandler.listProjectsPage())
		r.Get("/projects/tech/{tech}", handlers.projectHandler.listProjectsByTech())
		r.Get("/projects/feed", handlers.feedHandler.getFeed())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/projects/{projectID}/{slug}", handlers.projectHandler.getProject())
		r.Get("/project/{projectID}", handlers.projectHandler.legacyRedirect())

		// Contact intake
		r.Get("/contact", handlers.contactHandler.getContactPage())
		r.Post("/contact", handlers.contactHandler.submitContact())

		// Crawl surface, response-cached
		r.Group(func(r chi.Router) {
			r.Use(PageCacheMiddleware(pageCache, feedTTL))
			r.Get("/sitemap.xml", handlers.feedHandler.getSitemap())
			r.Get("/robots.txt", handlers.feedHandler.getRobots())
		})

		// Monitoring
		r.Get("/health", handlers.feedHandler.getHealth())
		r.Method(http.MethodGet, "/metrics", metrics.Handler())

		// Admin command surface
		r.Post("/admin/login", handlers.adminHandler.login())
		r.Group(func(r chi.Router) {
			r.Use(handlers.adminHandler.auth.authenticate)
			r.Post("/admin/cache/clear", handlers.adminHandler.clearCache())
			r.Get("/admin/stats", handlers.adminHandler.stats())
			r.Get("/admin/messages", handlers.adminHandler.listMessages())
			r.Post("/admin/messages/{messageID}/read", handlers.adminHandler.markMessageRead())
			r.Post("/admin/messages/{messageID}/replied", handlers.adminHandler.markMessageReplied())
		})
	})
}
