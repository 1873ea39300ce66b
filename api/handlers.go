package api

import (
	"github.com/stardustenigma/portfolio-backend/cache"
	"github.com/stardustenigma/portfolio-backend/config"
	"github.com/stardustenigma/portfolio-backend/database"
	"github.com/stardustenigma/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, c map[string]string, pageCache *cache.Cache) *routeHandlers {
	baseURL := config.GetString(c, "SITE_BASE_URL", "http://localhost:8080")

	siteSvc := services.NewSiteService()
	querySvc := services.NewProjectQueryService(db.ProjectRepo(), db.TechTagRepo())
	detailSvc := services.NewProjectDetailService(db.ProjectRepo())
	contactSvc := services.NewContactService(
		db.ContactMessageRepo(),
		config.NewContactSettings(c),
		services.NewNotifier(c),
	)
	feedSvc := services.NewFeedService(
		db.ProjectRepo(),
		baseURL,
		config.GetString(c, "FEED_TITLE", "Atharva Mandle - Latest Projects"),
		config.GetString(c, "FEED_DESCRIPTION", "Latest projects by Atharva Mandle - Full Stack Developer"),
	)
	sitemapSvc := services.NewSitemapService(db.ProjectRepo(), baseURL)

	return &routeHandlers{
		siteHandler:    newSiteHandler(siteSvc),
		projectHandler: newProjectHandler(querySvc, detailSvc),
		contactHandler: newContactHandler(contactSvc, siteSvc),
		feedHandler:    newFeedHandler(feedSvc, sitemapSvc, db),
		adminHandler:   newAdminHandler(newAdminAuth(c), db, pageCache),
	}
}
