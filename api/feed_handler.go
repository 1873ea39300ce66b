package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stardustenigma/portfolio-backend/database"
	"github.com/stardustenigma/portfolio-backend/services"
)

type feedHandler struct {
	responder  Responder
	logger     zerolog.Logger
	feedSvc    *services.FeedService
	sitemapSvc *services.SitemapService
	db         database.Database
}

func newFeedHandler(feedSvc *services.FeedService, sitemapSvc *services.SitemapService, db database.Database) feedHandler {
	logger := log.With().Str("handlerName", "feedHandler").Logger()

	return feedHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		feedSvc:    feedSvc,
		sitemapSvc: sitemapSvc,
		db:         db,
	}
}

// getFeed serves the RSS feed of the newest projects.
func (h feedHandler) getFeed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := h.feedSvc.Render()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		if _, err := w.Write(body); err != nil {
			h.logger.Error().Err(err).Msg("error writing response")
		}
	}
}

// getSitemap serves the XML sitemap.
func (h feedHandler) getSitemap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := h.sitemapSvc.Render()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteXML(w, body)
	}
}

// getRobots serves robots.txt.
func (h feedHandler) getRobots() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteText(w, h.sitemapSvc.Robots())
	}
}

// getHealth probes the database and reports service health.
func (h feedHandler) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			h.logger.Error().Err(err).Msg("health check failed")
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			h.responder.WriteJSON(w, map[string]any{
				"status":    "unhealthy",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
			return
		}

		projectCount, err := h.db.ProjectRepo().Count()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":         "healthy",
			"timestamp":      time.Now().UTC().Format(time.RFC3339),
			"projects_count": projectCount,
		})
	}
}
