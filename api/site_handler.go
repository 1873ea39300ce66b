package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stardustenigma/portfolio-backend/services"
)

type siteHandler struct {
	responder Responder
	logger    zerolog.Logger
	siteSvc   *services.SiteService
}

func newSiteHandler(siteSvc *services.SiteService) siteHandler {
	logger := log.With().Str("handlerName", "siteHandler").Logger()

	return siteHandler{
		responder: NewResponder(logger),
		logger:    logger,
		siteSvc:   siteSvc,
	}
}

func (h siteHandler) getHome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.siteSvc.Home())
	}
}

func (h siteHandler) getAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.siteSvc.About())
	}
}

func (h siteHandler) getSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.siteSvc.Skills())
	}
}

// getSkillsAPI serves the skills listing for API consumers.
func (h siteHandler) getSkillsAPI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills := h.siteSvc.Skills()
		h.responder.WriteJSON(w, map[string]any{
			"success":      true,
			"skills":       skills.Skills,
			"total_skills": skills.TotalSkills,
			"categories":   skills.Categories,
			"last_updated": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
