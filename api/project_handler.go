package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stardustenigma/portfolio-backend/errs"
	"github.com/stardustenigma/portfolio-backend/services"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	querySvc  *services.ProjectQueryService
	detailSvc *services.ProjectDetailService
}

func newProjectHandler(querySvc *services.ProjectQueryService, detailSvc *services.ProjectDetailService) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		querySvc:  querySvc,
		detailSvc: detailSvc,
	}
}

// listProjects serves the filtered, paginated listing. Filters arrive as
// query-string parameters: ?search=&tech=&page=
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.querySvc.ListPage(
			r.URL.Query().Get("search"),
			r.URL.Query().Get("tech"),
			r.URL.Query().Get("page"),
		)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, page)
	}
}

// listProjectsPage serves /projects/page/{page}.
func (h projectHandler) listProjectsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.querySvc.ListPage(
			r.URL.Query().Get("search"),
			r.URL.Query().Get("tech"),
			chi.URLParam(r, "page"),
		)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, page)
	}
}

// listProjectsByTech serves /projects/tech/{tech}. Hyphens in the path
// segment stand in for spaces in the tag name.
func (h projectHandler) listProjectsByTech() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tech := strings.ReplaceAll(chi.URLParam(r, "tech"), "-", " ")

		page, err := h.querySvc.ListPage(
			r.URL.Query().Get("search"),
			tech,
			r.URL.Query().Get("page"),
		)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, page)
	}
}

// getProject serves project detail. A missing or stale slug gets a
// permanent redirect to the canonical URL.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseProjectID(w, r)
		if !ok {
			return
		}

		result, err := h.detailSvc.Resolve(projectID, chi.URLParam(r, "slug"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if result.RedirectTo != "" {
			http.Redirect(w, r, result.RedirectTo, http.StatusMovedPermanently)
			return
		}

		h.responder.WriteJSON(w, result.Detail)
	}
}

// legacyRedirect serves the retired /project/{projectID} URL shape.
func (h projectHandler) legacyRedirect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseProjectID(w, r)
		if !ok {
			return
		}

		result, err := h.detailSvc.Resolve(projectID, "")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if result.RedirectTo == "" {
			h.responder.WriteJSON(w, result.Detail)
			return
		}

		http.Redirect(w, r, result.RedirectTo, http.StatusMovedPermanently)
	}
}

func (h projectHandler) parseProjectID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	projectIDStr := chi.URLParam(r, "projectID")
	projectID, err := strconv.ParseUint(projectIDStr, 10, 32)
	if err != nil {
		h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
		return 0, false
	}
	return uint(projectID), true
}
