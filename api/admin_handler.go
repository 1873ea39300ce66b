package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stardustenigma/portfolio-backend/cache"
	"github.com/stardustenigma/portfolio-backend/database"
	"github.com/stardustenigma/portfolio-backend/errs"
)

type adminHandler struct {
	responder Responder
	logger    zerolog.Logger
	auth      adminAuth
	db        database.Database
	pageCache *cache.Cache
}

func newAdminHandler(auth adminAuth, db database.Database, pageCache *cache.Cache) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder: NewResponder(logger),
		logger:    logger,
		auth:      auth,
		db:        db,
		pageCache: pageCache,
	}
}

// login exchanges the operator password for a session token.
func (h adminHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.auth.verifyPassword(body.Password); err != nil {
			h.logger.Warn().Str("remote_addr", r.RemoteAddr).Msg("failed admin login attempt")
			h.responder.WriteError(w, err)
			return
		}

		token, err := h.auth.issueToken(time.Now())
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("token issue failed", err))
			return
		}

		h.logger.Info().Msg("admin login")
		h.responder.WriteJSON(w, map[string]string{"token": token})
	}
}

// clearCache drops every cached page. Idempotent.
func (h adminHandler) clearCache() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, err := ctxGetAdminSubject(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing admin session"))
			return
		}

		h.pageCache.Clear()
		h.logger.Info().Str("subject", subject).Msg("page cache cleared by admin")

		h.responder.WriteJSON(w, map[string]any{
			"success":   true,
			"message":   "Cache cleared successfully",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// stats dumps entity counts, the newest projects, and the most-used tags.
func (h adminHandler) stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectCount, err := h.db.ProjectRepo().Count()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count projects", "projects", err))
			return
		}
		tagCount, err := h.db.TechTagRepo().Count()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count tech tags", "tech tags", err))
			return
		}
		imageCount, err := h.db.ProjectRepo().CountImages()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count project images", "project images", err))
			return
		}
		messageCount, err := h.db.ContactMessageRepo().Count()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count contact messages", "contact messages", err))
			return
		}
		recent, err := h.db.ProjectRepo().FindRecentSummaries(5)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find recent projects", "projects", err))
			return
		}
		popular, err := h.db.TechTagRepo().FindMostUsed(10)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find popular tags", "tech tags", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"total_projects":         projectCount,
			"total_tech_tags":        tagCount,
			"total_project_images":   imageCount,
			"total_contact_messages": messageCount,
			"recent_projects":        recent,
			"popular_tech_tags":      popular,
		})
	}
}

// listMessages returns every contact message, newest first.
func (h adminHandler) listMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.db.ContactMessageRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact messages", "contact messages", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"messages": messages,
			"total":    len(messages),
		})
	}
}

// markMessageRead flips is_read on one message.
func (h adminHandler) markMessageRead() http.HandlerFunc {
	return h.markMessage("read", h.db.ContactMessageRepo().MarkRead)
}

// markMessageReplied flips replied on one message.
func (h adminHandler) markMessageReplied() http.HandlerFunc {
	return h.markMessage("replied", h.db.ContactMessageRepo().MarkReplied)
}

func (h adminHandler) markMessage(flag string, update func(uint) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := chi.URLParam(r, "messageID")
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid messageID"))
			return
		}

		if err := update(uint(id)); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update contact message", "contact message", err))
			return
		}

		h.logger.Info().Uint64("messageID", id).Str("flag", flag).Msg("contact message updated")
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact message marked " + flag,
		})
	}
}
