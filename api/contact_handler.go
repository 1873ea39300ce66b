package api

import (
	"net"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stardustenigma/portfolio-backend/errs"
	"github.com/stardustenigma/portfolio-backend/metrics"
	"github.com/stardustenigma/portfolio-backend/services"
)

type contactHandler struct {
	responder  Responder
	logger     zerolog.Logger
	contactSvc *services.ContactService
	siteSvc    *services.SiteService
}

func newContactHandler(contactSvc *services.ContactService, siteSvc *services.SiteService) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		contactSvc: contactSvc,
		siteSvc:    siteSvc,
	}
}

// getContactPage serves the contact page context payload.
func (h contactHandler) getContactPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.siteSvc.Contact())
	}
}

// submitContact accepts a form-encoded contact submission.
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed form body"))
			return
		}

		msg, err := h.contactSvc.Submit(services.ContactSubmission{
			Name:       r.PostFormValue("name"),
			Email:      r.PostFormValue("email"),
			Subject:    r.PostFormValue("subject"),
			Message:    r.PostFormValue("message"),
			SenderAddr: remoteAddr(r),
		})
		if err != nil {
			if errs.IsValidation(err) {
				metrics.RecordContactSubmission("rejected")
			} else {
				metrics.RecordContactSubmission("failed")
			}
			h.responder.WriteError(w, err)
			return
		}

		metrics.RecordContactSubmission("accepted")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"status":    "success",
			"message":   "Thank you for your message! I'll get back to you soon.",
			"reference": msg.Reference,
		})
	}
}

// remoteAddr strips the port from the peer address.
func remoteAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
