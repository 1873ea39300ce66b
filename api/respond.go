package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/stardustenigma/portfolio-backend/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteXML writes an already-serialized XML document.
func (r Responder) WriteXML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if _, err := w.Write(body); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteText writes a plain-text body.
func (r Responder) WriteText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(body)); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError classifies err into the response taxonomy: validation problems
// come back as an ordered message list with a 4xx, ApiErr carries its own
// status, and anything else is logged and reported as a generic internal
// failure without leaking diagnostic text.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	// The status line goes out before WriteJSON runs, so the header must be
	// set here.
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	var validationErr *errs.ValidationErr
	if errors.As(err, &validationErr) {
		w.WriteHeader(validationErr.StatusCode())
		r.WriteJSON(w, map[string]any{
			"status": "error",
			"error":  "Validation error",
			"errors": validationErr.Messages,
		})
		return
	}

	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		r.WriteJSON(w, map[string]any{
			"status":  "error",
			"error":   "Internal Server Error",
			"message": "An unexpected error occurred",
		})
		return
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Str("cause", apiErr.GetFullError()).Msg("request failed")
		w.WriteHeader(apiErr.StatusCode)
		r.WriteJSON(w, map[string]any{
			"status":  "error",
			"error":   "Internal Server Error",
			"message": "An unexpected error occurred",
		})
		return
	}

	response := map[string]any{
		"status": "error",
		"error":  apiErr.Error(),
	}
	if apiErr.Field != "" {
		response["field"] = apiErr.Field
	}

	w.WriteHeader(apiErr.StatusCode)
	r.WriteJSON(w, response)
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
