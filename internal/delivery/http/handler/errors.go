package handler

import (
	"net/http"

	"golang.org/x/text/language"

	"github.com/Pesokrava/tournament_registry/internal/delivery/http/middleware"
	"github.com/Pesokrava/tournament_registry/internal/delivery/http/response"
	"github.com/Pesokrava/tournament_registry/internal/domain"
	"github.com/Pesokrava/tournament_registry/internal/pkg/i18n"
	"github.com/Pesokrava/tournament_registry/internal/pkg/logger"
	"github.com/Pesokrava/tournament_registry/internal/pkg/metrics"
)

// ErrorResponder turns service errors into localized HTTP error responses
type ErrorResponder struct {
	logger      *logger.Logger
	metrics     *metrics.Metrics
	defaultLang language.Tag
}

// NewErrorResponder creates a responder. Messages fall back to defaultLang
// when the Accept-Language header names nothing supported.
func NewErrorResponder(log *logger.Logger, m *metrics.Metrics, defaultLang language.Tag) *ErrorResponder {
	return &ErrorResponder{
		logger:      log,
		metrics:     m,
		defaultLang: defaultLang,
	}
}

// StatusFor maps an error to its HTTP status code. The outermost domain
// error decides, so a failure caused by a missing entity stays a 500.
func StatusFor(err error) int {
	switch {
	case domain.HasScenario(err, domain.ScenarioNotFound):
		return http.StatusNotFound
	case domain.HasScenario(err, domain.ScenarioInvalidInput):
		return http.StatusBadRequest
	case domain.HasScenario(err, domain.ScenarioConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes the error response for err
func (e *ErrorResponder) Respond(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)

	de, ok := domain.AsError(err)
	if !ok {
		e.logger.With("request_id", middleware.RequestIDFromContext(r.Context())).
			Error("Unexpected error", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	e.metrics.ObserveError(err)

	if status == http.StatusInternalServerError {
		e.logger.WithError(err).
			With("request_id", middleware.RequestIDFromContext(r.Context())).
			Error("Request failed", err)
	}

	lang := i18n.Match(r.Header.Get("Accept-Language"), e.defaultLang)
	response.DomainError(w, status, i18n.Message(de, lang), de.Concept().Key(), string(de.Scenario()))
}
