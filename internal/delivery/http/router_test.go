package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/text/language"

	"github.com/Pesokrava/tournament_registry/internal/config"
	"github.com/Pesokrava/tournament_registry/internal/delivery/http/handler"
	"github.com/Pesokrava/tournament_registry/internal/domain"
	"github.com/Pesokrava/tournament_registry/internal/pkg/logger"
	"github.com/Pesokrava/tournament_registry/internal/pkg/metrics"
	"github.com/Pesokrava/tournament_registry/internal/repository/cache"
	"github.com/Pesokrava/tournament_registry/internal/usecase"
	"github.com/Pesokrava/tournament_registry/internal/usecase/mocks"
	"github.com/Pesokrava/tournament_registry/internal/usecase/municipality"
	"github.com/Pesokrava/tournament_registry/internal/usecase/phonetype"
	"github.com/Pesokrava/tournament_registry/internal/usecase/profile"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MunicipalityRepository) {
	t.Helper()

	log := logger.New("test")
	reg := prometheus.NewRegistry()
	m := metrics.New("test", reg)

	c := new(mocks.Cache)
	c.On("Get", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(cache.ErrMiss)
	c.On("Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	n := usecase.NewNotifier(c, new(mocks.Publisher), log)

	municipalityRepo := new(mocks.MunicipalityRepository)
	responder := handler.NewErrorResponder(log, m, language.English)

	handlers := Handlers{
		Municipality: handler.NewMunicipalityHandler(municipality.NewService(municipalityRepo, c, n, log), responder),
		Profile:      handler.NewProfileHandler(profile.NewService(new(mocks.ProfileRepository), c, n, log), responder),
		PhoneType:    handler.NewPhoneTypeHandler(phonetype.NewService(new(mocks.PhoneTypeRepository), c, n, log), responder),
	}

	cfg := &config.Config{Server: config.ServerConfig{AllowedOrigins: []string{"http://localhost:3000"}}}
	return NewRouter(handlers, m, reg, cfg, log).Setup(), municipalityRepo
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_MunicipalityNotFoundIsCountedAndExposed(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.On("GetByID", mock.Anything, int64(42)).Return(nil, domain.NewMunicipalityNotFound(42))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/municipalities/42", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `test_domain_errors_total{concept="municipality",scenario="not_found"} 1`))
	assert.Contains(t, body, `path="/api/v1/municipalities/{id}"`)
}

func TestRouter_UnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tournaments", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
