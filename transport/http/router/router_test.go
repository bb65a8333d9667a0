package router_test

import (
	"bestevents/config"
	"bestevents/infras/otel/mocks"
	"bestevents/transport/http/middleware"
	"bestevents/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestSetupRoutes_RecoversFromPanic(t *testing.T) {
	cfg := &config.Config{}
	r := router.New(router.DomainHandlers{}, middleware.NewAppMiddleware(mocks.NewOtel(), cfg), cfg, nil)

	mux := chi.NewRouter()
	r.SetupRoutes(mux)
	mux.Get("/panic", func(http.ResponseWriter, *http.Request) {
		panic("slice bounds out of range")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
