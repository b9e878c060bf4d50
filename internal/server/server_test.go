package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootRarity_Go/internal/domain"
	"github.com/osse101/LootRarity_Go/internal/droptable"
	"github.com/osse101/LootRarity_Go/internal/handler"
	"github.com/osse101/LootRarity_Go/internal/item"
	"github.com/osse101/LootRarity_Go/internal/naming"
	"github.com/osse101/LootRarity_Go/internal/rarity"
)

func newTestRouter(t *testing.T, rateLimit int) (http.Handler, *droptable.Store) {
	t.Helper()

	store := droptable.NewStore(domain.DomainNPC, func() ([]byte, error) {
		return []byte(`{"Goblin":[{"i":9008,"d":4,"q":1}]}`), nil
	})
	names := naming.NewResolver(item.NewCatalog(nil), 8, 0)

	reg := rarity.NewRegistry()
	reg.Register(domain.DomainNPC, rarity.NewService(domain.DomainNPC, store, names))

	return NewRouter(Options{
		RateLimit: rateLimit,
		Readiness: []handler.HealthChecker{store},
	}, handler.NewRarityHandler(reg, names)), store
}

func TestRouter_ReadinessFollowsPublication(t *testing.T) {
	router, store := newTestRouter(t, 0)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	store.Load(context.Background())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_RarityRoutes(t *testing.T) {
	router, store := newTestRouter(t, 0)
	store.Load(context.Background())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/rarity?domain=npc&source=Goblin&item_id=9008", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"display":"1 in 4"`)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/rarity/embed-field?domain=npc&source=Goblin&item_id=1", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRouter_PropagatesRequestID(t *testing.T) {
	router, _ := newTestRouter(t, 0)

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, 0)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_in_flight")
}

func TestRouter_RateLimit(t *testing.T) {
	router, _ := newTestRouter(t, 2)

	codes := make([]int, 0, 3)
	for range 3 {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_WindowResets(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewRateLimiter(1, time.Minute)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"))

	now = now.Add(2 * time.Minute)
	assert.True(t, l.Allow("10.0.0.1"))
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.5:4321"
	req.Header.Set(HeaderForwardedFor, "203.0.113.9, 198.51.100.7")

	assert.Equal(t, "10.0.0.5", extractIP(req, nil))
	assert.Equal(t, "198.51.100.7", extractIP(req, []string{"10.0.0.5"}))
}

func TestRouter_SwaggerDoc(t *testing.T) {
	router, _ := newTestRouter(t, 0)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/api/v1/rarity"`)
	assert.Contains(t, w.Body.String(), `"/api/v1/rarity/embed-field"`)
	assert.Contains(t, w.Body.String(), `"handler.RarityResponse"`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
