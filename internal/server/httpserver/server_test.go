package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/avelys/rolodex-go/internal/core/domain"
	"github.com/avelys/rolodex-go/internal/core/service"
	"github.com/avelys/rolodex-go/internal/storage/jsonfile"
	"github.com/avelys/rolodex-go/internal/telemetry/metric"
)

func newTestRouter(t *testing.T, cfg *RouterConfig) http.Handler {
	t.Helper()

	store, err := jsonfile.Open(jsonfile.Config{
		Path:    filepath.Join(t.TempDir(), "rolodex.json"),
		Matcher: domain.NewMatcher(domain.MatchFullName, domain.CaseSensitive),
	})
	if err != nil {
		t.Fatalf("jsonfile.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if cfg == nil {
		cfg = &RouterConfig{}
	}
	cfg.BookService = service.NewBookService(store)
	cfg.ContactService = service.NewContactService(store)
	return NewRouter(cfg)
}

func TestNew(t *testing.T) {
	s := New(":8080", okHandler())
	if s == nil {
		t.Fatal("New returned nil")
	}
	if s.httpServer == nil {
		t.Error("httpServer is nil")
	}
	if s.handler == nil {
		t.Error("handler is nil")
	}
}

func TestServer_Shutdown(t *testing.T) {
	s := New(":0", okHandler())

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.ListenAndServe()
	}()

	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown error: %v", err)
	}

	select {
	case err := <-errChan:
		if err != nil && err != http.ErrServerClosed {
			t.Errorf("ListenAndServe returned unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("timeout waiting for ListenAndServe to return")
	}
}

func TestNewRouter_Routes(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/addressBooks", http.StatusOK},
		{http.MethodPost, "/addressBooks/friends", http.StatusCreated},
		{http.MethodGet, "/addressBooks/friends/contacts", http.StatusOK},
		{http.MethodGet, "/addressBooks/friends/contacts/sorted", http.StatusOK},
		{http.MethodGet, "/addressBooks/friends/contacts/search", http.StatusOK},
		{http.MethodGet, "/addressBooks/friends/contacts/countByLocation", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d, body %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestNewRouter_RequestIDOnAPIRoutes(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/addressBooks", nil))

	if got := rec.Header().Get("X-Request-ID"); !strings.HasPrefix(got, "req-") {
		t.Errorf("X-Request-ID = %q, want req- prefix", got)
	}
}

func TestNewRouter_Metrics(t *testing.T) {
	m := metric.NewRegistry()
	router := newTestRouter(t, &RouterConfig{
		Metrics:        m,
		MetricsHandler: m.Handler(),
	})

	// Drive one API request so the counter has a sample.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/addressBooks", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("api status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `rolodex_http_requests_total{method="GET",path="/addressBooks",status="200"} 1`) {
		t.Error("metrics scrape missing request counter sample")
	}
}

func TestNewRouter_RateLimit(t *testing.T) {
	router := newTestRouter(t, &RouterConfig{RateLimit: 1})

	req := httptest.NewRequest(http.MethodGet, "/addressBooks", nil)
	req.RemoteAddr = "10.1.1.1:9"

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", rec.Code)
	}

	// Health probes bypass the limiter.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestDefaultRouterConfig(t *testing.T) {
	cfg := DefaultRouterConfig()
	if cfg.RateLimit <= 0 {
		t.Error("default rate limit should be positive")
	}
}
