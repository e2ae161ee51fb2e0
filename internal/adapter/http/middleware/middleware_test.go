package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/Temutjin2k/wtl-cabs/internal/adapter/http/view"
	"github.com/Temutjin2k/wtl-cabs/pkg/logger"
	"github.com/Temutjin2k/wtl-cabs/pkg/metrics"
	wrap "github.com/Temutjin2k/wtl-cabs/pkg/logger/wrapper"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRequestID(t *testing.T) {
	m := NewMiddleware(logger.Nop())

	var seen string
	h := m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = wrap.FromContext(r.Context()).RequestID
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if _, err := uuid.Parse(seen); err != nil {
			t.Fatalf("request id %q is not a uuid: %v", seen, err)
		}
		if rec.Header().Get(HeaderRequestID) != seen {
			t.Fatalf("response header = %q, want %q", rec.Header().Get(HeaderRequestID), seen)
		}
	})

	t.Run("kept", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(HeaderRequestID, "req-42")
		h.ServeHTTP(httptest.NewRecorder(), r)

		if seen != "req-42" {
			t.Fatalf("request id = %q, want req-42", seen)
		}
	})
}

func TestRecover(t *testing.T) {
	m := NewMiddleware(logger.Nop())
	h := m.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	tests := []struct {
		path        string
		contentType string
		body        string
	}{
		{"/search", "text/html; charset=utf-8", view.FallbackMessage},
		{"/api/v1/quotes", "application/json", `"error"`},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("%s: status = %d, want 500", tt.path, rec.Code)
		}
		if got := rec.Header().Get("Content-Type"); got != tt.contentType {
			t.Fatalf("%s: content type = %q, want %q", tt.path, got, tt.contentType)
		}
		if !strings.Contains(rec.Body.String(), tt.body) {
			t.Fatalf("%s: body %q does not contain %q", tt.path, rec.Body.String(), tt.body)
		}
	}
}

func TestLoggingKeepsStatus(t *testing.T) {
	m := NewMiddleware(logger.Nop())
	h := m.Logging(m.Metrics("test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want 418", rec.Code)
	}
}

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	const service = "pattern-test"
	m := NewMiddleware(logger.Nop())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("GET /cities/{slug}", func(w http.ResponseWriter, r *http.Request) {})
	h := m.Metrics(service)(mux)

	before := testutil.CollectAndCount(metrics.HttpRequestsTotal)
	for i := range 50 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/junk-"+strconv.Itoa(i), nil))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/cities/c"+strconv.Itoa(i), nil))
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/cities/x", nil))
	after := testutil.CollectAndCount(metrics.HttpRequestsTotal)

	if got := after - before; got != 3 {
		t.Fatalf("new series = %d, want 3", got)
	}
	if got := testutil.ToFloat64(metrics.HttpRequestsTotal.WithLabelValues(service, "GET", "GET /", "404")); got != 50 {
		t.Fatalf("catch-all count = %v, want 50", got)
	}
	if got := testutil.ToFloat64(metrics.HttpRequestsTotal.WithLabelValues(service, "GET", "GET /cities/{slug}", "200")); got != 50 {
		t.Fatalf("city count = %v, want 50", got)
	}
	if got := testutil.ToFloat64(metrics.HttpRequestsTotal.WithLabelValues(service, "DELETE", "unmatched", "405")); got != 1 {
		t.Fatalf("unmatched count = %v, want 1", got)
	}
}
