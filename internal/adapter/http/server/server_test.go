package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/Temutjin2k/wtl-cabs/config"
	"github.com/Temutjin2k/wtl-cabs/internal/adapter/http/view"
	"github.com/Temutjin2k/wtl-cabs/internal/adapter/pricingapi"
	"github.com/Temutjin2k/wtl-cabs/internal/service/fare"
	"github.com/Temutjin2k/wtl-cabs/internal/service/landing"
	"github.com/Temutjin2k/wtl-cabs/internal/service/reservation"
	"github.com/Temutjin2k/wtl-cabs/internal/service/search"
	"github.com/Temutjin2k/wtl-cabs/pkg/logger"
	ws "github.com/Temutjin2k/wtl-cabs/pkg/wsHub"
)

var quoteTokenRe = regexp.MustCompile(`name="quote_token" value="([^"]+)"`)

func newTestSite(t *testing.T, pricing http.HandlerFunc) http.Handler {
	t.Helper()

	upstream := httptest.NewServer(pricing)
	t.Cleanup(upstream.Close)

	log := logger.Nop()
	calc := fare.New()
	tokens := reservation.NewTokenService("test-secret", time.Minute, time.Minute)

	renderer, err := view.New(log)
	if err != nil {
		t.Fatalf("view.New() error = %v", err)
	}
	hub := ws.NewConnHub("test", log)
	t.Cleanup(hub.Close)

	var cfg config.Config
	cfg.Service.Name = "test"
	cfg.Server.Port = "0"

	api, err := New(cfg, Services{
		Landing:     landing.New("Cab-Service-Gondia", time.Second, log),
		Search:      search.New(pricingapi.New(upstream.URL, time.Second, nil, log), calc, log),
		Tokens:      tokens,
		Reservation: reservation.New(calc, tokens, "/booking/invoice", nil, log),
		View:        renderer,
		Hub:         hub,
	}, log)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return api.Handler()
}

func noRedirect(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

func TestRoutes(t *testing.T) {
	srv := httptest.NewServer(newTestSite(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := &http.Client{CheckRedirect: noRedirect}

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusFound},
		{http.MethodGet, "/cities/Cab-Service-Gondia", http.StatusOK},
		{http.MethodGet, "/cities/Atlantis", http.StatusNotFound},
		{http.MethodGet, "/nowhere", http.StatusNotFound},
		{http.MethodGet, "/search?pickup=Gondia&drop=Nagpur", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodDelete, "/search", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		req, _ := http.NewRequest(tt.method, srv.URL+tt.path, nil)
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("%s %s: %v", tt.method, tt.path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != tt.want {
			t.Fatalf("%s %s: status = %d, want %d", tt.method, tt.path, resp.StatusCode, tt.want)
		}
		if resp.Header.Get("X-Request-ID") == "" {
			t.Fatalf("%s %s: missing request id", tt.method, tt.path)
		}
	}
}

func TestSearchThenReserve(t *testing.T) {
	srv := httptest.NewServer(newTestSite(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tripinfo":[{"hatchback":10,"sedan":12,"sedanpremium":14,"suv":16,"suvplus":20}],"distance":300,"days":2}`))
	}))
	defer srv.Close()

	client := &http.Client{CheckRedirect: noRedirect}

	resp, err := client.Get(srv.URL + "/search?tripType=roundTrip&pickup=Gondia&drop=Nagpur&date=2026-10-20&time=09:00&Returndate=2026-10-22")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	var body bytes.Buffer
	_, _ = body.ReadFrom(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("search status = %d", resp.StatusCode)
	}
	if !strings.Contains(body.String(), "7,200") {
		t.Fatalf("search page does not show the sedan round trip price")
	}
	m := quoteTokenRe.FindStringSubmatch(body.String())
	if m == nil {
		t.Fatalf("search page has no quote token")
	}

	resp, err = client.PostForm(srv.URL+"/reserve", url.Values{
		"quote_token": {m[1]},
		"category":    {"Sedan"},
		"model.sedan": {"Honda Amaze"},
	})
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("reserve status = %d, want 303", resp.StatusCode)
	}
	loc, err := url.Parse(resp.Header.Get("Location"))
	if err != nil {
		t.Fatalf("bad location: %v", err)
	}
	q := loc.Query()
	if loc.Path != "/booking/invoice" || q.Get("price") != "7200" || q.Get("modelName") != "Honda Amaze" || q.Get("distance") != "300" {
		t.Fatalf("unexpected hand-off %s", loc)
	}
}

func TestReserveWithoutDistanceShowsAlert(t *testing.T) {
	srv := httptest.NewServer(newTestSite(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tripinfo":[{"sedan":12}]}`))
	}))
	defer srv.Close()

	client := &http.Client{CheckRedirect: noRedirect}

	resp, err := client.Get(srv.URL + "/search?pickup=Gondia&drop=Nagpur")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	var body bytes.Buffer
	_, _ = body.ReadFrom(resp.Body)
	resp.Body.Close()

	m := quoteTokenRe.FindStringSubmatch(body.String())
	if m == nil {
		t.Fatalf("search page has no quote token")
	}

	resp, err = client.PostForm(srv.URL+"/reserve", url.Values{"quote_token": {m[1]}, "category": {"Sedan"}})
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	body.Reset()
	_, _ = body.ReadFrom(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("reserve status = %d, want 422", resp.StatusCode)
	}
	if resp.Header.Get("Location") != "" {
		t.Fatalf("reserve redirected to %q", resp.Header.Get("Location"))
	}
	if !strings.Contains(body.String(), "Please select pickup and drop locations to get the final price") {
		t.Fatalf("alert missing from %q", body.String())
	}
}
