package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Temutjin2k/wtl-cabs/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/wtl-cabs/internal/adapter/http/view"
	"github.com/Temutjin2k/wtl-cabs/internal/domain/models"
	"github.com/Temutjin2k/wtl-cabs/internal/domain/types"
	"github.com/Temutjin2k/wtl-cabs/pkg/logger"
)

type renderCall struct {
	status int
	page   string
	data   any
}

type fakeRenderer struct {
	calls []renderCall
}

func (f *fakeRenderer) Render(_ context.Context, w http.ResponseWriter, status int, page string, data any) {
	f.calls = append(f.calls, renderCall{status: status, page: page, data: data})
	w.WriteHeader(status)
}

func (f *fakeRenderer) last(t *testing.T) renderCall {
	t.Helper()
	if len(f.calls) == 0 {
		t.Fatalf("nothing was rendered")
	}
	return f.calls[len(f.calls)-1]
}

type fakeTokens struct {
	query models.TripQuery
	quote models.Quote
	err   error
}

func (f *fakeTokens) SignQuote(context.Context, models.TripQuery, models.Quote) (string, error) {
	return "quote-token", nil
}

func (f *fakeTokens) OpenQuote(_ context.Context, token string) (models.TripQuery, models.Quote, error) {
	if f.err != nil {
		return models.TripQuery{}, models.Quote{}, f.err
	}
	return f.query, f.quote, nil
}

type fakeReservations struct {
	handoff models.Handoff
	err     error
	got     []models.ReserveRequest
}

func (f *fakeReservations) Reserve(_ context.Context, req models.ReserveRequest) (models.Handoff, error) {
	f.got = append(f.got, req)
	return f.handoff, f.err
}

func (f *fakeReservations) Verify(context.Context, string) (models.Reservation, error) {
	return models.Reservation{}, types.ErrInvalidToken
}

type fakeSearch struct {
	res models.SearchResults
	got []string
}

func (f *fakeSearch) Search(_ context.Context, q models.TripQuery, sel models.Selection, filter string) models.SearchResults {
	f.got = append(f.got, filter)
	res := f.res
	res.Query, res.Selection, res.Filter = q, sel, filter
	return res
}

func (f *fakeSearch) Placeholder(q models.TripQuery, sel models.Selection, filter string) models.SearchResults {
	return models.SearchResults{Query: q, Selection: sel, Filter: filter, Placeholder: true}
}

type fakeLanding struct{}

func (fakeLanding) DefaultCity() string { return "Cab-Service-Gondia" }

func (fakeLanding) Page(_ context.Context, slug, _, _ string) (models.LandingPage, error) {
	if slug != "Cab-Service-Gondia" {
		return models.LandingPage{}, fmt.Errorf("landing: %w", types.ErrCityNotFound)
	}
	return models.LandingPage{City: models.CityPage{Slug: slug}}, nil
}

var gondiaNagpur = models.TripQuery{TripType: types.OneWay, Pickup: "Gondia", Drop: "Nagpur", Date: "2025-01-10", Time: "09:00"}

func postForm(target string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestReserveSubmit_DistanceUnknownShowsAlert(t *testing.T) {
	rnd := &fakeRenderer{}
	svc := &fakeReservations{err: fmt.Errorf("reserve: %w", types.ErrDistanceUnknown)}
	h := NewReserve(svc, &fakeTokens{query: gondiaNagpur, quote: models.DefaultQuote()}, rnd, logger.Nop())

	rec := httptest.NewRecorder()
	h.Submit(rec, postForm("/reserve", url.Values{
		"quote_token": {"t"},
		"category":    {"Sedan"},
		"model.sedan": {"Honda Amaze"},
	}))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "" {
		t.Fatalf("unexpected redirect to %q", loc)
	}

	call := rnd.last(t)
	notice, ok := call.data.(dto.NoticePage)
	if !ok || call.page != view.PageNotice {
		t.Fatalf("rendered %q with %T, want notice page", call.page, call.data)
	}
	if notice.Message != DistanceAlert {
		t.Fatalf("message = %q, want %q", notice.Message, DistanceAlert)
	}
	if !strings.Contains(notice.BackHref, "model.sedan=Honda+Amaze") || !strings.Contains(notice.BackHref, "pickup=Gondia") {
		t.Fatalf("back link %q does not restore the search", notice.BackHref)
	}
}

func TestReserveSubmit_RedirectsToInvoice(t *testing.T) {
	rnd := &fakeRenderer{}
	svc := &fakeReservations{handoff: models.Handoff{URL: "/booking/invoice?modelName=Honda+Amaze"}}
	quote := models.DefaultQuote()
	quote.Distance = 150
	h := NewReserve(svc, &fakeTokens{query: gondiaNagpur, quote: quote}, rnd, logger.Nop())

	rec := httptest.NewRecorder()
	h.Submit(rec, postForm("/reserve", url.Values{
		"quote_token": {"t"},
		"category":    {"Sedan"},
		"model.sedan": {"Honda Amaze"},
	}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != svc.handoff.URL {
		t.Fatalf("Location = %q, want %q", loc, svc.handoff.URL)
	}
	if len(svc.got) != 1 {
		t.Fatalf("Reserve called %d times, want 1", len(svc.got))
	}
	req := svc.got[0]
	if req.Category != types.Sedan || req.Selection[types.Sedan] != "Honda Amaze" || req.Quote.Distance != 150 {
		t.Fatalf("reserve request = %+v", req)
	}
	if req.Selection[types.Hatchback] != "Maruti Wagonr" {
		t.Fatalf("other categories changed: %v", req.Selection)
	}
}

func TestReserveSubmit_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		tokens *fakeTokens
		form   url.Values
	}{
		{
			name:   "missing category",
			tokens: &fakeTokens{query: gondiaNagpur},
			form:   url.Values{"quote_token": {"t"}},
		},
		{
			name:   "unknown category",
			tokens: &fakeTokens{query: gondiaNagpur},
			form:   url.Values{"quote_token": {"t"}, "category": {"Bus"}},
		},
		{
			name:   "tampered token",
			tokens: &fakeTokens{err: types.ErrInvalidToken},
			form:   url.Values{"quote_token": {"t"}, "category": {"Sedan"}},
		},
		{
			name:   "expired token",
			tokens: &fakeTokens{err: types.ErrExpiredToken},
			form:   url.Values{"quote_token": {"t"}, "category": {"Sedan"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rnd := &fakeRenderer{}
			svc := &fakeReservations{}
			h := NewReserve(svc, tt.tokens, rnd, logger.Nop())

			rec := httptest.NewRecorder()
			h.Submit(rec, postForm("/reserve", tt.form))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if len(svc.got) != 0 {
				t.Fatalf("Reserve must not be called")
			}
			if rnd.last(t).page != view.PageNotice {
				t.Fatalf("rendered %q, want notice", rnd.last(t).page)
			}
		})
	}
}

func TestReserveCreate_DistanceUnknown(t *testing.T) {
	svc := &fakeReservations{err: types.ErrDistanceUnknown}
	h := NewReserve(svc, &fakeTokens{query: gondiaNagpur, quote: models.DefaultQuote()}, &fakeRenderer{}, logger.Nop())

	body := `{"quote_token":"t","category":"MUV"}`
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body)))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["error"] != DistanceAlert {
		t.Fatalf("error = %q, want %q", resp["error"], DistanceAlert)
	}
}

func TestReserveCreate_ModelOnMUVIsRejected(t *testing.T) {
	svc := &fakeReservations{}
	h := NewReserve(svc, &fakeTokens{query: gondiaNagpur}, &fakeRenderer{}, logger.Nop())

	body := `{"quote_token":"t","category":"MUV","model":"Innova"}`
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body)))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if len(svc.got) != 0 {
		t.Fatalf("Reserve must not be called")
	}
}

func TestReserveVerify_InvalidToken(t *testing.T) {
	h := NewReserve(&fakeReservations{}, &fakeTokens{}, &fakeRenderer{}, logger.Nop())

	rec := httptest.NewRecorder()
	h.Verify(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reservations/verify", strings.NewReader(`{"token":"x"}`)))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestSearchPage_SignsQuoteAndKeepsSelection(t *testing.T) {
	rnd := &fakeRenderer{}
	search := &fakeSearch{res: models.SearchResults{Quote: models.DefaultQuote()}}
	h := NewSearch(search, &fakeTokens{}, rnd, nil, WSConfig{}, logger.Nop())

	target := "/search?tripType=roundTrip&pickup=Gondia&drop=Nagpur&model.suv=Mahindra+Marazzo&filter=SUV"
	rec := httptest.NewRecorder()
	h.Page(rec, httptest.NewRequest(http.MethodGet, target, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	page, ok := rnd.last(t).data.(dto.SearchPage)
	if !ok {
		t.Fatalf("rendered %T, want dto.SearchPage", rnd.last(t).data)
	}
	if page.QuoteToken != "quote-token" {
		t.Fatalf("QuoteToken = %q", page.QuoteToken)
	}
	if page.Results.Query.TripType != types.RoundTrip || page.Results.Selection[types.SUV] != "Mahindra Marazzo" {
		t.Fatalf("results = %+v", page.Results)
	}
	if search.got[0] != "SUV" {
		t.Fatalf("filter = %q, want SUV", search.got[0])
	}

	found := false
	for _, f := range page.SelectionFields {
		if f.Name == "model.suv" && f.Value == "Mahindra Marazzo" {
			found = true
		}
	}
	if !found {
		t.Fatalf("selection fields %v miss the SUV model", page.SelectionFields)
	}
}

func TestBuildSearchPage_OptionLinksTouchOneCategory(t *testing.T) {
	sedan, _ := models.Profile(types.Sedan)
	res := models.SearchResults{
		Query:     gondiaNagpur,
		Selection: models.DefaultSelection(),
		Filter:    types.CategoryFilterAll,
		Cards: []models.CabCard{{
			Category:      types.Sedan,
			Profile:       sedan,
			SelectedModel: "Maruti Swift Dzire",
		}},
	}

	page := BuildSearchPage(res, "tok")

	if len(page.Cards) != 1 || len(page.Cards[0].Options) != len(sedan.Options) {
		t.Fatalf("cards = %+v", page.Cards)
	}
	for _, o := range page.Cards[0].Options {
		u, err := url.Parse(o.Href)
		if err != nil {
			t.Fatalf("bad href %q: %v", o.Href, err)
		}
		q := u.Query()
		if q.Get("model.sedan") != o.Name {
			t.Fatalf("option %q links to sedan model %q", o.Name, q.Get("model.sedan"))
		}
		if q.Get("model.hatchback") != "Maruti Wagonr" {
			t.Fatalf("option %q changed the hatchback model", o.Name)
		}
		if o.Selected != (o.Name == "Maruti Swift Dzire") {
			t.Fatalf("option %q selected = %v", o.Name, o.Selected)
		}
	}
	if len(page.Filters) != len(types.AllCategories)+1 || !page.Filters[0].Active {
		t.Fatalf("filters = %+v", page.Filters)
	}
}

func TestQuote_ValidatesRequest(t *testing.T) {
	h := NewSearch(&fakeSearch{}, &fakeTokens{}, &fakeRenderer{}, nil, WSConfig{}, logger.Nop())

	tests := []struct {
		name string
		body string
		want int
	}{
		{"bad trip type", `{"tripType":"weekly"}`, http.StatusUnprocessableEntity},
		{"unknown category", `{"tripType":"oneWay","category":"Bus"}`, http.StatusUnprocessableEntity},
		{"model not offered", `{"tripType":"oneWay","selection":{"Sedan":"Innova"}}`, http.StatusUnprocessableEntity},
		{"unknown field", `{"trip":"oneWay"}`, http.StatusBadRequest},
		{"empty body", ``, http.StatusBadRequest},
		{"valid", `{"tripType":"roundTrip","pickup":"Gondia","drop":"Pune"}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Quote(rec, httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(tt.body)))
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestLanding_Routes(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		slug     string
		wantCode int
		wantLoc  string
	}{
		{name: "home redirects", path: "/", wantCode: http.StatusFound, wantLoc: "/cities/Cab-Service-Gondia"},
		{name: "unknown path", path: "/nowhere", wantCode: http.StatusNotFound},
		{name: "city page", path: "/cities/Cab-Service-Gondia", slug: "Cab-Service-Gondia", wantCode: http.StatusOK},
		{name: "unknown city", path: "/cities/Atlantis", slug: "Atlantis", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rnd := &fakeRenderer{}
			h := NewLanding(fakeLanding{}, rnd, logger.Nop())

			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			if tt.slug == "" {
				h.Home(rec, r)
			} else {
				r.SetPathValue("slug", tt.slug)
				h.City(rec, r)
			}

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.wantLoc != "" && rec.Header().Get("Location") != tt.wantLoc {
				t.Fatalf("Location = %q, want %q", rec.Header().Get("Location"), tt.wantLoc)
			}
			if tt.wantCode == http.StatusNotFound && rnd.last(t).page != view.PageError {
				t.Fatalf("rendered %q, want error page", rnd.last(t).page)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("x: %w", types.ErrUnknownModel), http.StatusBadRequest},
		{types.ErrCategoryHasNoOptions, http.StatusBadRequest},
		{fmt.Errorf("x: %w", types.ErrExpiredToken), http.StatusUnauthorized},
		{types.ErrCityNotFound, http.StatusNotFound},
		{types.ErrDistanceUnknown, http.StatusUnprocessableEntity},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := GetCode(tt.err); got != tt.want {
			t.Fatalf("GetCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

type fixedConns int

func (c fixedConns) Len() int { return int(c) }

func TestHealthCheck_ReportsLiveConnections(t *testing.T) {
	h := NewHealth("site", "1.0.0", fixedConns(3), logger.Nop())

	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Status        string `json:"status"`
		WSConnections int    `json:"ws_connections"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "available" || body.WSConnections != 3 {
		t.Fatalf("unexpected body %+v", body)
	}
}
