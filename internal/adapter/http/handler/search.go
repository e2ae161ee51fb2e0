package handler

import (
	"net/http"
	"net/url"
	"sort"

	"github.com/Temutjin2k/wtl-cabs/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/wtl-cabs/internal/adapter/http/view"
	"github.com/Temutjin2k/wtl-cabs/internal/domain/models"
	"github.com/Temutjin2k/wtl-cabs/internal/domain/types"
	"github.com/Temutjin2k/wtl-cabs/pkg/logger"
	wrap "github.com/Temutjin2k/wtl-cabs/pkg/logger/wrapper"
	"github.com/Temutjin2k/wtl-cabs/pkg/validator"
	ws "github.com/Temutjin2k/wtl-cabs/pkg/wsHub"
	"github.com/gorilla/websocket"
)

const paramFilter = "filter"

type Search struct {
	svc    SearchService
	tokens QuoteTokens
	view   Renderer
	hub    *ws.ConnectionHub
	ws     WSConfig
	l      logger.Logger

	upgrader websocket.Upgrader
}

func NewSearch(svc SearchService, tokens QuoteTokens, view Renderer, hub *ws.ConnectionHub, wsCfg WSConfig, l logger.Logger) *Search {
	return &Search{
		svc:    svc,
		tokens: tokens,
		view:   view,
		hub:    hub,
		ws:     wsCfg,
		l:      l,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

// Page renders the search results of one trip. The pricing API is called once per
// request and every price on the page derives from that single quote.
func (h *Search) Page(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "search_page")
	values := r.URL.Query()

	q := models.TripQueryFromValues(values)
	sel, errs := models.SelectionFromValues(values)
	for _, err := range errs {
		h.l.Warn(ctx, "ignoring invalid model selection", "error", err.Error())
	}

	res := h.svc.Search(ctx, q, sel, values.Get(paramFilter))

	token, err := h.tokens.SignQuote(ctx, q, res.Quote)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to sign quote", err)
		h.view.Render(ctx, w, http.StatusInternalServerError, view.PageError, dto.ErrorPage{
			Title:    "Something went wrong",
			Message:  view.FallbackMessage,
			HomeHref: "/",
		})
		return
	}

	h.view.Render(ctx, w, http.StatusOK, view.PageSearch, BuildSearchPage(res, token))
}

// Quote godoc
// @Summary      Quote a trip
// @Description  Fetches live pricing once and returns the price of every cab category with a signed quote token
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        request  body      dto.QuoteRequest  true  "Trip"
// @Success      200      {object}  dto.QuoteResponse
// @Failure      400      {object}  map[string]string
// @Failure      422      {object}  map[string]string
// @Router       /api/v1/quotes [post]
func (h *Search) Quote(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "api_quote")

	var req dto.QuoteRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	req.Validate(v)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	q := req.TripQuery()
	res := h.svc.Search(ctx, q, req.ToSelection(), req.Category)

	token, err := h.tokens.SignQuote(ctx, q, res.Quote)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to sign quote", err)
		internalErrorResponse(w, "failed to sign quote")
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"quote": dto.NewQuoteResponse(res, token)}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

// BuildSearchPage derives the links and hidden fields of the search page from its results.
func BuildSearchPage(res models.SearchResults, token string) dto.SearchPage {
	filter := res.Filter

	cards := make([]dto.CardView, 0, len(res.Cards))
	for _, card := range res.Cards {
		cv := dto.CardView{CabCard: card}
		for _, o := range card.Profile.Options {
			next, err := res.Selection.Select(card.Category, o.Name)
			if err != nil {
				continue
			}
			cv.Options = append(cv.Options, dto.OptionLink{
				Name:     o.Name,
				Image:    o.Image,
				Href:     searchHref(res.Query, next, filter) + "#" + card.Profile.PriceKey,
				Selected: o.Name == card.SelectedModel,
			})
		}
		cards = append(cards, cv)
	}

	labels := []string{types.CategoryFilterAll}
	for _, c := range types.AllCategories {
		labels = append(labels, c.String())
	}
	filters := make([]dto.FilterLink, 0, len(labels))
	for _, label := range labels {
		filters = append(filters, dto.FilterLink{
			Label:  label,
			Href:   searchHref(res.Query, res.Selection, label),
			Active: label == filter,
		})
	}

	selValues := res.Selection.Values()
	names := make([]string, 0, len(selValues))
	for name := range selValues {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]dto.HiddenField, 0, len(names))
	for _, name := range names {
		fields = append(fields, dto.HiddenField{Name: name, Value: selValues.Get(name)})
	}

	return dto.SearchPage{
		Results:         res,
		Cards:           cards,
		Filters:         filters,
		QuoteToken:      token,
		SelectionFields: fields,
	}
}

func searchHref(q models.TripQuery, sel models.Selection, filter string) string {
	v := q.SearchValues()
	for key, values := range sel.Values() {
		v[key] = values
	}
	if filter != "" && filter != types.CategoryFilterAll {
		v.Set(paramFilter, filter)
	}
	return "/search?" + v.Encode()
}

// searchBackHref rebuilds the search page a reservation came from.
func searchBackHref(q models.TripQuery, form url.Values) string {
	sel, _ := models.SelectionFromValues(form)
	return searchHref(q, sel, "")
}
