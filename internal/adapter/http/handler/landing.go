package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/Temutjin2k/wtl-cabs/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/wtl-cabs/internal/adapter/http/view"
	"github.com/Temutjin2k/wtl-cabs/internal/domain/types"
	"github.com/Temutjin2k/wtl-cabs/pkg/logger"
	wrap "github.com/Temutjin2k/wtl-cabs/pkg/logger/wrapper"
)

type Landing struct {
	svc  LandingService
	view Renderer
	l    logger.Logger
}

func NewLanding(svc LandingService, view Renderer, l logger.Logger) *Landing {
	return &Landing{
		svc:  svc,
		view: view,
		l:    l,
	}
}

// Home sends visitors to the default city page.
func (h *Landing) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/cities/"+url.PathEscape(h.svc.DefaultCity()), http.StatusFound)
}

// City renders a city landing page. ?open= carries the FAQ accordion state and
// ?tab= the booking-form tab.
func (h *Landing) City(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "landing_city")
	slug := r.PathValue("slug")

	page, err := h.svc.Page(ctx, slug, r.URL.Query().Get("open"), r.URL.Query().Get("tab"))
	if err != nil {
		if errors.Is(err, types.ErrCityNotFound) {
			h.NotFound(w, r)
			return
		}
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to build landing page", err)
		h.view.Render(ctx, w, http.StatusInternalServerError, view.PageError, dto.ErrorPage{
			Title:    "Something went wrong",
			Message:  view.FallbackMessage,
			HomeHref: "/",
		})
		return
	}

	h.view.Render(ctx, w, http.StatusOK, view.PageLanding, page)
}

func (h *Landing) NotFound(w http.ResponseWriter, r *http.Request) {
	h.view.Render(r.Context(), w, http.StatusNotFound, view.PageError, dto.ErrorPage{
		Title:    "Page not found",
		Message:  "The page you are looking for does not exist.",
		HomeHref: "/",
	})
}
