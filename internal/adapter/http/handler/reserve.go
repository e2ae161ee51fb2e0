package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Temutjin2k/wtl-cabs/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/wtl-cabs/internal/adapter/http/view"
	"github.com/Temutjin2k/wtl-cabs/internal/domain/models"
	"github.com/Temutjin2k/wtl-cabs/internal/domain/types"
	"github.com/Temutjin2k/wtl-cabs/pkg/logger"
	wrap "github.com/Temutjin2k/wtl-cabs/pkg/logger/wrapper"
	"github.com/Temutjin2k/wtl-cabs/pkg/validator"
)

const (
	DistanceAlert     = "Please select pickup and drop locations to get the final price"
	expiredQuoteAlert = "Your quote has expired. Please search again."
	invalidQuoteAlert = "We could not read your quote. Please search again."

	maxFormBytes = 64 << 10
)

type Reserve struct {
	svc    ReservationService
	tokens QuoteTokens
	view   Renderer
	l      logger.Logger
}

func NewReserve(svc ReservationService, tokens QuoteTokens, view Renderer, l logger.Logger) *Reserve {
	return &Reserve{
		svc:    svc,
		tokens: tokens,
		view:   view,
		l:      l,
	}
}

// Submit handles the "Reserve Now" form of the search page. It answers with a 303 to
// the invoice page, or with the distance alert when the quote has no distance.
func (h *Reserve) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "reserve_submit")

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.notice(ctx, w, http.StatusBadRequest, invalidQuoteAlert, "/")
		return
	}

	req := dto.ReservationRequest{
		QuoteToken: r.PostForm.Get("quote_token"),
		Category:   strings.TrimSpace(r.PostForm.Get("category")),
	}
	v := validator.New()
	req.Validate(v)
	if !v.Valid() {
		h.l.Warn(ctx, "invalid reserve form", "errors", v.Errors)
		h.notice(ctx, w, http.StatusBadRequest, invalidQuoteAlert, "/")
		return
	}
	category, _ := types.ParseCategory(req.Category)
	ctx = wrap.WithCategory(ctx, category.String())

	q, quote, err := h.tokens.OpenQuote(ctx, req.QuoteToken)
	if err != nil {
		h.l.Warn(wrap.ErrorCtx(ctx, err), "rejected quote token", "error", err.Error())
		message := invalidQuoteAlert
		if errors.Is(err, types.ErrExpiredToken) {
			message = expiredQuoteAlert
		}
		h.notice(ctx, w, http.StatusBadRequest, message, "/")
		return
	}

	sel, _ := models.SelectionFromValues(r.PostForm)

	handoff, err := h.svc.Reserve(ctx, models.ReserveRequest{
		Query:     q,
		Quote:     quote,
		Category:  category,
		Selection: sel,
	})
	if err != nil {
		if errors.Is(err, types.ErrDistanceUnknown) {
			h.notice(ctx, w, http.StatusUnprocessableEntity, DistanceAlert, searchBackHref(q, r.PostForm))
			return
		}
		h.l.Error(wrap.ErrorCtx(ctx, err), "reservation failed", err)
		h.view.Render(ctx, w, http.StatusInternalServerError, view.PageError, dto.ErrorPage{
			Title:    "Something went wrong",
			Message:  view.FallbackMessage,
			HomeHref: "/",
		})
		return
	}

	http.Redirect(w, r, handoff.URL, http.StatusSeeOther)
}

// Create godoc
// @Summary      Reserve a cab
// @Description  Prices the chosen category from a quote token and returns the invoice hand-off URL
// @Tags         Reservations
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ReservationRequest  true  "Reservation"
// @Success      201      {object}  dto.ReservationResponse
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Failure      422      {object}  map[string]string
// @Router       /api/v1/reservations [post]
func (h *Reserve) Create(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "api_reserve")

	var req dto.ReservationRequest
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
	category, _ := types.ParseCategory(req.Category)
	ctx = wrap.WithCategory(ctx, category.String())

	q, quote, err := h.tokens.OpenQuote(ctx, req.QuoteToken)
	if err != nil {
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	sel := models.DefaultSelection()
	if req.Model != "" {
		if sel, err = sel.Select(category, req.Model); err != nil {
			errorResponse(w, GetCode(err), err.Error())
			return
		}
	}

	handoff, err := h.svc.Reserve(ctx, models.ReserveRequest{
		Query:     q,
		Quote:     quote,
		Category:  category,
		Selection: sel,
	})
	if err != nil {
		code := GetCode(err)
		if code == http.StatusInternalServerError {
			h.l.Error(wrap.ErrorCtx(ctx, err), "reservation failed", err)
			internalErrorResponse(w, "failed to reserve")
			return
		}
		message := err.Error()
		if errors.Is(err, types.ErrDistanceUnknown) {
			message = DistanceAlert
		}
		errorResponse(w, code, message)
		return
	}

	resp := dto.ReservationResponse{InvoiceURL: handoff.URL, Reservation: handoff.Reservation}
	if err := writeJSON(w, http.StatusCreated, envelope{"reservation": resp}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

// Verify godoc
// @Summary      Verify a hand-off token
// @Description  Returns the reservation sealed in an invoice hand-off token
// @Tags         Reservations
// @Accept       json
// @Produce      json
// @Param        request  body      dto.VerifyRequest  true  "Token"
// @Success      200      {object}  models.Reservation
// @Failure      401      {object}  map[string]string
// @Router       /api/v1/reservations/verify [post]
func (h *Reserve) Verify(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "api_verify_handoff")

	var req dto.VerifyRequest
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

	reservation, err := h.svc.Verify(ctx, req.Token)
	if err != nil {
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"reservation": reservation}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Reserve) notice(ctx context.Context, w http.ResponseWriter, status int, message, back string) {
	h.view.Render(ctx, w, status, view.PageNotice, dto.NoticePage{
		Title:    "Reservation",
		Message:  message,
		BackHref: back,
	})
}
