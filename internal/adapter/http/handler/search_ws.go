package handler

import (
	"net/http"
	"time"

	"github.com/Temutjin2k/wtl-cabs/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/wtl-cabs/internal/domain/models"
	wrap "github.com/Temutjin2k/wtl-cabs/pkg/logger/wrapper"
	ws "github.com/Temutjin2k/wtl-cabs/pkg/wsHub"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type WSConfig struct {
	WriteTimeout time.Duration
	PingInterval time.Duration
}

// HandleWS streams a live quote: the placeholder results right away, then the priced
// results once the pricing API answers. Closing the socket cancels the fetch.
func (h *Search) HandleWS(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "search_ws")
	values := r.URL.Query()

	q := models.TripQueryFromValues(values)
	sel, _ := models.SelectionFromValues(values)
	filter := values.Get(paramFilter)

	wsConn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader already replied with an HTTP error
		h.l.Warn(ctx, "websocket upgrade failed", "error", err.Error())
		return
	}

	conn := ws.NewConn(ctx, uuid.New(), wsConn, h.ws.WriteTimeout)
	if err := h.hub.Add(conn); err != nil {
		h.l.Warn(ctx, "refusing websocket connection", "error", err.Error())
		_ = conn.CloseWithMessage(websocket.CloseTryAgainLater, "shutting down")
		return
	}
	defer h.hub.Delete(conn.ID())

	go func() {
		// nothing is expected from the client; reading notices when it leaves
		_ = conn.Listen(nil)
	}()
	if h.ws.PingInterval > 0 {
		go keepAlive(conn, h.ws.PingInterval)
	}

	placeholder := dto.NewQuoteResponse(h.svc.Placeholder(q, sel, filter), "")
	if err := conn.Send(dto.SearchMessage{Type: dto.MessagePlaceholder, Results: &placeholder}); err != nil {
		h.l.Debug(ctx, "client left before placeholder", "error", err.Error())
		return
	}

	fetchCtx := conn.Context()
	res := h.svc.Search(fetchCtx, q, sel, filter)
	if fetchCtx.Err() != nil {
		h.l.Debug(ctx, "client left before quote arrived")
		return
	}

	token, err := h.tokens.SignQuote(ctx, q, res.Quote)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to sign quote", err)
		_ = conn.Send(dto.SearchMessage{Type: dto.MessageError, Error: "failed to price trip"})
		return
	}

	priced := dto.NewQuoteResponse(res, token)
	if err := conn.Send(dto.SearchMessage{Type: dto.MessageQuote, Results: &priced}); err != nil {
		h.l.Debug(ctx, "client left before quote", "error", err.Error())
		return
	}

	_ = conn.CloseWithMessage(websocket.CloseNormalClosure, "done")
}

// keepAlive pings the peer while a slow fetch is in flight and closes the
// connection once the peer stops answering.
func keepAlive(conn *ws.Conn, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-conn.Context().Done():
			return
		case <-ticker.C:
			if err := conn.Ping(); err != nil {
				_ = conn.Close()
				return
			}
		}
	}
}
