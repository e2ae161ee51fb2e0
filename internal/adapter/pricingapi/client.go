package pricingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Temutjin2k/wtl-cabs/internal/domain/models"
	"github.com/Temutjin2k/wtl-cabs/internal/domain/types"
	"github.com/Temutjin2k/wtl-cabs/pkg/logger"
	wrap "github.com/Temutjin2k/wtl-cabs/pkg/logger/wrapper"
	"github.com/Temutjin2k/wtl-cabs/pkg/metrics"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected pricing api response status")
	ErrInvalidResponse  = errors.New("invalid pricing api response")
)

const maxBodySize = 1 << 20

// metric outcomes
const (
	outcomeSuccess          = "success"
	outcomeTransportError   = "transport_error"
	outcomeUnexpectedStatus = "unexpected_status"
	outcomeInvalidResponse  = "invalid_response"
)

// Client talks to the remote cab pricing endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	l        logger.Logger
}

// New creates a pricing client. A nil transport means http.DefaultTransport.
// Redirects are not followed so that a moved endpoint surfaces as ErrUnexpectedStatus.
func New(endpoint string, timeout time.Duration, transport http.RoundTripper, l logger.Logger) *Client {
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &Client{
		endpoint: endpoint,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		l: l,
	}
}

type payload struct {
	TripInfo json.RawMessage `json:"tripinfo"`
	Distance any             `json:"distance"`
	Days     any             `json:"days"`
	CabInfo  json.RawMessage `json:"cabinfo"`
}

// FetchQuote posts the trip to the pricing endpoint and builds a Quote from the response.
// Fields the response omits keep their defaults.
func (c *Client) FetchQuote(ctx context.Context, q models.TripQuery) (quote models.Quote, err error) {
	const op = "pricingapi.FetchQuote"
	ctx = wrap.WithAction(ctx, "pricing_fetch")

	start := time.Now()
	outcome := outcomeSuccess
	defer func() {
		metrics.RecordPricingRequest(outcome, time.Since(start))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(q.PricingForm().Encode()))
	if err != nil {
		outcome = outcomeTransportError
		return models.Quote{}, wrap.Error(ctx, fmt.Errorf("%s: failed to build request: %w", op, err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		outcome = outcomeTransportError
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		return models.Quote{}, wrap.Error(ctx, fmt.Errorf("%s: failed to make request to pricing api: %w", op, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = outcomeUnexpectedStatus
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		if resp.StatusCode == http.StatusMovedPermanently || resp.StatusCode == http.StatusFound {
			c.l.Warn(ctx, "pricing api redirected", "status", resp.StatusCode, "location", resp.Header.Get("Location"))
		}
		return models.Quote{}, wrap.Error(ctx, fmt.Errorf("%s: %w: %d", op, ErrUnexpectedStatus, resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		outcome = outcomeTransportError
		return models.Quote{}, wrap.Error(ctx, fmt.Errorf("%s: failed to read response body: %w", op, err))
	}

	quote, err = c.decode(ctx, body)
	if err != nil {
		outcome = outcomeInvalidResponse
		ctx = wrap.WithAction(ctx, "decode_pricing_payload")
		return models.Quote{}, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	c.l.Debug(wrap.WithAction(ctx, types.ActionPricingFetched), "pricing fetched",
		"distance", quote.Distance, "days", quote.Days, "catalog_size", len(quote.Catalog))

	return quote, nil
}

func (c *Client) decode(ctx context.Context, body []byte) (models.Quote, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var p payload
	if err := dec.Decode(&p); err != nil {
		return models.Quote{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if len(p.TripInfo) == 0 || string(p.TripInfo) == "null" {
		return models.Quote{}, fmt.Errorf("%w: tripinfo missing", ErrInvalidResponse)
	}

	var trips []models.TripInfo
	tripDec := json.NewDecoder(bytes.NewReader(p.TripInfo))
	tripDec.UseNumber()
	if err := tripDec.Decode(&trips); err != nil {
		return models.Quote{}, fmt.Errorf("%w: tripinfo is not a list: %v", ErrInvalidResponse, err)
	}

	quote := models.DefaultQuote()
	if len(trips) > 0 {
		quote.TripInfo = trips[0]
	}

	if d, err := number(p.Distance); err == nil && d > 0 {
		quote.Distance = d
	}
	if d, err := number(p.Days); err == nil && d > 0 {
		quote.Days = int(d)
	}

	if len(p.CabInfo) > 0 && string(p.CabInfo) != "null" {
		var catalog []models.CabEntry
		if err := json.Unmarshal(p.CabInfo, &catalog); err != nil {
			c.l.Warn(ctx, "ignoring malformed cabinfo", "error", err.Error())
		} else if len(catalog) > 0 {
			quote.Catalog = catalog
		}
	}

	return quote, nil
}

// number accepts the same shapes as a trip rate: JSON numbers and numeric strings.
func number(v any) (float64, error) {
	return models.TripInfo{"v": v}.Rate("v")
}
