package reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/Temutjin2k/wtl-cabs/internal/domain/models"
	"github.com/Temutjin2k/wtl-cabs/internal/domain/types"
	"github.com/Temutjin2k/wtl-cabs/internal/service/fare"
	"github.com/Temutjin2k/wtl-cabs/pkg/logger"
	wrap "github.com/Temutjin2k/wtl-cabs/pkg/logger/wrapper"
	"github.com/Temutjin2k/wtl-cabs/pkg/metrics"
)

const publishTimeout = 2 * time.Second

type Service struct {
	calc       fare.Calculator
	tokens     *TokenService
	invoiceURL string
	publisher  Publisher // optional
	l          logger.Logger
}

func New(calc fare.Calculator, tokens *TokenService, invoiceURL string, publisher Publisher, l logger.Logger) *Service {
	return &Service{
		calc:       calc,
		tokens:     tokens,
		invoiceURL: invoiceURL,
		publisher:  publisher,
		l:          l,
	}
}

// Reserve prices the chosen category from the request's quote and builds the
// invoice hand-off. A quote without an established distance is refused with
// types.ErrDistanceUnknown and no URL.
func (s *Service) Reserve(ctx context.Context, req models.ReserveRequest) (handoff models.Handoff, err error) {
	ctx = wrap.WithAction(ctx, types.ActionReservationHandoff)
	ctx = wrap.WithCategory(ctx, req.Category.String())

	defer func() {
		metrics.RecordReservation(req.Category.String(), err)
	}()

	if !req.Quote.DistanceKnown() {
		return models.Handoff{}, wrap.Error(ctx, types.ErrDistanceUnknown)
	}

	profile, ok := models.Profile(req.Category)
	if !ok {
		return models.Handoff{}, wrap.Error(ctx, fmt.Errorf("%w: %q", types.ErrUnknownCategory, req.Category))
	}

	entry := catalogEntry(req.Quote, req.Category)
	sel := req.Selection
	if sel == nil {
		sel = models.DefaultSelection()
	}
	name, image := sel.Chosen(req.Category, entry.ImageOrFallback())

	modelType := entry.Type
	if modelType == "" {
		modelType = profile.Title
	}
	category := entry.Category
	if category == "" {
		category = req.Category.String()
	}

	reservation := models.Reservation{
		Category:  types.Category(category),
		ModelType: modelType,
		ModelName: name,
		Image:     image,
		Price:     s.calc.Price(req.Category, req.Quote, req.Query.TripType),
		BaseRate:  s.calc.BaseRate(req.Category, req.Quote),
		Query:     req.Query,
		Distance:  req.Quote.Distance,
		Days:      req.Quote.Days,
		Features:  entry.Features,
		Rating:    entry.RatingOrDefault(),
		Reviews:   entry.ReviewsOrDefault(),
	}

	token, err := s.tokens.SignHandoff(ctx, reservation)
	if err != nil {
		return models.Handoff{}, wrap.Error(ctx, err)
	}

	invoiceURL, err := s.buildURL(reservation, token)
	if err != nil {
		return models.Handoff{}, wrap.Error(ctx, err)
	}

	s.publish(ctx, reservation)

	s.l.Info(ctx, "reservation handed off",
		"model", reservation.ModelName,
		"price", reservation.Price,
		"trip_type", reservation.Query.TripType.String(),
	)

	return models.Handoff{
		URL:         invoiceURL,
		Reservation: reservation,
	}, nil
}

// Verify opens a hand-off token issued by Reserve.
func (s *Service) Verify(ctx context.Context, token string) (models.Reservation, error) {
	return s.tokens.OpenHandoff(ctx, token)
}

// HandoffValues encodes a reservation as the invoice page query parameters.
func HandoffValues(r models.Reservation) (url.Values, error) {
	features := r.Features
	if features == nil {
		features = []string{}
	}
	featuresJSON, err := json.Marshal(features)
	if err != nil {
		return nil, fmt.Errorf("failed to encode features: %w", err)
	}

	v := url.Values{}
	v.Set("modelType", r.ModelType)
	v.Set("modelName", r.ModelName)
	v.Set("image", r.Image)
	v.Set("price", strconv.Itoa(r.Price))
	v.Set("basePrice", strconv.FormatFloat(r.BaseRate, 'f', -1, 64))
	v.Set("category", r.Category.String())
	v.Set("pickupLocation", r.Query.Pickup)
	v.Set("dropLocation", r.Query.Drop)
	v.Set("date", r.Query.Date)
	v.Set("Returndate", r.Query.ReturnDate)
	v.Set("time", r.Query.Time)
	v.Set("tripType", r.Query.TripType.String())
	v.Set("distance", strconv.FormatFloat(r.Distance, 'f', -1, 64))
	v.Set("days", strconv.Itoa(r.Days))
	v.Set("features", string(featuresJSON))
	v.Set("rating", strconv.FormatFloat(r.Rating, 'f', -1, 64))
	v.Set("reviews", strconv.Itoa(r.Reviews))
	return v, nil
}

func (s *Service) buildURL(r models.Reservation, token string) (string, error) {
	u, err := url.Parse(s.invoiceURL)
	if err != nil {
		return "", fmt.Errorf("invalid invoice url %q: %w", s.invoiceURL, err)
	}

	v, err := HandoffValues(r)
	if err != nil {
		return "", err
	}
	v.Set("token", token)

	// keep whatever the configured route already carries
	for key, values := range u.Query() {
		if !v.Has(key) {
			v[key] = values
		}
	}

	u.RawQuery = v.Encode()
	return u.String(), nil
}

// publish is best effort: failures are logged and never stop the hand-off.
func (s *Service) publish(ctx context.Context, r models.Reservation) {
	if s.publisher == nil {
		return
	}

	event := models.ReservationEvent{
		Category:  r.Category.String(),
		ModelName: r.ModelName,
		Price:     r.Price,
		TripType:  r.Query.TripType.String(),
		Pickup:    r.Query.Pickup,
		Drop:      r.Query.Drop,
		Date:      r.Query.Date,
		Distance:  r.Distance,
		Days:      r.Days,
		RequestID: wrap.FromContext(ctx).RequestID,
		Timestamp: time.Now().UTC(),
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.PublishReservation(pubCtx, event); err != nil {
		s.l.Error(wrap.ErrorCtx(ctx, err), "failed to publish reservation event", err)
	}
}

// catalogEntry finds the quote's catalog entry for category, matching type first and
// then category label. A missing entry yields an empty one so defaults apply.
func catalogEntry(quote models.Quote, category types.Category) models.CabEntry {
	if e, ok := quote.Entry(category.String()); ok {
		return e
	}
	for _, e := range quote.Catalog {
		if c, ok := types.ParseCategory(e.Type); ok && c == category {
			return e
		}
		if c, ok := types.ParseCategory(e.Category); ok && c == category {
			return e
		}
	}
	return models.CabEntry{}
}
