package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Temutjin2k/wtl-cabs/internal/domain/models"
	"github.com/Temutjin2k/wtl-cabs/internal/domain/types"
	wrap "github.com/Temutjin2k/wtl-cabs/pkg/logger/wrapper"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "wtl-site"

// token subjects
const (
	subjectQuote   = "quote"
	subjectHandoff = "handoff"
)

// QuoteClaims carry a fetched quote through the reserve form so the reservation
// is priced from the exact quote the visitor saw.
type QuoteClaims struct {
	Query    models.TripQuery  `json:"query"`
	TripInfo models.TripInfo   `json:"tripinfo,omitempty"`
	Distance float64           `json:"distance,omitempty"`
	Days     int               `json:"days,omitempty"`
	Catalog  []models.CabEntry `json:"cabinfo,omitempty"`
	jwt.RegisteredClaims
}

// HandoffClaims carry the priced selection to the invoice page.
type HandoffClaims struct {
	Reservation models.Reservation `json:"reservation"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret     string
	quoteTTL   time.Duration
	handoffTTL time.Duration
	now        func() time.Time
}

func NewTokenService(secret string, quoteTTL, handoffTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     secret,
		quoteTTL:   quoteTTL,
		handoffTTL: handoffTTL,
		now:        time.Now,
	}
}

func (s *TokenService) getSecret() string {
	return s.secret
}

// SignQuote seals the query and quote into a token for the reserve form.
func (s *TokenService) SignQuote(ctx context.Context, q models.TripQuery, quote models.Quote) (string, error) {
	ctx = wrap.WithAction(ctx, "sign_quote")

	claims := QuoteClaims{
		Query:            q,
		TripInfo:         quote.TripInfo,
		Distance:         quote.Distance,
		Days:             quote.Days,
		Catalog:          quote.Catalog,
		RegisteredClaims: s.registered(subjectQuote, s.quoteTTL),
	}

	token, err := s.signClaims(claims)
	if err != nil {
		return "", wrap.Error(ctx, fmt.Errorf("failed to sign quote token: %w", err))
	}
	return token, nil
}

// OpenQuote verifies a quote token and returns the sealed query and quote.
func (s *TokenService) OpenQuote(ctx context.Context, token string) (models.TripQuery, models.Quote, error) {
	ctx = wrap.WithAction(ctx, "open_quote")

	var claims QuoteClaims
	if err := s.parse(token, subjectQuote, &claims); err != nil {
		return models.TripQuery{}, models.Quote{}, wrap.Error(ctx, err)
	}

	quote := models.Quote{
		TripInfo: claims.TripInfo,
		Distance: claims.Distance,
		Days:     claims.Days,
		Catalog:  claims.Catalog,
	}
	if len(quote.Catalog) == 0 {
		quote.Catalog = models.DefaultCatalog()
	}

	return claims.Query.Normalize(), quote, nil
}

// SignHandoff seals a reservation for the invoice page.
func (s *TokenService) SignHandoff(ctx context.Context, r models.Reservation) (string, error) {
	ctx = wrap.WithAction(ctx, "sign_handoff")

	token, err := s.signClaims(HandoffClaims{
		Reservation:      r,
		RegisteredClaims: s.registered(subjectHandoff, s.handoffTTL),
	})
	if err != nil {
		return "", wrap.Error(ctx, fmt.Errorf("failed to sign handoff token: %w", err))
	}
	return token, nil
}

// OpenHandoff verifies a hand-off token and returns the reservation it carries.
func (s *TokenService) OpenHandoff(ctx context.Context, token string) (models.Reservation, error) {
	ctx = wrap.WithAction(ctx, "open_handoff")

	var claims HandoffClaims
	if err := s.parse(token, subjectHandoff, &claims); err != nil {
		return models.Reservation{}, wrap.Error(ctx, err)
	}
	return claims.Reservation, nil
}

func (s *TokenService) registered(subject string, ttl time.Duration) jwt.RegisteredClaims {
	issuedAt := s.now().UTC()
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
	}
}

func (s *TokenService) parse(token, subject string, claims jwt.Claims) error {
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, types.ErrInvalidToken
		}
		return []byte(s.getSecret()), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithSubject(subject),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return types.ErrExpiredToken
		}
		return types.ErrInvalidToken
	}
	if !parsed.Valid {
		return types.ErrInvalidToken
	}
	return nil
}

func (s *TokenService) signClaims(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.getSecret()))
}
