package types

import "errors"

var (
	ErrNotFound     = errors.New("requested item not found")
	ErrCityNotFound = errors.New("city page not found")

	ErrUnknownCategory      = errors.New("unknown vehicle category")
	ErrUnknownModel         = errors.New("unknown model for category")
	ErrCategoryHasNoOptions = errors.New("category has no model options")

	ErrDistanceUnknown = errors.New("distance not established for this trip")
	ErrInvalidToken    = errors.New("invalid booking token")
	ErrExpiredToken    = errors.New("expired booking token")
)
