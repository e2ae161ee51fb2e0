package reservation

import (
	"context"

	"github.com/Temutjin2k/wtl-cabs/internal/domain/models"
)

// Publisher announces reservation hand-offs to interested consumers.
type Publisher interface {
	PublishReservation(ctx context.Context, event models.ReservationEvent) error
}
