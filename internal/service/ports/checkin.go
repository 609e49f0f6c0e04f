package ports

import (
	"context"

	"github.com/mrwnh/eventreg/internal/domain"
)

type CheckInRepo interface {
	Create(ctx context.Context, c *domain.CheckIn) error
	ListByRegistration(ctx context.Context, registrationID string) ([]domain.CheckIn, error)
}
