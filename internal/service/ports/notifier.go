package ports

import (
	"context"

	"github.com/mrwnh/eventreg/internal/domain"
)

// RegistrationNotifier delivers outbound mail. Implementations are
// fire-and-forget: a delivery failure is logged, never surfaced to the
// request that triggered it.
type RegistrationNotifier interface {
	NotifyRegistrationCreated(ctx context.Context, r *domain.Registration)
}
