package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mrwnh/eventreg/internal/domain"
)

type PaymentRepo interface {
	// Create inserts the payment; the registration_id unique constraint
	// makes at-most-one-per-registration hold under concurrent requests
	// (surfaced as domain.ErrPaymentAlreadyExists).
	Create(ctx context.Context, p *domain.Payment) error
	GetByRegistration(ctx context.Context, registrationID string) (*domain.Payment, error)
	// MarkPaid performs the conditional UNPAID→PAID transition, applying
	// the gateway-reported outcome. It reports false when no row was in
	// UNPAID, which callers treat as the idempotent no-op case.
	MarkPaid(ctx context.Context, registrationID string, upd domain.PaidUpdate) (bool, error)
	// TransitionStatus flips status from→to in a single conditional
	// update; false means the payment was not in the from status.
	TransitionStatus(ctx context.Context, registrationID string, from, to domain.PaymentStatus) (bool, error)
	UpdateTicketType(ctx context.Context, registrationID string, t domain.TicketType, amount decimal.Decimal, currency string) error
}
