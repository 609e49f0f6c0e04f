package ports

import (
	"context"

	"github.com/mrwnh/eventreg/internal/domain"
)

type RegistrationRepo interface {
	Create(ctx context.Context, r *domain.Registration) error
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	GetByEmail(ctx context.Context, email string) (*domain.Registration, error)
	List(ctx context.Context) ([]*domain.Registration, error)
	Update(ctx context.Context, r *domain.Registration) error
	UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) error
	// Delete removes the registration and all of its children (payment,
	// comments, check-ins) in one transaction, children first.
	Delete(ctx context.Context, id string) error
}
