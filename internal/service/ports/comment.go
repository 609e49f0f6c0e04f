package ports

import (
	"context"

	"github.com/mrwnh/eventreg/internal/domain"
)

type CommentRepo interface {
	Create(ctx context.Context, c *domain.Comment) error
	ListByRegistration(ctx context.Context, registrationID string) ([]domain.Comment, error)
}
