package ports

import (
	"context"

	"github.com/planwise/scheduling-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user records. It
// stores and returns the opaque password hash but never computes one.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
