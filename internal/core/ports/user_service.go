package ports

import (
	"context"

	"github.com/planwise/scheduling-api/internal/core/domain"
)

// UpdateUserInput carries the mutable user fields. The password is
// optional: empty means keep the current hash.
type UpdateUserInput struct {
	Surname   string
	Name      string
	Email     string
	Password  string
	Role      string
	CompanyID string
}

// RoleInvalidator drops a cached role resolution after a mutation, so the
// change applies on the next request instead of after the cache TTL.
type RoleInvalidator interface {
	Invalidate(ctx context.Context, email string) error
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
