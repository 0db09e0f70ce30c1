package ports

import (
	"context"

	"github.com/planwise/scheduling-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at account creation.
type RegisterInput struct {
	Surname   string
	Name      string
	Email     string
	Password  string
	Role      string
	CompanyID string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
