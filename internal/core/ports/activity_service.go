package ports

import (
	"context"

	"github.com/planwise/scheduling-api/internal/core/domain"
)

type ActivityInput struct {
	Day   string
	Start string
	End   string
	Label string
}

type ActivityService interface {
	List(ctx context.Context) ([]domain.Activity, error)
	Get(ctx context.Context, id string) (*domain.Activity, error)
	Create(ctx context.Context, input ActivityInput) (*domain.Activity, error)
	Update(ctx context.Context, id string, input ActivityInput) (*domain.Activity, error)
	Delete(ctx context.Context, id string) error
}
