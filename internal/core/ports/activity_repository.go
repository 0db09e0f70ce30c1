package ports

import (
	"context"

	"github.com/planwise/scheduling-api/internal/core/domain"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	FindByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context) ([]domain.Activity, error)
	Update(ctx context.Context, id string, activity *domain.Activity) error
	Delete(ctx context.Context, id string) error
}
