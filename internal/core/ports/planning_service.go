package ports

import (
	"context"

	"github.com/planwise/scheduling-api/internal/core/domain"
)

type PlanningInput struct {
	Name      string
	CompanyID string
}

type PlanningService interface {
	List(ctx context.Context) ([]domain.Planning, error)
	Get(ctx context.Context, id string) (*domain.Planning, error)
	Create(ctx context.Context, input PlanningInput) (*domain.Planning, error)
	Update(ctx context.Context, id string, input PlanningInput) (*domain.Planning, error)
	Delete(ctx context.Context, id string) error

	AddActivity(ctx context.Context, planningID, activityID string) error
	RemoveActivity(ctx context.Context, planningID, activityID string) error
}
