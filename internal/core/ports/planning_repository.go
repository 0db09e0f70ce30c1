package ports

import (
	"context"

	"github.com/planwise/scheduling-api/internal/core/domain"
)

type PlanningRepository interface {
	Create(ctx context.Context, planning *domain.Planning) (*domain.Planning, error)
	FindByID(ctx context.Context, id string) (*domain.Planning, error)
	List(ctx context.Context) ([]domain.Planning, error)
	Update(ctx context.Context, id string, planning *domain.Planning) error
	Delete(ctx context.Context, id string) error

	AddActivity(ctx context.Context, planningID, activityID string) error
	RemoveActivity(ctx context.Context, planningID, activityID string) error
}
