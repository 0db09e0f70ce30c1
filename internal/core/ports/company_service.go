package ports

import (
	"context"

	"github.com/planwise/scheduling-api/internal/core/domain"
)

type CompanyInput struct {
	Name    string
	Address string
}

type CompanyService interface {
	List(ctx context.Context) ([]domain.Company, error)
	Get(ctx context.Context, id string) (*domain.Company, error)
	Create(ctx context.Context, input CompanyInput) (*domain.Company, error)
	Update(ctx context.Context, id string, input CompanyInput) (*domain.Company, error)
	Delete(ctx context.Context, id string) error

	AddUser(ctx context.Context, companyID, userID string) error
	RemoveUser(ctx context.Context, companyID, userID string) error
	AddActivity(ctx context.Context, companyID, activityID string) error
	RemoveActivity(ctx context.Context, companyID, activityID string) error
}
