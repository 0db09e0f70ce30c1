package ports

import (
	"context"

	"github.com/planwise/scheduling-api/internal/core/domain"
)

// CompanyRepository defines the persistence interface for companies,
// including the membership arrays mutated by push/pull operations.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	FindByID(ctx context.Context, id string) (*domain.Company, error)
	FindByName(ctx context.Context, name string) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	Update(ctx context.Context, id string, company *domain.Company) error
	Delete(ctx context.Context, id string) error

	AddUser(ctx context.Context, companyID, userID string) error
	RemoveUser(ctx context.Context, companyID, userID string) error
	AddActivity(ctx context.Context, companyID, activityID string) error
	RemoveActivity(ctx context.Context, companyID, activityID string) error
}
