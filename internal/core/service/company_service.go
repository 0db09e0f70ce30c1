package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/planwise/scheduling-api/internal/core/domain"
	"github.com/planwise/scheduling-api/internal/core/ports"
)

type companyService struct {
	repo ports.CompanyRepository
	log  zerolog.Logger
}

// NewCompanyService returns a CompanyService implementation.
func NewCompanyService(repo ports.CompanyRepository, log zerolog.Logger) ports.CompanyService {
	return &companyService{repo: repo, log: log}
}

func (s *companyService) List(ctx context.Context) ([]domain.Company, error) {
	return s.repo.List(ctx)
}

func (s *companyService) Get(ctx context.Context, id string) (*domain.Company, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *companyService) Create(ctx context.Context, input ports.CompanyInput) (*domain.Company, error) {
	if _, err := s.repo.FindByName(ctx, input.Name); err == nil {
		return nil, domain.ErrCompanyExists
	} else if !errors.Is(err, domain.ErrCompanyNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	company := &domain.Company{
		Name:        input.Name,
		Address:     input.Address,
		UserIDs:     []string{},
		ActivityIDs: []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, company)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("company_id", created.ID).Str("name", created.Name).Msg("company created")
	return created, nil
}

func (s *companyService) Update(ctx context.Context, id string, input ports.CompanyInput) (*domain.Company, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" && input.Name != current.Name {
		if other, err := s.repo.FindByName(ctx, input.Name); err == nil && other.ID != id {
			return nil, domain.ErrCompanyExists
		}
		current.Name = input.Name
	}
	if input.Address != "" {
		current.Address = input.Address
	}
	current.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, id, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *companyService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("company_id", id).Msg("company deleted")
	return nil
}

func (s *companyService) AddUser(ctx context.Context, companyID, userID string) error {
	return s.repo.AddUser(ctx, companyID, userID)
}

func (s *companyService) RemoveUser(ctx context.Context, companyID, userID string) error {
	return s.repo.RemoveUser(ctx, companyID, userID)
}

func (s *companyService) AddActivity(ctx context.Context, companyID, activityID string) error {
	return s.repo.AddActivity(ctx, companyID, activityID)
}

func (s *companyService) RemoveActivity(ctx context.Context, companyID, activityID string) error {
	return s.repo.RemoveActivity(ctx, companyID, activityID)
}
