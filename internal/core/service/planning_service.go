package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/planwise/scheduling-api/internal/core/domain"
	"github.com/planwise/scheduling-api/internal/core/ports"
)

type planningService struct {
	repo      ports.PlanningRepository
	companies ports.CompanyRepository
	log       zerolog.Logger
}

// NewPlanningService returns a PlanningService implementation. The company
// repository is consulted so a planning always belongs to a real tenant.
func NewPlanningService(repo ports.PlanningRepository, companies ports.CompanyRepository, log zerolog.Logger) ports.PlanningService {
	return &planningService{repo: repo, companies: companies, log: log}
}

func (s *planningService) List(ctx context.Context) ([]domain.Planning, error) {
	return s.repo.List(ctx)
}

func (s *planningService) Get(ctx context.Context, id string) (*domain.Planning, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *planningService) Create(ctx context.Context, input ports.PlanningInput) (*domain.Planning, error) {
	if input.CompanyID != "" {
		if _, err := s.companies.FindByID(ctx, input.CompanyID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	planning := &domain.Planning{
		Name:        input.Name,
		CompanyID:   input.CompanyID,
		ActivityIDs: []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, planning)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("planning_id", created.ID).Str("company_id", created.CompanyID).Msg("planning created")
	return created, nil
}

func (s *planningService) Update(ctx context.Context, id string, input ports.PlanningInput) (*domain.Planning, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		current.Name = input.Name
	}
	if input.CompanyID != "" {
		if _, err := s.companies.FindByID(ctx, input.CompanyID); err != nil {
			return nil, err
		}
		current.CompanyID = input.CompanyID
	}
	current.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, id, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *planningService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *planningService) AddActivity(ctx context.Context, planningID, activityID string) error {
	return s.repo.AddActivity(ctx, planningID, activityID)
}

func (s *planningService) RemoveActivity(ctx context.Context, planningID, activityID string) error {
	return s.repo.RemoveActivity(ctx, planningID, activityID)
}
