package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/planwise/scheduling-api/internal/core/domain"
	"github.com/planwise/scheduling-api/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

func (s *activityService) List(ctx context.Context) ([]domain.Activity, error) {
	return s.repo.List(ctx)
}

func (s *activityService) Get(ctx context.Context, id string) (*domain.Activity, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *activityService) Create(ctx context.Context, input ports.ActivityInput) (*domain.Activity, error) {
	now := time.Now().UTC()
	activity := &domain.Activity{
		Day:       input.Day,
		Start:     input.Start,
		End:       input.End,
		Label:     input.Label,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, activity)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("activity_id", created.ID).Str("day", created.Day).Msg("activity created")
	return created, nil
}

func (s *activityService) Update(ctx context.Context, id string, input ports.ActivityInput) (*domain.Activity, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Day != "" {
		current.Day = input.Day
	}
	if input.Start != "" {
		current.Start = input.Start
	}
	if input.End != "" {
		current.End = input.End
	}
	if input.Label != "" {
		current.Label = input.Label
	}
	current.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, id, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *activityService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
