package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/planwise/scheduling-api/internal/core/auth"
	"github.com/planwise/scheduling-api/internal/core/domain"
	"github.com/planwise/scheduling-api/internal/core/ports"
)

type userService struct {
	repo   ports.UserRepository
	hasher *auth.Hasher
	roles  ports.RoleInvalidator
	log    zerolog.Logger
}

// NewUserService returns a UserService implementation. roles may be nil when
// no role cache is wired.
func NewUserService(repo ports.UserRepository, hasher *auth.Hasher, roles ports.RoleInvalidator, log zerolog.Logger) ports.UserService {
	return &userService{repo: repo, hasher: hasher, roles: roles, log: log}
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldEmail := current.Email

	// Email moves must not collide with another account.
	if input.Email != "" && input.Email != current.Email {
		if other, err := s.repo.FindByEmail(ctx, input.Email); err == nil && other.ID != id {
			return nil, domain.ErrUserExists
		}
		current.Email = input.Email
	}
	if input.Surname != "" {
		current.Surname = input.Surname
	}
	if input.Name != "" {
		current.Name = input.Name
	}
	if input.Role != "" {
		if !domain.ValidRole(input.Role) {
			return nil, domain.ErrForbidden
		}
		current.Role = input.Role
	}
	if input.CompanyID != "" {
		current.CompanyID = input.CompanyID
	}
	if input.Password != "" {
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		current.PasswordHash = hash
	}
	current.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, id, current); err != nil {
		return nil, err
	}
	s.invalidateRole(ctx, oldEmail)
	if current.Email != oldEmail {
		s.invalidateRole(ctx, current.Email)
	}
	s.log.Info().Str("user_id", id).Msg("user updated")
	return current, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	// A cached role would keep the deleted account authorized until the
	// cache entry expired.
	s.invalidateRole(ctx, current.Email)
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *userService) invalidateRole(ctx context.Context, email string) {
	if s.roles == nil {
		return
	}
	if err := s.roles.Invalidate(ctx, email); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("role cache invalidation failed")
	}
}
