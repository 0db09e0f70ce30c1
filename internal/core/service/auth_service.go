package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/planwise/scheduling-api/internal/api/metrics"
	"github.com/planwise/scheduling-api/internal/core/auth"
	"github.com/planwise/scheduling-api/internal/core/domain"
	"github.com/planwise/scheduling-api/internal/core/ports"
)

// AuthService implements registration and login on top of the auth core.
type AuthService struct {
	repo          ports.UserRepository
	hasher        *auth.Hasher
	codec         *auth.TokenCodec
	authenticator *auth.Authenticator
	audit         ports.AuditSink
	log           zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	hasher *auth.Hasher,
	codec *auth.TokenCodec,
	audit ports.AuditSink,
	log zerolog.Logger,
) *AuthService {
	if audit == nil {
		audit = ports.NopAuditSink{}
	}
	return &AuthService{
		repo:          repo,
		hasher:        hasher,
		codec:         codec,
		authenticator: auth.NewAuthenticator(repo, hasher),
		audit:         audit,
		log:           log,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	role := input.Role
	if role == "" {
		role = domain.RoleMember
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	user := &domain.User{
		Surname:      input.Surname,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		CompanyID:    input.CompanyID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.emit(ports.AuditRegistered, created.Email, "")
	s.log.Info().Str("email", created.Email).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login authenticates the credentials and mints an access token carrying a
// role snapshot. Every failure within the core's control surfaces as
// domain.ErrInvalidCredentials so callers cannot probe which part failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	identity, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.emit(ports.AuditLoginFailure, email, err.Error())
		return "", nil, err
	}

	token, err := s.codec.Issue(identity.Email, identity.Role, 0)
	if err != nil {
		return "", nil, err
	}

	user, err := s.repo.FindByEmail(ctx, identity.Email)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.emit(ports.AuditLoginSuccess, identity.Email, "")
	return token, user, nil
}

func (s *AuthService) emit(kind, subject, reason string) {
	s.audit.Enqueue(ports.AuditEvent{
		ID:         uuid.NewString(),
		Kind:       kind,
		Subject:    subject,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	})
}
