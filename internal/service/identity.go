package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/paani/remedial-learning-app/internal/errdefs"
	"github.com/paani/remedial-learning-app/internal/model"
	"github.com/paani/remedial-learning-app/internal/validation"
	"github.com/paani/remedial-learning-app/pkg/logging"
	"go.uber.org/zap"
)

const sessionCachePrefix = "session:"

type IdentityService struct {
	users          UserRepository
	sessions       SessionRepository
	hasher         PasswordHasher
	cache          SessionCache
	cacheTTL       time.Duration
	sessionTTLDays int
}

// NewIdentityService accepts a nil cache; sessions are then always read from
// the repository.
func NewIdentityService(
	users UserRepository,
	sessions SessionRepository,
	hasher PasswordHasher,
	cache SessionCache,
	cacheTTL time.Duration,
	sessionTTLDays int,
) *IdentityService {
	return &IdentityService{
		users:          users,
		sessions:       sessions,
		hasher:         hasher,
		cache:          cache,
		cacheTTL:       cacheTTL,
		sessionTTLDays: sessionTTLDays,
	}
}

func (s *IdentityService) Register(ctx context.Context, input *model.RegisterInput) (*model.User, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, &model.RepositoryCreateUserInput{
		Username:     input.Username,
		PasswordHash: digest,
		Role:         input.Role,
		FullName:     input.FullName,
	})
	if err != nil {
		if errors.Is(err, errdefs.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", input.Username, errdefs.ErrDuplicateUser)
		}
		return nil, err
	}

	return user, nil
}

// Authenticate does not tell an unknown user apart from a wrong password.
func (s *IdentityService) Authenticate(ctx context.Context, username string, password string) (model.Role, error) {
	user, err := s.users.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return "", errdefs.ErrAuthentication
		}
		return "", err
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return "", errdefs.ErrAuthentication
	}

	return user.Role, nil
}

func (s *IdentityService) Login(ctx context.Context, input *model.LoginInput) (*model.Session, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	role, err := s.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	if input.Role != "" && input.Role != role {
		return nil, errdefs.ErrAuthentication
	}

	return s.CreateSession(ctx, input.Username, role, s.sessionTTLDays)
}

// CreateSession purges every expired session before issuing a new token.
func (s *IdentityService) CreateSession(ctx context.Context, username string, role model.Role, ttlDays int) (*model.Session, error) {
	if ttlDays < 1 {
		return nil, fmt.Errorf("session ttl %d days: %w", ttlDays, errdefs.ErrValidation)
	}

	now := NowFunc()
	purged, err := s.sessions.DeleteExpiredSessions(ctx, now)
	if err != nil {
		return nil, err
	}
	if purged > 0 {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Debug(ctx, "purged expired sessions", zap.Int64("count", purged))
		}
	}

	token, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.CreateSession(ctx, &model.RepositoryCreateSessionInput{
		SessionId: token.String(),
		Username:  username,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.AddDate(0, 0, ttlDays),
	})
	if err != nil {
		return nil, err
	}

	s.cacheSession(ctx, session, now)
	return session, nil
}

func (s *IdentityService) ValidateSession(ctx context.Context, token string) (*model.Session, error) {
	if token == "" {
		return nil, errdefs.ErrAuthentication
	}
	now := NowFunc()

	if session, ok := s.cachedSession(ctx, token); ok {
		if session.ActiveAt(now) {
			return session, nil
		}
		s.cache.Delete(ctx, sessionCachePrefix+token)
		return nil, errdefs.ErrAuthentication
	}

	session, err := s.sessions.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return nil, errdefs.ErrAuthentication
		}
		return nil, err
	}

	if !session.ActiveAt(now) {
		return nil, errdefs.ErrAuthentication
	}

	s.cacheSession(ctx, session, now)
	return session, nil
}

// DestroySession is idempotent.
func (s *IdentityService) DestroySession(ctx context.Context, token string) error {
	if err := s.sessions.DeleteSession(ctx, token); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Delete(ctx, sessionCachePrefix+token)
	}
	return nil
}

func (s *IdentityService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpiredSessions(ctx, NowFunc())
}

func (s *IdentityService) GetUser(ctx context.Context, username string) (*model.UserPublic, error) {
	user, err := s.users.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}

	return &model.UserPublic{
		Username: user.Username,
		Role:     user.Role,
		FullName: user.FullName,
	}, nil
}

func (s *IdentityService) cachedSession(ctx context.Context, token string) (*model.Session, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, ok := s.cache.Get(ctx, sessionCachePrefix+token)
	if !ok {
		return nil, false
	}
	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Warn(ctx, "dropping undecodable cached session", zap.Error(err))
		}
		s.cache.Delete(ctx, sessionCachePrefix+token)
		return nil, false
	}
	return &session, true
}

// cacheSession never keeps an entry past the session's own expiry.
func (s *IdentityService) cacheSession(ctx context.Context, session *model.Session, now time.Time) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	ttl := min(s.cacheTTL, session.ExpiresAt.Sub(now))
	if ttl <= 0 {
		return
	}
	data, err := json.Marshal(session)
	if err != nil {
		return
	}
	s.cache.Set(ctx, sessionCachePrefix+session.SessionId, data, ttl)
}
