package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/domain/dto"
	"github.com/pmajay/portal/internal/pkg/constants"
	"github.com/pmajay/portal/internal/pkg/logger"
	"github.com/pmajay/portal/internal/pkg/store"
	"github.com/pmajay/portal/internal/pkg/utils"
)

// sessionResolveTimeout bounds session determination at start-up: if the
// lookup hangs past this, the request proceeds unauthenticated instead of
// spinning forever.
const sessionResolveTimeout = 3 * time.Second

type Service struct {
	store          store.Store
	resolveTimeout time.Duration
}

func NewService(store store.Store) *Service {
	return &Service{store: store, resolveTimeout: sessionResolveTimeout}
}

func (svc *Service) Signup(ctx context.Context, request *dto.SignupRequest) (*domain.Session, string, error) {
	role, ok := domain.ParseRole(request.Role)
	if !ok {
		return nil, "", constants.ErrUnauthorized
	}
	if !role.SelfRegistrable() {
		return nil, "", constants.ErrForbidden
	}

	if _, err := svc.store.GetUserByEmail(ctx, request.Email); !errors.Is(err, constants.ErrDBNotFound) {
		if err == nil {
			return nil, "", constants.ErrEmailAlreadyTaken
		}
		return nil, "", err
	}

	user := &domain.User{
		ID:       uuid.New(),
		Email:    request.Email,
		FullName: request.FullName,
	}
	if err := user.UserPassword.Init(request.Password); err != nil {
		return nil, "", err
	}

	if err := svc.store.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	profile := &domain.Profile{UserID: user.ID, Role: role}
	if err := svc.store.CreateProfile(ctx, profile); err != nil {
		return nil, "", err
	}

	return svc.openSession(ctx, user, profile)
}

func (svc *Service) Login(ctx context.Context, request *dto.LoginRequest) (*domain.Session, string, error) {
	user, err := svc.store.GetUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, "", constants.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err = user.UserPassword.Validate(request.Password); err != nil {
		return nil, "", err
	}

	logger.Debugf(ctx, "login: userID: [%v]", user.ID)

	return svc.openSession(ctx, user, svc.profileOrDefault(ctx, user.ID))
}

func (svc *Service) Logout(ctx context.Context, token string) error {
	return svc.store.DeleteSession(ctx, token)
}

// Restore resolves a previously issued token into a session. The persisted
// session row is consulted first; a token missing there is validated once as
// a bare JWT. If the lookup does not resolve within the timeout the caller
// is treated as unauthenticated, never blocked.
func (svc *Service) Restore(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return &domain.Session{}, nil
	}

	lookupCtx, cancel := context.WithTimeout(ctx, svc.resolveTimeout)
	defer cancel()

	rec, err := svc.store.GetSessionByToken(lookupCtx, token)
	switch {
	case err == nil:
		user, userErr := svc.store.GetUserByID(lookupCtx, rec.UserID)
		if userErr != nil {
			if timedOut(userErr) {
				logger.Warnf(ctx, "session determination timed out, proceeding unauthenticated")
			}
			return &domain.Session{}, nil
		}
		return svc.buildSession(ctx, token, user, true), nil

	case timedOut(err):
		logger.Warnf(ctx, "session determination timed out, proceeding unauthenticated")
		return &domain.Session{}, nil

	case errors.Is(err, constants.ErrDBNotFound):
		// The persisted row is gone; fall back to the signed token itself.
		wrapper, parseErr := utils.ParseAuthToken(token)
		if parseErr != nil {
			return &domain.Session{}, nil
		}
		userID, idErr := uuid.Parse(wrapper.UserID)
		if idErr != nil {
			return &domain.Session{}, nil
		}
		user, userErr := svc.store.GetUserByID(lookupCtx, userID)
		if userErr != nil {
			return &domain.Session{}, nil
		}
		return svc.buildSession(ctx, token, user, true), nil

	default:
		logger.Errorf(ctx, "session lookup failed: %s", err.Error())
		return &domain.Session{}, nil
	}
}

func (svc *Service) openSession(ctx context.Context, user *domain.User, profile *domain.Profile) (*domain.Session, string, error) {
	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{
		UserID: user.ID.String(),
		Role:   string(profile.Role),
	})
	if err != nil {
		return nil, "", err
	}

	rec := &domain.SessionRecord{
		Token:     authToken,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	if err = svc.store.CreateSession(ctx, rec); err != nil {
		return nil, "", err
	}

	session := &domain.Session{
		Token:      authToken,
		User:       user,
		Profile:    profile,
		Role:       profile.Role,
		ResolvedAt: time.Now(),
	}

	return session, authToken, nil
}

func (svc *Service) buildSession(ctx context.Context, token string, user *domain.User, restored bool) *domain.Session {
	profile := svc.profileOrDefault(ctx, user.ID)
	return &domain.Session{
		Token:      token,
		User:       user,
		Profile:    profile,
		Role:       profile.Role,
		Restored:   restored,
		ResolvedAt: time.Now(),
	}
}

// profileOrDefault degrades gracefully: a failed profile fetch yields the
// bare auth user with the public role instead of failing the login.
func (svc *Service) profileOrDefault(ctx context.Context, userID uuid.UUID) *domain.Profile {
	profile, err := svc.store.GetProfileByUserID(ctx, userID)
	if err != nil {
		logger.Warnf(ctx, "profile fetch failed for user %s, falling back to public role: %s", userID, err.Error())
		return &domain.Profile{UserID: userID, Role: domain.RolePublic}
	}
	return profile
}

func timedOut(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
