package auth

import (
	"context"
	"errors"
	"log/slog"
	"mediaratings/proj/internal/domain/models"
	"mediaratings/proj/internal/lib/security"
	"mediaratings/proj/internal/storage"
	"strings"
	"time"

	"github.com/google/uuid"
)

type UserStorage interface {
	Insert(ctx context.Context, username, passwordHash string) (*models.User, error)
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type ProfileProvider interface {
	Ensure(ctx context.Context, userID uuid.UUID) error
}

type TokenProvider interface {
	Issue(userID uuid.UUID) (string, time.Time, error)
	Resolve(token string) (uuid.UUID, error)
}

type AuthService struct {
	log      *slog.Logger
	users    UserStorage
	profiles ProfileProvider
	tokens   TokenProvider
}

func New(
	log *slog.Logger,
	users UserStorage,
	profiles ProfileProvider,
	tokens TokenProvider,
) *AuthService {
	return &AuthService{
		log:      log,
		users:    users,
		profiles: profiles,
		tokens:   tokens,
	}
}

// Register creates a user together with an empty profile.
func (a *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	const op = "auth.AuthService.Register"
	username = strings.TrimSpace(username)
	log := a.log.With("op", op, "username", username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, ErrBlankCredentials
	}
	hash, err := security.HashPassword(password)
	if err != nil {
		log.Error("Error hashing password", "errMsg", err.Error())
		return nil, err
	}
	user, err := a.users.Insert(ctx, username, hash)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Debug("username taken")
			return nil, ErrUsernameTaken
		}
		log.Error("Error inserting user", "errMsg", err.Error())
		return nil, err
	}
	if err := a.profiles.Ensure(ctx, user.ID); err != nil {
		log.Error("Error creating profile", "errMsg", err.Error())
		return nil, err
	}
	log.Info("user registered", "user_id", user.ID)
	return user, nil
}

func (a *AuthService) Login(ctx context.Context, username, password string) (*models.AuthTokens, error) {
	const op = "auth.AuthService.Login"
	username = strings.TrimSpace(username)
	log := a.log.With("op", op, "username", username)
	user, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Debug("unknown username")
			return nil, ErrInvalidCredentials
		}
		log.Error("Error getting user", "errMsg", err.Error())
		return nil, err
	}
	if !security.VerifyPassword(user.PasswordHash, password) {
		log.Debug("wrong password")
		return nil, ErrInvalidCredentials
	}
	token, expiresAt, err := a.tokens.Issue(user.ID)
	if err != nil {
		log.Error("Error issuing token", "errMsg", err.Error())
		return nil, err
	}
	return &models.AuthTokens{AccessToken: token, ExpiresAt: expiresAt}, nil
}

// UserByToken resolves an access token to the user it was issued for.
func (a *AuthService) UserByToken(ctx context.Context, token string) (*models.User, error) {
	const op = "auth.AuthService.UserByToken"
	log := a.log.With("op", op)
	userID, err := a.tokens.Resolve(token)
	if err != nil {
		log.Debug("token rejected", "reason", err.Error())
		return nil, ErrInvalidToken
	}
	user, err := a.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Debug("token subject not found", "user_id", userID)
			return nil, ErrInvalidToken
		}
		log.Error("Error getting user", "errMsg", err.Error())
		return nil, err
	}
	return user, nil
}
