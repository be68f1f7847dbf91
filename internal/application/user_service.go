package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
	"github.com/gpolanco/finvesta/internal/domain/entity"
	repo "github.com/gpolanco/finvesta/internal/domain/repository"
	"github.com/gpolanco/finvesta/pkg/helpers"
	"github.com/gpolanco/finvesta/pkg/mailer"
)

// UserService handles registration, authentication, and profile management.
// Sessions are stored as redis hashes keyed by user id.
type UserService struct {
	Repo       repo.UserRepository
	Categories *CategoryService
	JWT        *helpers.JWTManager
	Redis      *redis.Client
	Logger     *logrus.Logger
	Mail       *helpers.RabbitPublisher
}

func NewUserService(r repo.UserRepository, categories *CategoryService, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger, mail *helpers.RabbitPublisher) *UserService {
	return &UserService{Repo: r, Categories: categories, JWT: jwt, Redis: rdb, Logger: logger, Mail: mail}
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type LoginResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type UpdateProfileInput struct {
	Name string
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// Register creates the user, seeds the default category set, and enqueues a
// welcome email. Seeding and email are best effort after the user row exists.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if existing, err := s.Repo.GetByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, domainerrors.ErrEmailTaken
	}
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: in.Email, Password: hash, Name: in.Name}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}

	if s.Categories != nil {
		if _, err := s.Categories.CreateDefaultCategoriesForUser(ctx, u.ID); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("default category seeding failed")
		}
	}
	if s.Mail != nil {
		job := mailer.EmailJob{
			To:       u.Email,
			Template: mailer.TemplateWelcome,
			Data:     map[string]any{"Name": u.Name, "Email": u.Email},
		}
		if err := s.Mail.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email enqueue failed")
		}
	}
	return u, nil
}

// Authenticate validates email/password without issuing tokens.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	return u, nil
}

// IssueTokens generates access/refresh tokens and records a session in Redis.
func (s *UserService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, sid)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, sid)
	if err != nil {
		return TokenPair{}, err
	}

	if s.Redis != nil {
		fields := map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"name":       u.Name,
			"sid":        sid,
			"logged_in":  true,
			"created_at": nowRFC3339(),
		}
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, 24*time.Hour)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResponse, TokenPair, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return &LoginResponse{UserID: u.ID, Email: u.Email, Name: u.Name}, pair, nil
}

func (s *UserService) Refresh(ctx context.Context, refreshToken string) (TokenPair, string, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, "", domainerrors.ErrInvalidCredentials
	}
	u, err := s.Repo.GetByID(ctx, claims.UserID)
	if err != nil || u == nil {
		return TokenPair{}, "", domainerrors.ErrInvalidCredentials
	}
	// The token's sid must match the live session.
	if s.Redis != nil {
		key := sessionKey(u.ID)
		data, rErr := s.Redis.HGetAll(ctx, key).Result()
		if rErr != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			return TokenPair{}, "", domainerrors.ErrInvalidCredentials
		}
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return TokenPair{}, "", err
	}
	return pair, u.ID, nil
}

// Logout drops the redis session so outstanding tokens stop validating.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	if s.Redis == nil {
		return nil
	}
	return helpers.RedisDel(ctx, s.Redis, sessionKey(userID))
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	return u, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"name":       u.Name,
			"updated_at": nowRFC3339(),
		})
		if ttl, tErr := s.Redis.TTL(ctx, key).Result(); tErr == nil && ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		if _, pErr := pipe.Exec(ctx); pErr != nil && s.Logger != nil {
			s.Logger.WithError(pErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}
	return u, nil
}
