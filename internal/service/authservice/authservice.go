package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/i2u-ai/platform/internal/domain"
	"github.com/i2u-ai/platform/internal/metrics"
	"github.com/i2u-ai/platform/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

var (
	ErrLoginTaken          = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnknownReferralCode = errors.New("unknown referral code")
)

type RegisterInput struct {
	Login           string
	Password        string
	StakeholderType domain.StakeholderType
	Currency        domain.Currency
	ReferralCode    string
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, in.Login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", in.Login))
		return nil, ErrLoginTaken
	}

	var referredBy *int
	if in.ReferralCode != "" {
		referrer, err := s.userRepo.FindByReferralCode(ctx, in.ReferralCode)
		if err != nil {
			return nil, err
		}
		if referrer == nil {
			return nil, ErrUnknownReferralCode
		}
		referredBy = &referrer.ID
	}

	hashedPassword, err := s.hashService.HashPassword(in.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		Login:              in.Login,
		PasswordHash:       hashedPassword,
		StakeholderType:    in.StakeholderType,
		Currency:           in.Currency,
		ReferralCode:       newReferralCode(),
		ReferredBy:         referredBy,
		SubscriptionStatus: domain.SubscriptionPending,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	metrics.Registry(metrics.Namespace).Registrations.WithLabelValues(string(in.StakeholderType)).Inc()
	zap.L().Info("user successfully registered", zap.String("login", in.Login))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func newReferralCode() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "I2U-" + id[:8]
}
