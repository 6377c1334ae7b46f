package authservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/i2u-ai/platform/internal/domain"
	"github.com/i2u-ai/platform/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := NewMockRepo(ctrl)
	service := New(repo, &auth.HashService{}, &auth.JWTService{})
	return service, repo
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	service, repo := NewMock(t)

	in := RegisterInput{
		Login:           "founder",
		Password:        "secretpass",
		StakeholderType: domain.StakeholderEcosystem,
		Currency:        domain.CurrencyINR,
	}

	repo.EXPECT().FindByLogin(ctx, "founder").Return(nil, nil)
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.True(t, strings.HasPrefix(user.ReferralCode, "I2U-"))
			assert.Len(t, user.ReferralCode, 12)
			assert.Nil(t, user.ReferredBy)
			assert.Equal(t, domain.SubscriptionPending, user.SubscriptionStatus)
			assert.NotEqual(t, "secretpass", user.PasswordHash)
			user.ID = 1
			return user, nil
		})

	user, err := service.Register(ctx, in)
	assert.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, domain.StakeholderEcosystem, user.StakeholderType)
}

func TestService_RegisterWithReferralCode(t *testing.T) {
	ctx := context.Background()
	service, repo := NewMock(t)

	referrer := &domain.User{ID: 7, Login: "mentor", ReferralCode: "I2U-1A2B3C4D"}

	repo.EXPECT().FindByLogin(ctx, "founder").Return(nil, nil)
	repo.EXPECT().FindByReferralCode(ctx, "I2U-1A2B3C4D").Return(referrer, nil)
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user *domain.User) (*domain.User, error) {
			if assert.NotNil(t, user.ReferredBy) {
				assert.Equal(t, 7, *user.ReferredBy)
			}
			user.ID = 2
			return user, nil
		})

	user, err := service.Register(ctx, RegisterInput{
		Login:           "founder",
		Password:        "secretpass",
		StakeholderType: domain.StakeholderProfessional,
		Currency:        domain.CurrencyUSD,
		ReferralCode:    "I2U-1A2B3C4D",
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, user.ID)
}

func TestService_RegisterLoginTaken(t *testing.T) {
	ctx := context.Background()
	service, repo := NewMock(t)

	repo.EXPECT().FindByLogin(ctx, "founder").Return(&domain.User{ID: 1, Login: "founder"}, nil)

	user, err := service.Register(ctx, RegisterInput{Login: "founder", Password: "secretpass"})
	assert.ErrorIs(t, err, ErrLoginTaken)
	assert.Nil(t, user)
}

func TestService_RegisterUnknownReferralCode(t *testing.T) {
	ctx := context.Background()
	service, repo := NewMock(t)

	repo.EXPECT().FindByLogin(ctx, "founder").Return(nil, nil)
	repo.EXPECT().FindByReferralCode(ctx, "I2U-DEADBEEF").Return(nil, nil)

	user, err := service.Register(ctx, RegisterInput{
		Login:        "founder",
		Password:     "secretpass",
		ReferralCode: "I2U-DEADBEEF",
	})
	assert.ErrorIs(t, err, ErrUnknownReferralCode)
	assert.Nil(t, user)
}

func TestService_RegisterRepoError(t *testing.T) {
	ctx := context.Background()
	service, repo := NewMock(t)

	repo.EXPECT().FindByLogin(ctx, "founder").Return(nil, errors.New("db down"))

	user, err := service.Register(ctx, RegisterInput{Login: "founder", Password: "secretpass"})
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()
	service, repo := NewMock(t)

	hash, err := (&auth.HashService{}).HashPassword("secretpass")
	assert.NoError(t, err)
	stored := &domain.User{ID: 1, Login: "founder", PasswordHash: hash}

	repo.EXPECT().FindByLogin(ctx, "founder").Return(stored, nil)

	user, err := service.Authenticate(ctx, "founder", "secretpass")
	assert.NoError(t, err)
	assert.Equal(t, 1, user.ID)
}

func TestService_AuthenticateBadPassword(t *testing.T) {
	ctx := context.Background()
	service, repo := NewMock(t)

	hash, err := (&auth.HashService{}).HashPassword("secretpass")
	assert.NoError(t, err)
	stored := &domain.User{ID: 1, Login: "founder", PasswordHash: hash}

	repo.EXPECT().FindByLogin(ctx, "founder").Return(stored, nil)

	user, err := service.Authenticate(ctx, "founder", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, user)
}

func TestService_AuthenticateUnknownUser(t *testing.T) {
	ctx := context.Background()
	service, repo := NewMock(t)

	repo.EXPECT().FindByLogin(ctx, "ghost").Return(nil, nil)

	user, err := service.Authenticate(ctx, "ghost", "secretpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, user)
}

func TestService_GenerateToken(t *testing.T) {
	service, _ := NewMock(t)

	token, err := service.GenerateToken(1)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}
