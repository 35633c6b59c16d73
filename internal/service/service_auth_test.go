package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postboard/postboard/internal/config"
	"github.com/postboard/postboard/internal/logger"
	"github.com/postboard/postboard/internal/store"
	"github.com/postboard/postboard/internal/utils"
	"github.com/postboard/postboard/models"
)

type stubUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
}

func (s *stubUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return s.createUserFn(ctx, user)
}

func (s *stubUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.findUserByEmailFn(ctx, email)
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "postboard",
		TokenDuration: time.Hour,
	}
}

func TestRegisterUser_HashesPassword(t *testing.T) {
	var stored models.User
	repo := &stubUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := NewAuthService(repo, testAppConfig(), logger.Nop())

	user, err := svc.RegisterUser(context.Background(), models.Credentials{
		Email:    "a@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "a@example.com", stored.Email)
	assert.NotEqual(t, "secret-password", stored.PasswordHash)
	assert.True(t, utils.VerifyPassword("secret-password", stored.PasswordHash))
}

func TestRegisterUser_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(&stubUserRepository{}, testAppConfig(), logger.Nop())

	tests := []struct {
		name  string
		creds models.Credentials
	}{
		{name: "empty email", creds: models.Credentials{Password: "p"}},
		{name: "empty password", creds: models.Credentials{Email: "a@example.com"}},
		{name: "both empty", creds: models.Credentials{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.creds)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	repo := &stubUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := NewAuthService(repo, testAppConfig(), logger.Nop())

	_, err := svc.RegisterUser(context.Background(), models.Credentials{
		Email:    "a@example.com",
		Password: "p",
	})
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	repo := &stubUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email, PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(repo, testAppConfig(), logger.Nop())

	user, err := svc.Login(context.Background(), models.Credentials{
		Email:    "a@example.com",
		Password: "correct-password",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	repo := &stubUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email, PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(repo, testAppConfig(), logger.Nop())

	_, err = svc.Login(context.Background(), models.Credentials{
		Email:    "a@example.com",
		Password: "wrong-password",
	})
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &stubUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := NewAuthService(repo, testAppConfig(), logger.Nop())

	_, err := svc.Login(context.Background(), models.Credentials{
		Email:    "nobody@example.com",
		Password: "p",
	})
	require.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	svc := NewAuthService(&stubUserRepository{}, testAppConfig(), logger.Nop())

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestParseToken_Malformed(t *testing.T) {
	svc := NewAuthService(&stubUserRepository{}, testAppConfig(), logger.Nop())

	_, err := svc.ParseToken(context.Background(), "not-a-jwt-token")
	require.ErrorIs(t, err, ErrTokenMalformed)
}

func TestParseToken_WrongSignKey(t *testing.T) {
	foreign, err := utils.GenerateJWTToken("postboard", 42, time.Hour, "another-sign-key")
	require.NoError(t, err)

	svc := NewAuthService(&stubUserRepository{}, testAppConfig(), logger.Nop())

	_, err = svc.ParseToken(context.Background(), foreign.SignedString)
	require.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestParseToken_Expired(t *testing.T) {
	cfg := testAppConfig()
	expired, err := utils.GenerateJWTToken(cfg.TokenIssuer, 42, -time.Minute, cfg.TokenSignKey)
	require.NoError(t, err)

	svc := NewAuthService(&stubUserRepository{}, cfg, logger.Nop())

	_, err = svc.ParseToken(context.Background(), expired.SignedString)
	require.ErrorIs(t, err, ErrTokenExpired)
}
