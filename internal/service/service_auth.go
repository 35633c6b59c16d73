// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/postboard/postboard/internal/config"
	"github.com/postboard/postboard/internal/logger"
	"github.com/postboard/postboard/internal/store"
	"github.com/postboard/postboard/internal/utils"
	"github.com/postboard/postboard/models"
)

type authService struct {
	userRepository store.UserRepository
	tokenSignKey   string
	tokenIssuer    string
	tokenDuration  time.Duration
	logger         *logger.Logger
}

// NewAuthService creates an AuthService backed by the given user repository.
// Token parameters (sign key, issuer, lifetime) come from the application
// config and are fixed for the lifetime of the service.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new account for the given credentials. The password
// is stored only as a salted bcrypt digest. A duplicate email surfaces as
// store.ErrEmailAlreadyExists.
func (s *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := s.logger

	if creds.Email == "" || creds.Password == "" {
		return models.User{}, fmt.Errorf("email and password are required: %w", ErrInvalidDataProvided)
	}

	passwordHash, err := utils.HashPassword(creds.Password)
	if err != nil {
		log.Err(err).Str("func", "RegisterUser").Msg("error occurred during hashing password")
		return models.User{}, fmt.Errorf("error occurred during hashing password: %w", err)
	}

	user, err := s.userRepository.CreateUser(ctx, models.User{
		Email:        creds.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("func", "RegisterUser").Msg("error occurred during creating user")
		return models.User{}, fmt.Errorf("error occurred during creating user: %w", err)
	}

	return user, nil
}

// Login verifies the given credentials against the stored account. A missing
// account surfaces as store.ErrUserNotFound and a mismatched password as
// ErrWrongPassword; callers should present both identically to the client.
func (s *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := s.logger

	if creds.Email == "" || creds.Password == "" {
		return models.User{}, fmt.Errorf("email and password are required: %w", ErrInvalidDataProvided)
	}

	user, err := s.userRepository.FindUserByEmail(ctx, creds.Email)
	if err != nil {
		log.Err(err).Str("func", "Login").Msg("error occurred during finding user by email")
		return models.User{}, fmt.Errorf("error occurred during finding user by email: %w", err)
	}

	if !utils.VerifyPassword(creds.Password, user.PasswordHash) {
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
func (s *authService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	log := s.logger

	token, err := utils.GenerateJWTToken(s.tokenIssuer, user.UserID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "CreateToken").Msg("error occurred during generating JWT token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates the raw token string and returns the parsed token with
// the user ID extracted from the subject claim. Verification failures are
// mapped onto the service sentinel errors so callers can match them with
// [errors.Is] without importing the jwt library.
func (s *authService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	log := s.logger

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		log.Err(err).Str("func", "ParseToken").Msg("error occurred during validating and parsing token")

		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenSignatureInvalid, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		default:
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
		}
	}

	return token, nil
}
