// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/venture-portal/internal/config"
	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/internal/store"
	"github.com/MKhiriev/venture-portal/internal/utils"
	"github.com/MKhiriev/venture-portal/internal/validators"
	"github.com/MKhiriev/venture-portal/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; session and email confirmation
// tokens are HS256 JWTs told apart by their purpose claim.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	tokenSignKey         string
	tokenIssuer          string
	tokenDuration        time.Duration
	confirmTokenDuration time.Duration

	// now is replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService backed by userRepository with
// token parameters from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		validator:            validators.NewAccountValidator(),
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		tokenDuration:        cfg.TokenDuration,
		confirmTokenDuration: cfg.ConfirmTokenDuration,
		now:                  time.Now,
		logger:               logger,
	}
}

// RegisterUser validates the credentials, hashes the password and stores the
// user. A taken email surfaces as store.ErrEmailAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("email", req.Email).Msg("invalid sign up data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Sanitized(), nil
}

// Login looks the user up by email and compares the password hash. Unknown
// emails and wrong passwords both yield ErrWrongCredentials.
func (a *authService) Login(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req, validators.FieldEmail); err != nil || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid sign in data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("email", req.Email).Msg("sign in for unknown email")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser.Sanitized(), nil
}

// CreateToken issues a session token for user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return a.issue(user, models.PurposeSession, a.tokenDuration)
}

// CreateConfirmationToken issues a token that confirms user's email address.
func (a *authService) CreateConfirmationToken(ctx context.Context, user models.User) (models.Token, error) {
	return a.issue(user, models.PurposeConfirmEmail, a.confirmTokenDuration)
}

func (a *authService) issue(user models.User, purpose models.TokenPurpose, duration time.Duration) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, purpose, duration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// ParseToken validates a session token. Any failure (expired, wrong issuer,
// wrong purpose, malformed) is reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, models.PurposeSession)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ConfirmEmail redeems a confirmation token. Confirming twice keeps the first
// confirmation time.
func (a *authService) ConfirmEmail(ctx context.Context, confirmationToken string) error {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(confirmationToken, a.tokenSignKey, a.tokenIssuer, models.PurposeConfirmEmail)
	if err != nil {
		log.Warn().Err(err).Msg("confirmation token rejected")
		return ErrTokenIsExpiredOrInvalid
	}

	if err = a.userRepository.ConfirmEmail(ctx, token.UserID, a.now().UTC()); err != nil {
		log.Err(err).Int64("id", token.UserID).Msg("email confirmation failed")
		return fmt.Errorf("email confirmation failed: %w", err)
	}

	log.Info().Int64("id", token.UserID).Msg("email confirmed")
	return nil
}

// GetUser returns the user without credential fields.
func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Sanitized(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
