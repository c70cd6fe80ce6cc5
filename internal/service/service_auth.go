package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/backend-mobile/internal/config"
	"github.com/MKhiriev/backend-mobile/internal/logger"
	"github.com/MKhiriev/backend-mobile/internal/store"
	"github.com/MKhiriev/backend-mobile/internal/utils"
	"github.com/MKhiriev/backend-mobile/models"
)

// authService is the concrete implementation of AuthService.
// It handles member registration, credential verification, and JWT token
// lifecycle using a MemberRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// memberRepository is the data-access layer used to create and look up members.
	memberRepository store.MemberRepository

	// passwordHashCost is the bcrypt cost used when hashing new passwords.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// MemberRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(memberRepository store.MemberRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		memberRepository: memberRepository,
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// Registrasi creates a new member account.
//
// The password is hashed with bcrypt before it reaches the repository; the
// plaintext is never stored or logged.
//
// Returns the persisted member (with a store-assigned ID) or:
//   - ErrEmailAlreadyRegistered if the email is taken.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Registrasi(ctx context.Context, req models.RegistrasiRequest) (models.Member, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(req.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Registrasi").Msg("password hashing failed")
		return models.Member{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	member, err := a.memberRepository.CreateMember(ctx, models.Member{
		Nama:     req.Nama,
		Email:    req.Email,
		Password: hash,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Info().Str("email", req.Email).Msg("email is already registered")
		return models.Member{}, ErrEmailAlreadyRegistered
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("member creation ended with error")
		return models.Member{}, fmt.Errorf("member creation ended with error: %w", err)
	}

	return member, nil
}

// Login authenticates an existing member and issues a token.
//
// An unknown email and a wrong password both return ErrInvalidCredentials so
// that callers cannot probe which emails are registered.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	member, err := a.memberRepository.FindMemberByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrMemberNotFound) {
		log.Info().Str("email", req.Email).Msg("login with unknown email")
		return models.LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("member search by email failed")
		return models.LoginResult{}, fmt.Errorf("member search by email failed: %w", err)
	}

	ok, err := utils.CheckPassword(member.Password, req.Password)
	if err != nil {
		log.Err(err).Int64("id", member.ID).Msg("stored password hash is unusable")
		return models.LoginResult{}, fmt.Errorf("password check failed: %w", err)
	}
	if !ok {
		log.Info().Int64("id", member.ID).Msg("wrong password")
		return models.LoginResult{}, ErrInvalidCredentials
	}

	token, err := a.CreateToken(ctx, member)
	if err != nil {
		log.Err(err).Int64("id", member.ID).Msg("token creation failed")
		return models.LoginResult{}, err
	}

	return models.LoginResult{
		Token: token.SignedString,
		User:  member.Info(),
	}, nil
}

// CreateToken issues a signed JWT for the given member.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, member models.Member) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, member, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrInvalidToken so that callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}
