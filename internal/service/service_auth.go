package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-humans/internal/config"
	"github.com/MKhiriev/go-humans/internal/logger"
	"github.com/MKhiriev/go-humans/internal/utils"
	"github.com/MKhiriev/go-humans/internal/validators"
	"github.com/MKhiriev/go-humans/models"
)

// authService is the concrete implementation of AuthService.
// It checks credentials through a CredentialVerifier and manages the JWT
// token lifecycle.
type authService struct {
	// verifier decides whether a login attempt is accepted.
	verifier CredentialVerifier

	// validator rejects credentials with missing fields before verification.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// When cfg.TokenSignKey is empty (only allowed with the auth gate disabled)
// a random per-process key is generated so that login still works.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(verifier CredentialVerifier, cfg config.App, logger *logger.Logger) AuthService {
	signKey := cfg.TokenSignKey
	if signKey == "" {
		signKey = rand.Text()
		logger.Warn().Msg("token sign key is not set, using a random one")
	}

	return &authService{
		verifier:      verifier,
		validator:     validators.NewHumanValidator(),
		tokenSignKey:  signKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login authenticates the caller and issues a token for them.
//
// Returns:
//   - a *validators.ValidationError if username or password is empty.
//   - ErrInvalidCredentials if the pair is rejected by the verifier.
//   - ErrTokenCreationFailed if the token cannot be signed.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("invalid credentials data provided")
		return models.Token{}, err
	}

	if err := a.verifier.Verify(ctx, credentials.Username, credentials.Password); err != nil {
		return models.Token{}, err
	}

	return a.CreateToken(ctx, credentials.Username)
}

// CreateToken issues a signed JWT for subject.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, subject string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, subject, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("error creating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Expiry is checked at this point, not at issue time. An expired but
// otherwise valid token yields ErrTokenIsExpired; every other failure
// (bad signature, wrong issuer or algorithm, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
