package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-humans/internal/config"
	"github.com/MKhiriev/go-humans/internal/logger"
)

// staticCredentialVerifier accepts exactly one configured username/password
// pair. Only a bcrypt hash of the password is kept in memory.
type staticCredentialVerifier struct {
	username     []byte
	passwordHash []byte

	logger *logger.Logger
}

// NewStaticCredentialVerifier hashes password with bcrypt and returns a
// [CredentialVerifier] bound to the pair.
func NewStaticCredentialVerifier(username, password string, logger *logger.Logger) (CredentialVerifier, error) {
	if len(password) > config.MaxAdminPasswordBytes {
		return nil, fmt.Errorf("admin password is longer than %d bytes: %w", config.MaxAdminPasswordBytes, bcrypt.ErrPasswordTooLong)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing admin password: %w", err)
	}

	return &staticCredentialVerifier{
		username:     []byte(username),
		passwordHash: hash,
		logger:       logger,
	}, nil
}

// Verify implements [CredentialVerifier]. The password hash is compared even
// when the username is wrong so both failure paths take the same time.
func (v *staticCredentialVerifier) Verify(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	usernameMatches := subtle.ConstantTimeCompare(v.username, []byte(username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password))

	if !usernameMatches || passwordErr != nil {
		log.Warn().Str("func", "*staticCredentialVerifier.Verify").Str("username", username).Msg("invalid credentials")
		return ErrInvalidCredentials
	}

	return nil
}
