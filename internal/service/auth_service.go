package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"microfinance-ledger/internal/core/ports"
	"microfinance-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService against a fixed operator
// directory mapping operator ids to Argon2id password hashes.
type AuthServiceImpl struct {
	operators map[string]string
	hashSvc   ports.HashService
	tokenSvc  ports.TokenService
	log       zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(operators map[string]string, hashSvc ports.HashService, tokenSvc ports.TokenService, log zerolog.Logger) *AuthServiceImpl {
	dir := make(map[string]string, len(operators))
	for id, hash := range operators {
		dir[strings.ToLower(strings.TrimSpace(id))] = hash
	}
	return &AuthServiceImpl{
		operators: dir,
		hashSvc:   hashSvc,
		tokenSvc:  tokenSvc,
		log:       log,
	}
}

// Login checks the operator's password and returns a JWT whose subject is
// the operator id recorded on every entry they process.
func (s *AuthServiceImpl) Login(ctx context.Context, operatorID, password string) (string, time.Time, error) {
	id := strings.ToLower(strings.TrimSpace(operatorID))
	hash, ok := s.operators[id]
	if !ok || password == "" {
		s.log.Warn().Str("operator_id", id).Msg("login rejected")
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, hash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		s.log.Warn().Str("operator_id", id).Msg("login rejected")
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(id)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	s.log.Info().Str("operator_id", id).Time("expires_at", expiry).Msg("operator logged in")
	return token, expiry, nil
}
