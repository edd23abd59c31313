package auth

import (
	"testing"
	"time"

	"pharmastore/config"
	"pharmastore/internal/domain/entity"
	"pharmastore/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string, ttl time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttl

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)

	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Hour)

	userID := uuid.New()
	token, err := svc.Generate(userID, entity.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", -time.Minute)

	token, err := svc.Generate(uuid.New(), entity.RoleUser)
	require.NoError(t, err)

	claims, err := svc.Validate(token)

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer := newTestTokenService(t, "secret-one", time.Hour)
	verifier := newTestTokenService(t, "secret-two", time.Hour)

	token, err := issuer.Generate(uuid.New(), entity.RoleUser)
	require.NoError(t, err)

	claims, err := verifier.Validate(token)

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Hour)

	claims, err := svc.Validate("not.a.token")

	require.Error(t, err)
	assert.Nil(t, claims)
}
