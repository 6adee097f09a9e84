package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oselabs/cfopilot/internal/access"
	"github.com/oselabs/cfopilot/internal/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)

	userID := uuid.New()
	orgID := uuid.New()

	token, err := issuer.Issue(userID, orgID, access.RoleManager)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, orgID, claims.OrganizationID)
	assert.Equal(t, access.RoleManager, claims.Role)

	actor := claims.Actor()
	assert.Equal(t, userID, actor.ID)
	assert.Equal(t, access.RoleManager, actor.Role)
}

func TestTokenParse_WrongSecret(t *testing.T) {
	token, err := auth.NewTokenIssuer("secret-a", time.Hour).Issue(uuid.New(), uuid.New(), access.RoleAdmin)
	require.NoError(t, err)

	_, err = auth.NewTokenIssuer("secret-b", time.Hour).Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenParse_Expired(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue(uuid.New(), uuid.New(), access.RoleEmployee)
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenParse_UnknownRole(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(uuid.New(), uuid.New(), access.Role("root"))
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
