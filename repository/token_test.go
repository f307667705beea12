package repository_test

import (
	"context"
	"encoding/base64"
	"testing"

	"backoffice-service/repository"

	"github.com/stretchr/testify/require"
	"github.com/txix-open/isp-kit/json"
)

func makeToken(t *testing.T, claims map[string]any) string {
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return "eyJhbGciOiJub25lIn0." + encoded + ".signature"
}

func TestVerifyMockToken(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	verifier := repository.NewTokenVerifier()
	resp, err := verifier.Verify(context.Background(), "mock-token-123")
	require.NoError(err)
	require.True(resp.Authenticated)
	require.EqualValues("mock-user-123", resp.Principal.Id)
	require.EqualValues([]string{"user"}, resp.Principal.Roles)
}

func TestVerifyJwtClaims(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	token := makeToken(t, map[string]any{
		"sub":    "admin-1",
		"name":   "Jordan Admin",
		"emails": []string{"admin@example.com"},
		"roles":  []string{"admin", "user"},
		"tfp":    "B2C_1_signin",
	})

	verifier := repository.NewTokenVerifier()
	resp, err := verifier.Verify(context.Background(), token)
	require.NoError(err)
	require.True(resp.Authenticated)
	require.EqualValues("admin-1", resp.Principal.Id)
	require.EqualValues("Jordan Admin", resp.Principal.Name)
	require.EqualValues("admin@example.com", resp.Principal.Email)
	require.EqualValues([]string{"admin", "user"}, resp.Principal.Roles)
	require.EqualValues("B2C_1_signin", resp.Principal.Tenant)
}

func TestVerifyDefaultsRole(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	token := makeToken(t, map[string]any{"sub": "user-7"})

	verifier := repository.NewTokenVerifier()
	resp, err := verifier.Verify(context.Background(), token)
	require.NoError(err)
	require.True(resp.Authenticated)
	require.EqualValues([]string{"user"}, resp.Principal.Roles)
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	verifier := repository.NewTokenVerifier()
	for _, token := range []string{"not-a-jwt", "a.b", "a.!!!.c"} {
		resp, err := verifier.Verify(context.Background(), token)
		require.NoError(err)
		require.False(resp.Authenticated)
		require.EqualValues("invalid token format", resp.ErrorReason)
	}
}

func TestVerifyRejectsEmptyToken(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	verifier := repository.NewTokenVerifier()
	resp, err := verifier.Verify(context.Background(), "")
	require.NoError(err)
	require.False(resp.Authenticated)
	require.EqualValues("token is required", resp.ErrorReason)
}

func TestVerifyRejectsTokenWithoutSubject(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	token := makeToken(t, map[string]any{"name": "No Subject"})

	verifier := repository.NewTokenVerifier()
	resp, err := verifier.Verify(context.Background(), token)
	require.NoError(err)
	require.False(resp.Authenticated)
	require.EqualValues("token has no subject", resp.ErrorReason)
}
