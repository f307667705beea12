package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice-service/domain"
	"backoffice-service/middleware"
	"backoffice-service/request"

	"github.com/txix-open/isp-kit/test"
)

type authenticatorStub struct{}

func (a authenticatorStub) Authenticate(ctx context.Context, token string) (*domain.AuthenticateResponse, error) {
	if token == "good" {
		return &domain.AuthenticateResponse{
			Authenticated: true,
			Principal:     &domain.Principal{Id: "user-1", Roles: []string{"user"}},
		}, nil
	}
	return &domain.AuthenticateResponse{
		Authenticated: false,
		ErrorReason:   "invalid token format",
	}, nil
}

func TestAuthenticateAnonymousPassthrough(t *testing.T) {
	t.Parallel()
	testKit, require := test.New(t)

	var authenticated bool
	handler := middleware.HandlerFunc(func(ctx *request.Context) error {
		authenticated = ctx.IsAuthenticated()
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rec := execute(req, handler,
		middleware.ErrorHandler(testKit.Logger(), false),
		middleware.Authenticate(authenticatorStub{}),
	)

	require.EqualValues(http.StatusOK, rec.Code)
	require.False(authenticated)
}

func TestAuthenticateValidToken(t *testing.T) {
	t.Parallel()
	testKit, require := test.New(t)

	var principal domain.Principal
	handler := middleware.HandlerFunc(func(ctx *request.Context) error {
		p, err := ctx.Principal()
		require.NoError(err)
		principal = p
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := execute(req, handler,
		middleware.ErrorHandler(testKit.Logger(), false),
		middleware.Authenticate(authenticatorStub{}),
	)

	require.EqualValues(http.StatusOK, rec.Code)
	require.EqualValues("user-1", principal.Id)
}

func TestAuthenticateRejectsInvalidToken(t *testing.T) {
	t.Parallel()
	testKit, require := test.New(t)

	handler, calls := okHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := execute(req, handler,
		middleware.ErrorHandler(testKit.Logger(), false),
		middleware.Authenticate(authenticatorStub{}),
	)

	require.EqualValues(http.StatusUnauthorized, rec.Code)
	require.EqualValues(0, *calls)
}

func TestAuthenticateRejectsNonBearerScheme(t *testing.T) {
	t.Parallel()
	testKit, require := test.New(t)

	handler, calls := okHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := execute(req, handler,
		middleware.ErrorHandler(testKit.Logger(), false),
		middleware.Authenticate(authenticatorStub{}),
	)

	require.EqualValues(http.StatusUnauthorized, rec.Code)
	require.EqualValues(0, *calls)
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()
	testKit, require := test.New(t)

	handler, calls := okHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	rec := execute(req, handler,
		middleware.ErrorHandler(testKit.Logger(), false),
		middleware.Authenticate(authenticatorStub{}),
		middleware.RequireAuth(),
	)

	require.EqualValues(http.StatusUnauthorized, rec.Code)
	require.EqualValues(0, *calls)
}

func TestAuthorizeRoles(t *testing.T) {
	t.Parallel()
	testKit, require := test.New(t)

	authorize := middleware.Authorize([]string{"admin"})

	handler, calls := okHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := execute(req, handler,
		middleware.ErrorHandler(testKit.Logger(), false),
		middleware.Authenticate(authenticatorStub{}),
		authorize,
	)
	require.EqualValues(http.StatusForbidden, rec.Code)
	require.EqualValues(0, *calls)

	req = httptest.NewRequest(http.MethodGet, "/api/logs", nil)
	rec = execute(req, handler,
		middleware.ErrorHandler(testKit.Logger(), false),
		authorize,
	)
	require.EqualValues(http.StatusUnauthorized, rec.Code)

	adminAuthorize := middleware.Authorize([]string{"user", "admin"})
	req = httptest.NewRequest(http.MethodGet, "/api/logs", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec = execute(req, handler,
		middleware.ErrorHandler(testKit.Logger(), false),
		middleware.Authenticate(authenticatorStub{}),
		adminAuthorize,
	)
	require.EqualValues(http.StatusOK, rec.Code)
	require.EqualValues(1, *calls)
}
