package middleware

import (
	"context"
	"net/http"
	"strings"

	"backoffice-service/domain"
	"backoffice-service/httperrors"
	"backoffice-service/request"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.AuthenticateResponse, error)
}

// Authenticate resolves the bearer token into a principal. Requests
// without an Authorization header pass through as anonymous, access
// control is enforced separately per route.
func Authenticate(authenticator Authenticator) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			header := strings.TrimSpace(ctx.Request().Header.Get(authorizationHeader))
			if header == "" {
				return next.Handle(ctx)
			}

			if !strings.HasPrefix(header, bearerPrefix) {
				return httperrors.New(
					http.StatusUnauthorized,
					"invalid authorization header",
					errors.New("authenticate: authorization header must use bearer scheme"),
				)
			}
			token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

			resp, err := authenticator.Authenticate(ctx.Context(), token)
			if err != nil {
				return errors.WithMessage(err, "authenticate: authenticate")
			}
			if resp.CacheHit {
				ctx.Stats().RecordCacheHit()
			} else {
				ctx.Stats().RecordCacheMiss()
			}
			if !resp.Authenticated {
				return httperrors.New(
					http.StatusUnauthorized,
					"invalid token",
					errors.WithMessage(errors.New(resp.ErrorReason), "authenticate: authenticate"),
				)
			}

			ctx.Authenticate(*resp.Principal)
			ctx.SetContext(log.ToContext(ctx.Context(), log.String("userId", resp.Principal.Id)))

			return next.Handle(ctx)
		})
	}
}
