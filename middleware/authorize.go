package middleware

import (
	"net/http"
	"strings"

	"backoffice-service/httperrors"
	"backoffice-service/request"

	"github.com/pkg/errors"
)

func RequireAuth() Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			if !ctx.IsAuthenticated() {
				return httperrors.New(
					http.StatusUnauthorized,
					"authentication required",
					errors.New("authorize: authentication required"),
				)
			}
			return next.Handle(ctx)
		})
	}
}

func Authorize(requiredRoles []string) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			if len(requiredRoles) == 0 {
				return next.Handle(ctx)
			}

			principal, err := ctx.Principal()
			if err != nil {
				return httperrors.New(
					http.StatusUnauthorized,
					"authentication required",
					errors.WithMessage(err, "authorize: get principal"),
				)
			}

			if !principal.HasAnyRole(requiredRoles) {
				return httperrors.New(
					http.StatusForbidden,
					"insufficient permissions",
					errors.Errorf(
						"authorize: one of roles [%s] is required for user '%s'",
						strings.Join(requiredRoles, ", "), principal.Id,
					),
				)
			}

			return next.Handle(ctx)
		})
	}
}
