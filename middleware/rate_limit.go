package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"

	"backoffice-service/conf"
	"backoffice-service/domain"
	"backoffice-service/httperrors"
	"backoffice-service/request"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
)

type RateLimiter interface {
	IsExempt(path string, userAgent string) bool
	Resolve(endpoint string, method string, principal *domain.Principal) conf.LimitPolicy
	Check(ctx context.Context, key string, policy conf.LimitPolicy) (*domain.LimitDecision, error)
}

// RateLimit enforces the sliding window quota. The limiter is advisory,
// a storage failure lets the request through.
func RateLimit(limiter RateLimiter, logger log.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			r := ctx.Request()
			if limiter.IsExempt(r.URL.Path, r.UserAgent()) {
				return next.Handle(ctx)
			}

			var principal *domain.Principal
			if p, err := ctx.Principal(); err == nil {
				principal = &p
			}

			key := limitKey(principal, r)
			policy := limiter.Resolve(ctx.Endpoint(), r.Method, principal)

			decision, err := limiter.Check(ctx.Context(), key, policy)
			if err != nil {
				logger.Error(ctx.Context(), errors.WithMessage(err, "rate limit check failed, request allowed"))
				return next.Handle(ctx)
			}

			if !decision.Allow {
				return httperrors.NewRateLimit(key, *decision)
			}

			header := ctx.ResponseWriter().Header()
			header.Set(httperrors.HeaderRateLimitLimit, strconv.Itoa(decision.Limit))
			header.Set(httperrors.HeaderRateLimitRemaining, strconv.Itoa(decision.Remaining))
			header.Set(httperrors.HeaderRateLimitReset, strconv.FormatInt(decision.ResetTime.Unix(), 10))

			return next.Handle(ctx)
		})
	}
}

func limitKey(principal *domain.Principal, r *http.Request) string {
	if principal != nil {
		return "user:" + principal.Id
	}
	return "ip:" + clientIp(r)
}

func clientIp(r *http.Request) string {
	forwardedFor := r.Header.Get("X-Forwarded-For")
	if forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
