package httperrors

import (
	"fmt"
	"net/http"
	"strconv"

	"backoffice-service/domain"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/json"
)

type rateLimitBody struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	Limit      int    `json:"limit"`
	Window     int    `json:"window"`
	Current    int    `json:"current"`
	RetryAfter int    `json:"retry_after"`
}

// RateLimitError renders a quota denial: 429 with the full quota
// metadata in both the body and the X-RateLimit response headers.
type RateLimitError struct {
	key      string
	decision domain.LimitDecision
}

func NewRateLimit(key string, decision domain.LimitDecision) RateLimitError {
	return RateLimitError{
		key:      key,
		decision: decision,
	}
}

func (e RateLimitError) Error() string {
	return fmt.Sprintf(
		"rate limit exceeded for '%s': %d/%d requests in %ds window",
		e.key, e.decision.Current, e.decision.Limit, int(e.decision.Window.Seconds()),
	)
}

func (e RateLimitError) WriteError(w http.ResponseWriter) error {
	windowInSec := int(e.decision.Window.Seconds())
	retryAfterInSec := int(e.decision.RetryAfter.Seconds())

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(HeaderRateLimitLimit, strconv.Itoa(e.decision.Limit))
	w.Header().Set(HeaderRateLimitRemaining, "0")
	w.Header().Set(HeaderRateLimitReset, strconv.FormatInt(e.decision.ResetTime.Unix(), 10))
	w.Header().Set(HeaderRetryAfter, strconv.Itoa(retryAfterInSec))
	w.WriteHeader(http.StatusTooManyRequests)

	body := rateLimitBody{
		Error:      "Rate limit exceeded",
		Message:    fmt.Sprintf("Too many requests. Limit: %d per %d seconds", e.decision.Limit, windowInSec),
		Limit:      e.decision.Limit,
		Window:     windowInSec,
		Current:    e.decision.Current,
		RetryAfter: retryAfterInSec,
	}
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		return errors.WithMessage(err, "encode rate limit body")
	}
	return nil
}

const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
	HeaderRetryAfter         = "Retry-After"
)
