package middleware

import (
	"net/http"
	"runtime/debug"

	"backoffice-service/httperrors"
	"backoffice-service/request"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
)

type HttpError interface {
	WriteError(w http.ResponseWriter) error
}

// ErrorHandler turns returned errors into JSON responses and recovers
// panics into plain 500 responses. Internal error details leak to the
// client only when debug mode is enabled.
func ErrorHandler(logger log.Logger, debugEnabled bool) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) (err error) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				recoveredErr, ok := recovered.(error)
				if !ok {
					recoveredErr = errors.Errorf("%v", recovered)
				}
				logger.Error(
					ctx.Context(),
					errors.WithMessage(recoveredErr, "recovered panic"),
					log.ByteString("stack", debug.Stack()),
				)
				err = writeError(ctx, httperrors.New(
					http.StatusInternalServerError,
					"internal service error",
					recoveredErr,
				), debugEnabled)
			}()

			err = next.Handle(ctx)
			if err == nil {
				return nil
			}

			logger.Error(ctx.Context(), err)

			httpErr, ok := err.(HttpError)
			if ok {
				return httpErr.WriteError(ctx.ResponseWriter())
			}

			return writeError(ctx, httperrors.New(
				http.StatusInternalServerError,
				"internal service error",
				err,
			), debugEnabled)
		})
	}
}

func writeError(ctx *request.Context, httpErr httperrors.HttpError, debugEnabled bool) error {
	if debugEnabled {
		httpErr = httpErr.WithDetails(httpErr.Error())
	}
	return httpErr.WriteError(ctx.ResponseWriter())
}
