package middleware

import (
	"strings"

	"backoffice-service/request"

	"github.com/txix-open/isp-kit/log"
	"github.com/txix-open/isp-kit/requestid"
)

const (
	requestIdHeader = "X-Request-Id"
)

// RequestId assigns a correlation id to the request, propagates it
// through the context logger and echoes it in the response headers.
// A client supplied id is kept as a separate log field, it never
// replaces the generated one.
func RequestId() Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			requestId := requestid.Next()
			ctx.SetRequestId(requestId)
			ctx.ResponseWriter().Header().Set(requestIdHeader, requestId)

			logFields := make([]log.Field, 0)
			clientRequestId := strings.TrimSpace(ctx.Request().Header.Get(requestIdHeader))
			if clientRequestId != "" {
				logFields = append(logFields, log.String("clientRequestId", clientRequestId))
			}
			logFields = append(logFields, log.String("requestId", requestId))

			context := requestid.ToContext(ctx.Context(), requestId)
			context = log.ToContext(context, logFields...)

			ctx.SetContext(context)
			return next.Handle(ctx)
		})
	}
}
