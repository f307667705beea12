package middleware

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"backoffice-service/conf"
	"backoffice-service/entity"
	"backoffice-service/request"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/http/endpoint/buffer"
	"github.com/txix-open/isp-kit/log"
)

const (
	responseTimeHeader = "X-Response-Time"
)

type scSource interface {
	StatusCode() int
}

type writerWrapper struct {
	http.ResponseWriter

	startedAt   time.Time
	statusCode  int
	wroteHeader bool
}

func (w *writerWrapper) StatusCode() int {
	if w.statusCode == 0 {
		return http.StatusOK
	}
	return w.statusCode
}

func (w *writerWrapper) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.statusCode = statusCode
	elapsed := float64(time.Since(w.startedAt).Microseconds()) / 1000
	w.ResponseWriter.Header().Set(responseTimeHeader, fmt.Sprintf("%.2fms", elapsed))
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *writerWrapper) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(data)
}

type Journal interface {
	RecordApiRequest(ctx context.Context, record entity.SystemLog)
}

// Logger reports every handled request with a severity matching its
// status code and journals it for the system log API. Requests slower
// than the configured threshold are additionally reported with the
// accumulated request counters.
func Logger(logger log.Logger, config conf.Logging, journal Journal) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			r := ctx.Request()

			writer := &writerWrapper{
				ResponseWriter: ctx.ResponseWriter(),
				startedAt:      ctx.StartedAt(),
			}
			var scSrc scSource = writer
			ctx.SetResponseWriter(writer)

			logBody := config.RequestLogEnable && config.BodyLogEnable
			var buf *buffer.Buffer
			if logBody {
				buf = buffer.Acquire(writer)
				defer buffer.Release(buf)

				err := buf.ReadRequestBody(r.Body)
				if err != nil {
					return errors.WithMessage(err, "logger: read request body for logging")
				}
				err = r.Body.Close()
				if err != nil {
					return errors.WithMessage(err, "logger: close request reader")
				}
				r.Body = io.NopCloser(bytes.NewBuffer(buf.RequestBody()))

				scSrc = buf
				ctx.SetResponseWriter(buf)
			}

			path := r.URL.Path
			err := next.Handle(ctx)

			elapsed := time.Since(ctx.StartedAt())
			statusCode := scSrc.StatusCode()
			fields := []log.Field{
				log.String("httpMethod", r.Method),
				log.String("path", path),
				log.String("endpoint", ctx.Endpoint()),
				log.Int("statusCode", statusCode),
				log.Int64("durationInMs", elapsed.Milliseconds()),
				log.String("remoteAddr", r.RemoteAddr),
				log.String("xForwardedFor", r.Header.Get("X-Forwarded-For")),
			}
			userId := ""
			if principal, err := ctx.Principal(); err == nil {
				userId = principal.Id
				fields = append(fields, log.String("userId", userId))
			}

			if config.RequestLogEnable {
				if logBody {
					fields = append(fields,
						log.ByteString("request", buf.RequestBody()),
						log.ByteString("response", buf.ResponseBody()),
					)
				}
				logByStatus(logger, ctx.Context(), statusCode, fields)
			}

			if elapsed > config.SlowRequestThreshold() {
				slowFields := append(fields, ctx.Stats().LogFields()...)
				logger.Warn(ctx.Context(), "slow request", slowFields...)
			}

			journal.RecordApiRequest(ctx.Context(), entity.SystemLog{
				CorrelationId: ctx.RequestId(),
				UserId:        userId,
				IpAddress:     clientIp(r),
				Method:        r.Method,
				Endpoint:      path,
				StatusCode:    statusCode,
				DurationInMs:  elapsed.Milliseconds(),
			})

			return err
		})
	}
}

func logByStatus(logger log.Logger, ctx context.Context, statusCode int, fields []log.Field) {
	switch {
	case statusCode >= http.StatusInternalServerError:
		logger.Error(ctx, "request completed", fields...)
	case statusCode >= http.StatusBadRequest:
		logger.Warn(ctx, "request completed", fields...)
	default:
		logger.Info(ctx, "request completed", fields...)
	}
}
