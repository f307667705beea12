package request

import (
	"context"
	"net/http"
	"time"

	"backoffice-service/domain"

	"github.com/pkg/errors"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Context carries the state of a single request through the middleware
// chain. It is owned exclusively by the handling goroutine and must not
// be shared between requests.
type Context struct {
	request        *http.Request
	responseWriter http.ResponseWriter

	endpoint  string
	requestId string
	startedAt time.Time

	authenticated bool
	principal     *domain.Principal

	stats Stats
}

func NewContext(request *http.Request, response http.ResponseWriter, endpoint string) *Context {
	return &Context{
		request:        request,
		responseWriter: response,
		endpoint:       endpoint,
		startedAt:      time.Now(),
	}
}

func (c *Context) Request() *http.Request {
	return c.request
}

func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.responseWriter
}

func (c *Context) SetResponseWriter(writer http.ResponseWriter) {
	c.responseWriter = writer
}

func (c *Context) Endpoint() string {
	return c.endpoint
}

func (c *Context) RequestId() string {
	return c.requestId
}

func (c *Context) SetRequestId(requestId string) {
	c.requestId = requestId
}

func (c *Context) StartedAt() time.Time {
	return c.startedAt
}

func (c *Context) Authenticate(principal domain.Principal) {
	c.authenticated = true
	c.principal = &principal
}

func (c *Context) IsAuthenticated() bool {
	return c.authenticated
}

func (c *Context) Principal() (domain.Principal, error) {
	if !c.authenticated {
		return domain.Principal{}, ErrNotAuthenticated
	}
	return *c.principal, nil
}

func (c *Context) Stats() *Stats {
	return &c.stats
}

func (c *Context) Context() context.Context {
	return c.request.Context()
}

func (c *Context) SetContext(ctx context.Context) {
	c.request = c.request.WithContext(ctx)
}
