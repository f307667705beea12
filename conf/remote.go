package conf

import (
	"reflect"
	"time"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
	"github.com/txix-open/isp-kit/rc/schema"
	"github.com/txix-open/jsonschema"
)

const (
	defaultLimit           = 100
	defaultWindowInSec     = 3600
	defaultSlowRequestInMs = 1000
	defaultPerPage         = 50
	maxPerPage             = 500
)

func init() {
	schema.CustomGenerators.Register("logLevel", func(field reflect.StructField, t *jsonschema.Schema) {
		t.Type = "string"
		t.Enum = []any{"debug", "info", "error", "fatal"}
	})
}

type Remote struct {
	Http         Http         `schema:"HTTP settings"`
	Logging      Logging      `schema:"Logging settings"`
	Caching      Caching      `schema:"Caching settings"`
	RateLimiting RateLimiting `schema:"Rate limiting settings"`
	Redis        *Redis       `schema:"Redis settings,used as rate limiter storage when specified; in-memory storage is used otherwise"`
	Pagination   Pagination   `schema:"List pagination settings"`
	Integrations Integrations `schema:"External integrations settings"`
	Debug        bool         `schema:"Debug mode,exposes internal error details in 500 responses"`
}

type Integrations struct {
	OcrUrl      string `schema:"Receipt OCR endpoint,canned responses are returned when empty"`
	AnalysisUrl string `schema:"Spending analysis endpoint,canned responses are returned when empty"`
	ApiKey      string `schema:"API key for external endpoints"`
}

type Http struct {
	MaxRequestBodySizeInMb int64 `valid:"required" schema:"Maximum request body size,in megabytes"`
}

type Logging struct {
	LogLevel                 log.Level `schemaGen:"logLevel" schema:"Log level,request logging is performed on debug level"`
	RequestLogEnable         bool      `schema:"Enable request logging"`
	BodyLogEnable            bool      `schema:"Enable request and response body logging,request logging must be enabled"`
	SlowRequestThresholdInMs int64     `schema:"Slow request threshold,in milliseconds, requests above it are reported with accumulated counters, default is 1000"`
}

type Caching struct {
	AuthenticationDataInSec int `valid:"required" schema:"Authentication data caching duration,in seconds"`
}

type LimitPolicy struct {
	Limit       int `valid:"required" schema:"Allowed requests per window"`
	WindowInSec int `valid:"required" schema:"Window duration,in seconds"`
}

type RoleLimit struct {
	Role string `valid:"required" schema:"Role name"`
	LimitPolicy
}

type EndpointLimit struct {
	Endpoint string `valid:"required" schema:"Endpoint,method and path, for example 'POST /api/transactions'"`
	LimitPolicy
}

type MethodLimit struct {
	Method string `valid:"required" schema:"HTTP method"`
	LimitPolicy
}

type RateLimiting struct {
	Default              *LimitPolicy    `schema:"Global default,100 requests per 3600 seconds when omitted"`
	Anonymous            *LimitPolicy    `schema:"Default for unauthenticated clients"`
	Authenticated        *LimitPolicy    `schema:"Default for authenticated clients"`
	Roles                []RoleLimit     `schema:"Role based overrides,applied to authenticated clients, first matching role wins"`
	Endpoints            []EndpointLimit `schema:"Per endpoint overrides,highest priority"`
	Methods              []MethodLimit   `schema:"Per HTTP method overrides"`
	ExemptPathPrefixes   []string        `schema:"Path prefixes excluded from rate limiting,health and static assets are always excluded"`
	MonitoringUserAgents []string        `schema:"User agent substrings excluded from rate limiting,case insensitive, defaults to monitor, health-check, uptime"`
}

type Pagination struct {
	DefaultPerPage int `schema:"Default page size,50 when omitted"`
	MaxPerPage     int `schema:"Maximum page size,500 when omitted"`
}

type Redis struct {
	Address  string         `schema:"Address,required if sentinel is not specified"`
	Username string         `schema:"Username"`
	Password string         `schema:"Password"`
	Sentinel *RedisSentinel `schema:"Sentinel settings,required if address is not specified"`
}

type RedisSentinel struct {
	Addresses  []string `valid:"required" schema:"Cluster node addresses"`
	MasterName string   `valid:"required" schema:"Master name"`
	Username   string   `schema:"Sentinel username"`
	Password   string   `schema:"Sentinel password"`
}

func (r Remote) Validate() error {
	if r.Redis != nil && r.Redis.Sentinel == nil && r.Redis.Address == "" {
		return errors.New("invalid redis config. sentinel or address are required")
	}
	for _, limit := range r.RateLimiting.Endpoints {
		if limit.Limit <= 0 || limit.WindowInSec <= 0 {
			return errors.Errorf("invalid rate limit for endpoint '%s'", limit.Endpoint)
		}
	}
	for _, limit := range r.RateLimiting.Methods {
		if limit.Limit <= 0 || limit.WindowInSec <= 0 {
			return errors.Errorf("invalid rate limit for method '%s'", limit.Method)
		}
	}
	for _, limit := range r.RateLimiting.Roles {
		if limit.Limit <= 0 || limit.WindowInSec <= 0 {
			return errors.Errorf("invalid rate limit for role '%s'", limit.Role)
		}
	}
	return nil
}

func (p LimitPolicy) Window() time.Duration {
	return time.Duration(p.WindowInSec) * time.Second
}

func (r RateLimiting) GlobalDefault() LimitPolicy {
	if r.Default != nil {
		return *r.Default
	}
	return LimitPolicy{Limit: defaultLimit, WindowInSec: defaultWindowInSec}
}

func (l Logging) SlowRequestThreshold() time.Duration {
	if l.SlowRequestThresholdInMs <= 0 {
		return defaultSlowRequestInMs * time.Millisecond
	}
	return time.Duration(l.SlowRequestThresholdInMs) * time.Millisecond
}

func (p Pagination) GetDefaultPerPage() int {
	if p.DefaultPerPage <= 0 {
		return defaultPerPage
	}
	return p.DefaultPerPage
}

func (p Pagination) GetMaxPerPage() int {
	if p.MaxPerPage <= 0 {
		return maxPerPage
	}
	return p.MaxPerPage
}
