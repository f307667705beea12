package service

import (
	"context"
	"strings"
	"time"

	"backoffice-service/conf"
	"backoffice-service/domain"
	"backoffice-service/service/matcher"
)

var (
	alwaysExemptPaths = []string{
		"/",
		"/health",
		"/static/*",
	}
	defaultMonitoringAgents = []string{
		"monitor",
		"health-check",
		"uptime",
	}
)

type RateLimitStore interface {
	Check(ctx context.Context, key string, limit int, window time.Duration) (*domain.LimitDecision, error)
}

type RateLimit struct {
	store            RateLimitStore
	config           conf.RateLimiting
	exemptPaths      matcher.Matcher
	monitoringAgents []string
	endpointLimits   map[string]conf.LimitPolicy
	methodLimits     map[string]conf.LimitPolicy
}

func NewRateLimit(store RateLimitStore, config conf.RateLimiting) RateLimit {
	patterns := make([]string, 0, len(alwaysExemptPaths)+len(config.ExemptPathPrefixes))
	patterns = append(patterns, alwaysExemptPaths...)
	for _, prefix := range config.ExemptPathPrefixes {
		patterns = append(patterns, prefix+"*")
	}

	monitoringAgents := defaultMonitoringAgents
	if len(config.MonitoringUserAgents) > 0 {
		monitoringAgents = make([]string, 0, len(config.MonitoringUserAgents))
		for _, agent := range config.MonitoringUserAgents {
			monitoringAgents = append(monitoringAgents, strings.ToLower(agent))
		}
	}

	endpointLimits := make(map[string]conf.LimitPolicy, len(config.Endpoints))
	for _, limit := range config.Endpoints {
		endpointLimits[normalizeEndpoint(limit.Endpoint)] = limit.LimitPolicy
	}
	methodLimits := make(map[string]conf.LimitPolicy, len(config.Methods))
	for _, limit := range config.Methods {
		methodLimits[strings.ToUpper(limit.Method)] = limit.LimitPolicy
	}

	return RateLimit{
		store:            store,
		config:           config,
		exemptPaths:      matcher.NewPathMatcher(patterns),
		monitoringAgents: monitoringAgents,
		endpointLimits:   endpointLimits,
		methodLimits:     methodLimits,
	}
}

// IsExempt reports whether the request is excluded from rate limiting,
// either by its path or by a monitoring user agent.
func (s RateLimit) IsExempt(path string, userAgent string) bool {
	if s.exemptPaths.Match(path) {
		return true
	}
	userAgent = strings.ToLower(userAgent)
	for _, agent := range s.monitoringAgents {
		if strings.Contains(userAgent, agent) {
			return true
		}
	}
	return false
}

// Resolve selects the effective limit policy for a request. Precedence:
// endpoint override, method override, role override, authenticated or
// anonymous default, global default.
func (s RateLimit) Resolve(endpoint string, method string, principal *domain.Principal) conf.LimitPolicy {
	if policy, ok := s.endpointLimits[normalizeEndpoint(endpoint)]; ok {
		return policy
	}
	if policy, ok := s.methodLimits[strings.ToUpper(method)]; ok {
		return policy
	}
	if principal != nil {
		for _, limit := range s.config.Roles {
			if principal.HasRole(limit.Role) {
				return limit.LimitPolicy
			}
		}
		if s.config.Authenticated != nil {
			return *s.config.Authenticated
		}
		return s.config.GlobalDefault()
	}
	if s.config.Anonymous != nil {
		return *s.config.Anonymous
	}
	return s.config.GlobalDefault()
}

func (s RateLimit) Check(ctx context.Context, key string, policy conf.LimitPolicy) (*domain.LimitDecision, error) {
	return s.store.Check(ctx, key, policy.Limit, policy.Window())
}

func normalizeEndpoint(endpoint string) string {
	method, path, found := strings.Cut(endpoint, " ")
	if !found {
		return endpoint
	}
	return strings.ToUpper(method) + " " + path
}
