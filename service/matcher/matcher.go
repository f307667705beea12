package matcher

import (
	"strings"
)

type Matcher interface {
	Match(value string) bool
}

type pathMatcher struct {
	patterns []string
}

// NewPathMatcher matches a request path against a pattern list.
// A pattern ending with '*' matches any path with that prefix,
// otherwise the comparison is a case-insensitive equality check.
func NewPathMatcher(patterns []string) Matcher {
	return pathMatcher{
		patterns: patterns,
	}
}

func (m pathMatcher) Match(value string) bool {
	for _, pattern := range m.patterns {
		if strings.HasSuffix(pattern, "*") {
			if strings.HasPrefix(value, strings.TrimSuffix(pattern, "*")) {
				return true
			}
			continue
		}
		if strings.EqualFold(pattern, value) {
			return true
		}
	}
	return false
}
