package request

import (
	"time"

	"github.com/txix-open/isp-kit/log"
)

// Stats accumulates per-request work counters. Handlers report database
// and external calls into it so that slow requests can be explained.
// Not safe for concurrent use, a single request owns it.
type Stats struct {
	dbCalls          int
	dbTime           time.Duration
	externalCalls    int
	externalCallTime time.Duration
	cacheHits        int
	cacheMisses      int
}

func (s *Stats) RecordDbCall(duration time.Duration) {
	s.dbCalls++
	s.dbTime += duration
}

func (s *Stats) RecordExternalCall(duration time.Duration) {
	s.externalCalls++
	s.externalCallTime += duration
}

func (s *Stats) RecordCacheHit() {
	s.cacheHits++
}

func (s *Stats) RecordCacheMiss() {
	s.cacheMisses++
}

func (s *Stats) DbCalls() int {
	return s.dbCalls
}

func (s *Stats) ExternalCalls() int {
	return s.externalCalls
}

func (s *Stats) CacheHits() int {
	return s.cacheHits
}

func (s *Stats) CacheMisses() int {
	return s.cacheMisses
}

func (s *Stats) LogFields() []log.Field {
	return []log.Field{
		log.Int("dbCalls", s.dbCalls),
		log.Int64("dbTimeMs", s.dbTime.Milliseconds()),
		log.Int("externalCalls", s.externalCalls),
		log.Int64("externalCallTimeMs", s.externalCallTime.Milliseconds()),
		log.Int("cacheHits", s.cacheHits),
		log.Int("cacheMisses", s.cacheMisses),
	}
}
