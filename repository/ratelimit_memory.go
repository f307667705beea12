package repository

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"backoffice-service/domain"
)

const (
	shardCount    = 32
	sweepInterval = 5 * time.Minute
)

type arrival struct {
	timestamp time.Time
	count     int
}

type window struct {
	arrivals []arrival
	// duration of the last check against this key, used by the sweep
	// to decide which records are stale
	duration time.Duration
}

type rateLimitShard struct {
	mu      sync.Mutex
	windows map[string]*window
}

// RateLimitMemory is a sliding window request log sharded by key hash.
// A check prunes, counts and conditionally appends under a single shard
// lock, so concurrent checks for the same key serialize while checks
// for keys in other shards proceed independently.
type RateLimitMemory struct {
	shards [shardCount]*rateLimitShard
	now    func() time.Time
}

func NewRateLimitMemory() *RateLimitMemory {
	r := &RateLimitMemory{
		now: time.Now,
	}
	for i := range r.shards {
		r.shards[i] = &rateLimitShard{
			windows: make(map[string]*window),
		}
	}
	return r
}

func (r *RateLimitMemory) Check(ctx context.Context, key string, limit int, windowDuration time.Duration) (*domain.LimitDecision, error) {
	now := r.now()
	shard := r.shard(key)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	w, ok := shard.windows[key]
	if !ok {
		w = &window{}
		shard.windows[key] = w
	}
	w.duration = windowDuration
	w.arrivals = prune(w.arrivals, now, windowDuration)

	current := 0
	for _, a := range w.arrivals {
		current += a.count
	}

	if current >= limit {
		// arrivals are appended in time order, so the first one is the
		// earliest surviving record
		resetTime := now
		if len(w.arrivals) > 0 {
			resetTime = w.arrivals[0].timestamp.Add(windowDuration)
		}
		retryAfter := resetTime.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return &domain.LimitDecision{
			Allow:      false,
			Limit:      limit,
			Current:    current,
			Remaining:  0,
			Window:     windowDuration,
			ResetTime:  resetTime,
			RetryAfter: retryAfter,
		}, nil
	}

	w.arrivals = append(w.arrivals, arrival{timestamp: now, count: 1})
	return &domain.LimitDecision{
		Allow:     true,
		Limit:     limit,
		Current:   current + 1,
		Remaining: limit - current - 1,
		Window:    windowDuration,
		ResetTime: now.Add(windowDuration),
	}, nil
}

// Sweep prunes stale records across all keys and evicts keys with empty
// histories. It locks one shard at a time, so checks for keys in other
// shards are not blocked for the duration of the whole pass.
func (r *RateLimitMemory) Sweep() {
	now := r.now()
	for _, shard := range r.shards {
		shard.mu.Lock()
		for key, w := range shard.windows {
			w.arrivals = prune(w.arrivals, now, w.duration)
			if len(w.arrivals) == 0 {
				delete(shard.windows, key)
			}
		}
		shard.mu.Unlock()
	}
}

// Run periodically sweeps stale keys until the context is closed,
// bounding memory growth from one-shot clients.
func (r *RateLimitMemory) Run(ctx context.Context) error {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.Sweep()
		}
	}
}

func (r *RateLimitMemory) TrackedKeys() int {
	total := 0
	for _, shard := range r.shards {
		shard.mu.Lock()
		total += len(shard.windows)
		shard.mu.Unlock()
	}
	return total
}

func (r *RateLimitMemory) shard(key string) *rateLimitShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return r.shards[h.Sum32()%shardCount]
}

func prune(arrivals []arrival, now time.Time, windowDuration time.Duration) []arrival {
	cutoff := now.Add(-windowDuration)
	kept := arrivals[:0]
	for _, a := range arrivals {
		if a.timestamp.After(cutoff) && a.count > 0 {
			kept = append(kept, a)
		}
	}
	return kept
}
