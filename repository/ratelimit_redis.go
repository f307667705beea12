package repository

import (
	"context"
	"time"

	"backoffice-service/domain"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// checkScript keeps prune+count+append atomic on the redis side, the
// same contract the in-memory store provides with shard locks.
// Timestamps are passed in microseconds.
var checkScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
local member = ARGV[4]

redis.call('ZREMRANGEBYSCORE', key, 0, now - window)
local current = redis.call('ZCARD', key)
if current >= limit then
	local reset = now
	local earliest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
	if earliest[2] then
		reset = tonumber(earliest[2]) + window
	end
	return {0, current, reset}
end
redis.call('ZADD', key, now, member)
redis.call('PEXPIRE', key, math.ceil(window / 1000))
return {1, current + 1, now + window}
`)

type RateLimitRedis struct {
	cli redis.UniversalClient
}

func NewRateLimitRedis(cli redis.UniversalClient) RateLimitRedis {
	return RateLimitRedis{
		cli: cli,
	}
}

func (r RateLimitRedis) Check(ctx context.Context, key string, limit int, windowDuration time.Duration) (*domain.LimitDecision, error) {
	now := time.Now()
	result, err := checkScript.Run(
		ctx,
		r.cli,
		[]string{r.key(key)},
		now.UnixMicro(),
		windowDuration.Microseconds(),
		limit,
		uuid.NewString(),
	).Slice()
	if err != nil {
		return nil, errors.WithMessage(err, "run check script")
	}
	if len(result) != 3 {
		return nil, errors.Errorf("unexpected check script response: %v", result)
	}

	allowed, _ := result[0].(int64)
	current, _ := result[1].(int64)
	resetAt, _ := result[2].(int64)
	resetTime := time.UnixMicro(resetAt)

	if allowed == 0 {
		retryAfter := resetTime.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return &domain.LimitDecision{
			Allow:      false,
			Limit:      limit,
			Current:    int(current),
			Remaining:  0,
			Window:     windowDuration,
			ResetTime:  resetTime,
			RetryAfter: retryAfter,
		}, nil
	}

	return &domain.LimitDecision{
		Allow:     true,
		Limit:     limit,
		Current:   int(current),
		Remaining: limit - int(current),
		Window:    windowDuration,
		ResetTime: resetTime,
	}, nil
}

func (r RateLimitRedis) key(key string) string {
	return "rate_limit:" + key
}
