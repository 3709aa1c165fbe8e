package validate

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// HardeningWarnings returns non-fatal startup warnings worth logging.
func HardeningWarnings(appEnv string) []string {
	var warns []string

	if strings.EqualFold(appEnv, "production") {
		if u := os.Getenv("UPSTASH_REDIS_URL"); u != "" && strings.HasPrefix(u, "redis://") {
			warns = append(warns, "UPSTASH_REDIS_URL uses redis:// (no TLS). Prefer rediss:// for TLS")
		}
		if os.Getenv("UPSTASH_REDIS_URL") == "" && os.Getenv("REDIS_ADDR") == "" {
			warns = append(warns, "no Redis configured; newsletter subscribers are in-memory and lost on restart, and rate limiting is disabled")
		}
		if os.Getenv("TLS_CERT") == "" || os.Getenv("TLS_KEY") == "" {
			warns = append(warns, "TLS_CERT/TLS_KEY not set; serving plain HTTP")
		}
	}

	if v := os.Getenv("MAX_BODY_SIZE"); v != "" {
		if _, err := fmt.Sscanf(v, "%d", new(int64)); err != nil {
			warns = append(warns, fmt.Sprintf("MAX_BODY_SIZE=%q is not a number; using default", v))
		}
	}

	return warns
}

// PingRedis checks connectivity with a short timeout.
func PingRedis(rdb *redis.Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	_, err := rdb.Ping(ctx).Result()
	return err
}
