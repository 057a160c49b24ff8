package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthStatus is the coarse result of a health check
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker provides Redis health checking functionality
type HealthChecker struct {
	client  *Client
	timeout time.Duration
}

// NewHealthChecker creates a new Redis health checker
func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{client: client, timeout: 2 * time.Second}
}

// HealthCheck pings Redis and round-trips a probe key
func (h *HealthChecker) HealthCheck(ctx context.Context) RedisHealthCheck {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	config := h.client.GetConfig()
	details := map[string]string{
		"host":     config.Host,
		"port":     strconv.Itoa(config.Port),
		"database": strconv.Itoa(config.Database),
	}

	start := time.Now()
	if err := h.client.Ping(ctx); err != nil {
		details["error"] = "ping failed: " + err.Error()
		return RedisHealthCheck{Status: StatusDown, Details: details}
	}
	details["ping_latency"] = time.Since(start).String()

	if err := h.testBasicOperations(ctx); err != nil {
		details["error"] = "operations failed: " + err.Error()
		return RedisHealthCheck{Status: StatusDown, Details: details}
	}

	stats := h.client.Stats()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)

	return RedisHealthCheck{Status: StatusUp, Details: details}
}

func (h *HealthChecker) testBasicOperations(ctx context.Context) error {
	key := h.client.Key("health", "probe")
	if err := h.client.Set(ctx, key, "ok", time.Minute); err != nil {
		return err
	}
	if _, err := h.client.Get(ctx, key); err != nil {
		return err
	}
	return h.client.Delete(ctx, key)
}
