package configs

import (
	"time"

	"weather-pulse/pkg/resource"
)

// Defaults used when configs/application.yml is absent or leaves a key unresolved.
func init() {
	resource.SetDefault("app.name", "WeatherPulse")
	resource.SetDefault("app.version", "1.1.0")
	resource.SetDefault("app.server.port", "8080")
	resource.SetDefault("app.server.context-path", "/weather-pulse")

	resource.SetDefault("search.max-results", 8)
	resource.SetDefault("search.latency.min", 200*time.Millisecond)
	resource.SetDefault("search.latency.max", 500*time.Millisecond)
	resource.SetDefault("search.debounce", 300*time.Millisecond)

	resource.SetDefault("insight.base-url", "https://generativelanguage.googleapis.com")
	resource.SetDefault("insight.model", "gemini-2.5-flash")
	resource.SetDefault("insight.timeout", 20*time.Second)
	resource.SetDefault("insight.breaker.max-failures", 5)
	resource.SetDefault("insight.breaker.open-timeout", 30*time.Second)
	resource.SetDefault("insight.rate-limit.per-minute", 0)

	resource.SetDefault("session.idle-timeout", 30*time.Minute)
	resource.SetDefault("session.sweep-interval", time.Minute)
	resource.SetDefault("session.time-of-day.cron", "0 * * * *")
	resource.SetDefault("session.default-location", "San Francisco, CA")

	resource.SetDefault("favorites.store", "memory")
	resource.SetDefault("favorites.defaults", []string{
		"San Francisco, CA", "New York, NY", "London, UK", "Tokyo, JP", "Sydney, AU",
	})

	resource.SetDefault("redis.enabled", false)
	resource.SetDefault("redis.host", "localhost")
	resource.SetDefault("redis.port", 6379)
	resource.SetDefault("redis.password", "")
	resource.SetDefault("redis.database", 0)
	resource.SetDefault("redis.namespace", "weather-pulse")
}
