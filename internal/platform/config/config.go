package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process-level configuration. Values come from environment
// variables with development defaults so main stays lean.
type Server struct {
	Addr          string
	JWTSigningKey string

	PostgresDSN string
	Redis       RedisConfig

	KafkaBrokers []string
	AuditTopic   string

	Screening ScreeningConfig
	Risk      RiskConfig
}

// RedisConfig carries connection settings for the report cache.
// An empty URL disables Redis and the system degrades to live checks.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// ScreeningConfig bounds the watchlist verification fan-out.
type ScreeningConfig struct {
	// ProviderTimeout caps each provider call; a timed-out provider is
	// reported with status ERROR, never left pending.
	ProviderTimeout time.Duration
	// ReportTTL is how long an assembled verification report stays cached.
	ReportTTL time.Duration
}

// RiskConfig supplies the data the scoring model treats as external:
// the home jurisdiction and the high-risk jurisdiction list, both subject
// to regulatory updates without code changes.
type RiskConfig struct {
	HomeJurisdiction      string
	HighRiskJurisdictions []string
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	return Server{
		Addr:          envOr("VIGIA_ADDR", ":8080"),
		JWTSigningKey: envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		PostgresDSN:   os.Getenv("POSTGRES_DSN"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envIntOr("REDIS_POOL_SIZE", 10),
			MinIdleConns: envIntOr("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDurationOr("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDurationOr("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDurationOr("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		KafkaBrokers: splitNonEmpty(os.Getenv("KAFKA_BROKERS")),
		AuditTopic:   envOr("AUDIT_TOPIC", "vigia.compliance.events"),
		Screening: ScreeningConfig{
			ProviderTimeout: envDurationOr("SCREENING_PROVIDER_TIMEOUT", 5*time.Second),
			ReportTTL:       envDurationOr("SCREENING_REPORT_TTL", 24*time.Hour),
		},
		Risk: RiskConfig{
			HomeJurisdiction:      envOr("RISK_HOME_JURISDICTION", "Ecuador"),
			HighRiskJurisdictions: highRiskList(),
		},
	}
}

// highRiskList reads the FATF-style high-risk jurisdiction list from the
// environment, defaulting to the seed list used by compliance.
func highRiskList() []string {
	if raw := os.Getenv("RISK_HIGH_RISK_JURISDICTIONS"); raw != "" {
		return splitNonEmpty(raw)
	}
	return []string{
		"Corea del Norte",
		"Irán",
		"Myanmar",
		"Siria",
		"Yemen",
		"Afganistán",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitNonEmpty(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
