package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete application configuration, loadable from
// environment variables (PIXORA_ prefix), flags, or YAML config files.
type Config struct {
	Addr         string `default:"0.0.0.0:8080" usage:"API server listen address"`
	SnapshotPath string `default:"pixora.db" usage:"Path to the bbolt catalog snapshot file" flag:"snapshot-path"`
	Remote       RemoteConfig
	Admin        AdminConfig
	Session      SessionConfig
	RateLimit    RateLimitConfig
	CORS         CORSConfig
	Graceful     GracefulConfig
}

// RemoteConfig points at the optional external catalog source. When URL is
// empty the catalog runs purely on the snapshot and seed list.
type RemoteConfig struct {
	URL   string `usage:"Optional PostgreSQL catalog URL (PIXORA_REMOTE_URL)" flag:"remote-url"`
	Limit int    `default:"12" usage:"Max records fetched from the remote catalog at startup" flag:"remote-limit"`
}

// AdminConfig holds the API keys that unlock admin catalog mutations.
type AdminConfig struct {
	Keys   []string `usage:"Admin API keys (PIXORA_ADMIN_KEYS, comma separated)" flag:"admin-keys"`
	Pepper string   `usage:"HMAC pepper for API key hashing" flag:"admin-pepper"`
}

// SessionConfig controls cart session lifetime.
type SessionConfig struct {
	TTL             time.Duration `default:"30m" usage:"Idle time before a cart session is evicted" flag:"session-ttl"`
	CleanupInterval time.Duration `default:"5m" usage:"How often idle sessions are swept" flag:"session-cleanup"`
}

// RateLimitConfig controls the per-client rate limiter.
type RateLimitConfig struct {
	Max    int           `default:"100" usage:"Max requests per window"`
	Window time.Duration `default:"1m"  usage:"Rate limit window duration"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins          []string `default:"*" usage:"Allowed CORS origins"`
	AllowCredentials bool     `default:"false" usage:"Allow credentials (cookies, auth headers)" flag:"cors-credentials"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads configuration from environment variables, YAML config
// files, and platform defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "PIXORA",
		Files:     []string{"config.yaml", "/etc/pixora/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()
	return &cfg, nil
}

// applyPlatformDefaults maps platform-provided environment variables
// (Railway, Render, etc.) onto the PIXORA_-prefixed configuration.
func (c *Config) applyPlatformDefaults() {
	if c.Remote.URL == "" {
		if v := os.Getenv("DATABASE_URL"); v != "" {
			c.Remote.URL = v
		}
	}
	if port := os.Getenv("PORT"); port != "" && c.Addr == "0.0.0.0:8080" {
		c.Addr = "0.0.0.0:" + port
	}
}
