package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/inkwell/showcase-api/internal/core/domain"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Sitemap SitemapConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=showcase"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SitemapConfig struct {
	// BaseURL prefixes relative permalinks in emitted documents.
	BaseURL string `env:"SITEMAP_BASE_URL, default=https://showcase.example.com"`
	// PerPage is the number of items per url-set page. Must stay at or under
	// the provider ceiling of 50000 entries per document.
	PerPage int `env:"SITEMAP_PER_PAGE, default=10000"`
	// ContentType restricts sitemap content to one item type.
	ContentType string `env:"SITEMAP_CONTENT_TYPE, default=work"`
	// RevalidateEvery is the cache TTL and sweep interval for regeneration.
	RevalidateEvery time.Duration `env:"SITEMAP_REVALIDATE_EVERY, default=1h"`
	// Workers is the size of the revalidation worker pool.
	Workers int `env:"SITEMAP_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate enforces the constraints that would otherwise surface as bad
// crawler output at runtime.
func (c *Config) Validate() error {
	if c.Sitemap.PerPage <= 0 {
		return fmt.Errorf("config: SITEMAP_PER_PAGE must be positive, got %d", c.Sitemap.PerPage)
	}
	if c.Sitemap.PerPage > domain.MaxEntriesPerDocument {
		return fmt.Errorf("config: SITEMAP_PER_PAGE %d exceeds the %d entries-per-document ceiling",
			c.Sitemap.PerPage, domain.MaxEntriesPerDocument)
	}
	if c.Sitemap.RevalidateEvery <= 0 {
		return fmt.Errorf("config: SITEMAP_REVALIDATE_EVERY must be positive")
	}
	return nil
}
