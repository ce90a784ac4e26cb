// Package bootstrap wires the runtime dependencies shared by the server and CLI tools.
package bootstrap

import (
	"context"
	"fmt"

	"blogapp/internal/cache"
	"blogapp/internal/config"
	"blogapp/internal/database"
	"blogapp/internal/middleware"
	"blogapp/internal/observability"
	"blogapp/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ServiceName identifies this process in traces and metrics.
const ServiceName = "blog-api"

// Options control runtime initialization behavior.
type Options struct {
	// SeedDemo fills an empty database with demo content.
	SeedDemo bool
}

// InitTracing configures the tracer from cfg and returns its shutdown func.
func InitTracing(cfg *config.Config) (func(context.Context) error, error) {
	return observability.InitTracing(observability.TracingConfig{
		ServiceName:    ServiceName,
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingSampleRatio,
	})
}

// InitRuntime connects to the database and Redis and optionally seeds demo data.
// Redis is optional; the returned client is nil when it is not configured or unreachable.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemo {
		if err := seedIfEmpty(ctx, db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return db, r, nil
}

func seedIfEmpty(ctx context.Context, db *gorm.DB) error {
	empty, err := seed.IsEmpty(ctx, db)
	if err != nil {
		return err
	}
	if !empty {
		middleware.Logger.InfoContext(ctx, "database already has data, skipping demo seed")
		return nil
	}
	_, err = seed.Seed(ctx, db, seed.DefaultOptions)
	return err
}
