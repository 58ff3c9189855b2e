package app

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/JavadTorabiKh/microservices-k8s-lab/internal/config"
	"github.com/JavadTorabiKh/microservices-k8s-lab/internal/directory"
	"github.com/JavadTorabiKh/microservices-k8s-lab/internal/logger"
	"github.com/JavadTorabiKh/microservices-k8s-lab/internal/redis"
)

type Infra struct {
	Redis *redis.Client
	DB    *sql.DB // nil when no database is configured
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	redisClient, err := redis.New(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", map[string]any{"addr": cfg.RedisAddr})

	infra := &Infra{Redis: redisClient}

	if cfg.DatabaseDSN == "" {
		return infra, nil
	}

	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := directory.Migrate(ctx, sqlDB); err != nil {
		return nil, err
	}

	logger.Info("database ready", nil)

	infra.DB = sqlDB
	return infra, nil
}

// Directory picks the user directory backend: Postgres when configured,
// otherwise the built-in sample table.
func (i *Infra) Directory() directory.Directory {
	if i.DB != nil {
		return directory.NewPostgres(i.DB)
	}
	return directory.NewStatic()
}

func (i *Infra) Close() error {
	if i.DB != nil {
		if err := i.DB.Close(); err != nil {
			return err
		}
	}
	return i.Redis.Close()
}
