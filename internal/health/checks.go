package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/segmentio/kafka-go"
)

// kafkaCheck passes when at least one broker accepts a connection.
func kafkaCheck(brokers []string) health.CheckFunc {
	return func(ctx context.Context) error {
		var errs []error

		for _, broker := range brokers {
			conn, err := kafka.DialContext(ctx, "tcp", broker)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", broker, err))
				continue
			}

			return conn.Close()
		}

		return fmt.Errorf("no kafka broker reachable: %w", errors.Join(errs...))
	}
}

func checksFor(cfg *config.Config) []health.Config {
	checks := []health.Config{
		{
			Name:    "database",
			Timeout: 3 * time.Second,
			Check:   postgres.New(postgres.Config{DSN: cfg.Database.GetDSN()}),
		},
		{
			Name:    "redis",
			Timeout: 2 * time.Second,
			Check:   healthRedis.New(healthRedis.Config{DSN: cfg.RedisConnect.GetDSN()}),
		},
	}

	// Kafka only carries low-stock alerts, so an outage degrades the
	// service instead of failing it.
	if cfg.Kafka.Enabled() {
		checks = append(checks, health.Config{
			Name:      "kafka",
			Timeout:   2 * time.Second,
			SkipOnErr: true,
			Check:     kafkaCheck(cfg.Kafka.Brokers),
		})
	}

	return checks
}

// NewHealthHandler reports the service healthy only when both Postgres and
// Redis answer.
func NewHealthHandler(cfg *config.Config, version string) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{Name: "ecommerce-analytics", Version: version}),
		health.WithSystemInfo(),
		health.WithChecks(checksFor(cfg)...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
