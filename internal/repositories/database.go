package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"


	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/config"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"

	_ "github.com/lib/pq"
)

const (
	queryTimeout          = 5 * time.Second
	analyticsQueryTimeout = 30 * time.Second
)

// withTimeout bounds a single repository call. An earlier deadline already
// on ctx wins.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d)
}

type Repository struct {
	DB             *sql.DB
	Catalog        CatalogRepository
	Customer       CustomerRepository
	Inventory      InventoryRepository
	Order          OrderRepository
	Sales          SalesRepository
	Recommendation RecommendationRepository
	User           UserRepository
}

// Open connects to Postgres through otelsql so every query gets a span.
func Open(cfg config.Database) (*sql.DB, error) {

	db, err := otelsql.Open("postgres", cfg.GetDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// NewRedisClient connects to the Redis instance backing rate limiting and
// idempotency keys.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {

	opt, err := redis.ParseURL(cfg.RedisConnect.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	opt.DB = cfg.RedisConnect.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s:%s: %w", cfg.RedisConnect.Host, cfg.RedisConnect.Port, err)
	}

	slog.Info("✅ Connected to Redis", slog.String("host", cfg.RedisConnect.Host), slog.Int("db", cfg.RedisConnect.DB))

	return client, nil
}

func New(cfg *config.Config) (*Repository, error) {

	db, err := Open(cfg.Database)
	if err != nil {
		return nil, err
	}

	return NewFromDB(db), nil
}

func NewFromDB(db *sql.DB) *Repository {
	return &Repository{
		DB:             db,
		Catalog:        NewCatalogRepo(db),
		Customer:       NewCustomerRepo(db),
		Inventory:      NewInventoryRepo(db),
		Order:          NewOrderRepo(db),
		Sales:          NewSalesRepo(db),
		Recommendation: NewRecommendationRepo(db),
		User:           NewUserRepo(db),
	}
}

func (p *Repository) Close() error {
	return p.DB.Close()
}
