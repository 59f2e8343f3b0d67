package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"grubdash/pkg/config"
	"grubdash/pkg/dish"
	"grubdash/pkg/logger"
	"grubdash/pkg/order"
	"grubdash/pkg/seed"
	"grubdash/pkg/store"
	"grubdash/pkg/store/memory"
	"grubdash/pkg/store/postgres"
	redisstore "grubdash/pkg/store/redis"
)

type stores struct {
	dishes store.Repository[dish.Dish]
	orders store.Repository[order.Order]
	close  func() error
}

// openStores builds the repositories for the configured backend and loads
// the seed records into them.
func openStores(ctx context.Context, cfg config.Config, log *logger.Logger) (stores, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		return openPostgres(ctx, cfg.DatabaseURL, log)
	case config.BackendRedis:
		return openRedis(ctx, cfg.RedisAddr, log)
	default:
		log.Info(ctx, "using in-memory store")
		return stores{
			dishes: memory.New(seed.Dishes()...),
			orders: memory.New(seed.Orders()...),
			close:  func() error { return nil },
		}, nil
	}
}

func openPostgres(ctx context.Context, url string, log *logger.Logger) (stores, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return stores{}, fmt.Errorf("db connect: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return stores{}, fmt.Errorf("db ping: %w", err)
	}

	dishes := postgres.New[dish.Dish](db, "dishes")
	orders := postgres.New[order.Order](db, "orders")
	for _, step := range []func(context.Context) error{
		dishes.Migrate,
		orders.Migrate,
		func(ctx context.Context) error { return dishes.Seed(ctx, seed.Dishes()...) },
		func(ctx context.Context) error { return orders.Seed(ctx, seed.Orders()...) },
	} {
		if err := step(ctx); err != nil {
			db.Close()
			return stores{}, err
		}
	}

	log.Info(ctx, "using postgres store")
	return stores{dishes: dishes, orders: orders, close: db.Close}, nil
}

func openRedis(ctx context.Context, addr string, log *logger.Logger) (stores, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return stores{}, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	dishes := redisstore.New[dish.Dish](client, "grubdash:dishes")
	orders := redisstore.New[order.Order](client, "grubdash:orders")
	if err := dishes.Seed(ctx, seed.Dishes()...); err != nil {
		client.Close()
		return stores{}, fmt.Errorf("seed dishes: %w", err)
	}
	if err := orders.Seed(ctx, seed.Orders()...); err != nil {
		client.Close()
		return stores{}, fmt.Errorf("seed orders: %w", err)
	}

	log.Info(ctx, "using redis store", "addr", addr)
	return stores{dishes: dishes, orders: orders, close: client.Close}, nil
}
