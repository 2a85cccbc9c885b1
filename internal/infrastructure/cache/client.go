// Package cache provee una caché de lectura para el catálogo de roles.
// El catálogo es inmutable una vez sembrado, así que las entradas nunca
// necesitan invalidación explícita.
package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss se devuelve cuando la clave no está en la caché.
var ErrCacheMiss = redis.Nil

// Client contrato mínimo de caché que usa el decorador de roles (DIP:
// la caché concreta puede ser Redis o un fake en tests).
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
}

var _ Client = (*RedisClient)(nil)

// RedisClient implementación de Client sobre Redis.
type RedisClient struct {
	rdb *redis.Client
}

// NewRedisClient crea el cliente y verifica la conexión con un PING.
func NewRedisClient(addr string) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisClient{rdb: rdb}, nil
}

// Get recupera el valor de una clave; ErrCacheMiss si no existe.
func (c *RedisClient) Get(ctx context.Context, key string) (string, error) {
	return c.rdb.Get(ctx, key).Result()
}

// Set guarda un valor con expiración.
func (c *RedisClient) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return c.rdb.Set(ctx, key, value, expiration).Err()
}
