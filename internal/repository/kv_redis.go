package repository

import (
	"context"
	"errors"
	"log"

	"github.com/redis/go-redis/v9"

	errorvalues "github.com/limbo/moodboard/internal/error_values"
	"github.com/limbo/moodboard/pkg/cleanup"
)

type RedisCfg struct {
	Address  string
	Password string
	DB       int
}

type RedisKV struct {
	client redis.Cmdable
}

func NewRedisKV(cfg *RedisCfg) *RedisKV {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("error while pinging redis for local entries store: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return &RedisKV{
		client: client,
	}
}

func NewRedisKVWithClient(client redis.Cmdable) *RedisKV {
	return &RedisKV{
		client: client,
	}
}

func (rkv *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := rkv.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errorvalues.ErrKeyNotFound
		}
		return nil, errors.New("redis get error: " + err.Error())
	}
	return value, nil
}

func (rkv *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	if err := rkv.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.New("redis set error: " + err.Error())
	}
	return nil
}
