package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var errStaleList = errors.New("cache: list version changed")

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(addr, password string, db int) *RedisClient {
	return &RedisClient{
		client: redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     password,
			DB:           db,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}),
	}
}

func (r *RedisClient) Connect(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func (r *RedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

// Get возвращает redis.Nil если ключа нет
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *RedisClient) GetDelete(ctx context.Context, key string) (string, error) {
	return r.client.GetDel(ctx, key).Result()
}

func (r *RedisClient) Delete(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

func listVersionKey(key string) string {
	return key + ":v"
}

// ListVersion версия списка key, 0 если списка еще не инвалидировали
func (r *RedisClient) ListVersion(ctx context.Context, key string) (int64, error) {
	v, err := r.client.Get(ctx, listVersionKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// InvalidateList удаляет список и увеличивает его версию
func (r *RedisClient) InvalidateList(ctx context.Context, key string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, listVersionKey(key))
		pipe.Del(ctx, key)
		return nil
	})
	return err
}

// ReplaceList атомарно заменяет список items и ставит TTL, только если версия
// все еще равна version. false - список устарел и не записан.
func (r *RedisClient) ReplaceList(ctx context.Context, key string, version int64, expiration time.Duration, items ...string) (bool, error) {
	verKey := listVersionKey(key)
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, verKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != version {
			return errStaleList
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			if len(items) > 0 {
				args := make([]interface{}, len(items))
				for i, item := range items {
					args[i] = item
				}
				pipe.RPush(ctx, key, args...)
				if expiration > 0 {
					pipe.Expire(ctx, key, expiration)
				}
			}
			return nil
		})
		return err
	}, verKey)
	if errors.Is(err, errStaleList) || errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetList получает весь список, для отсутствующего ключа - пустой список
func (r *RedisClient) GetList(ctx context.Context, key string) ([]string, error) {
	return r.client.LRange(ctx, key, 0, -1).Result()
}
