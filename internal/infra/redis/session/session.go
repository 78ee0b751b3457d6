package infra_session_cache

import (
	"strconv"
	"time"

	"github.com/go-redis/redis"

	"github.com/cinematch/core/internal/model"
)

// Driver keeps delivery-level session tokens and the one-shot
// return-from-detail marker. Both are transient, the durable user record
// lives in the local store.
type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) SetToken(token string, userID model.UserID, ttl time.Duration) error {
	fullKey := d.fullKey("token:" + token)
	return d.client.Set(fullKey, strconv.FormatInt(userID, 10), ttl).Err()
}

// ResolveToken returns EmptyUserID for unknown tokens.
func (d *Driver) ResolveToken(token string) (model.UserID, error) {
	fullKey := d.fullKey("token:" + token)

	val, err := d.client.Get(fullKey).Result()
	if err != nil {
		if err == redis.Nil {
			return model.EmptyUserID, nil
		}
		return model.EmptyUserID, err
	}

	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return model.EmptyUserID, err
	}
	return id, nil
}

func (d *Driver) DropToken(token string) error {
	return d.client.Del(d.fullKey("token:" + token)).Err()
}

// MarkReturnFromDetail flags the session so the onboarding screen is
// skipped once on the next home load.
func (d *Driver) MarkReturnFromDetail(token string, ttl time.Duration) error {
	return d.client.Set(d.fullKey("return:"+token), "true", ttl).Err()
}

// TakeReturnFromDetail reads and clears the flag in one pass.
func (d *Driver) TakeReturnFromDetail(token string) (bool, error) {
	fullKey := d.fullKey("return:" + token)

	val, err := d.client.Get(fullKey).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	_ = d.client.Del(fullKey).Err()

	return val == "true", nil
}

func (d *Driver) fullKey(key string) string {
	if d.key != "" {
		return d.key + ":" + key
	}
	return key
}
