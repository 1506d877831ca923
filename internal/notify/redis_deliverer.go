package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/rueidis"
)

// RedisDeliverer pushes notifications onto a redis list consumed by the
// delivery service.
type RedisDeliverer struct {
	client rueidis.Client
	key    string
}

func NewRedisDeliverer(client rueidis.Client, queueKey string) *RedisDeliverer {
	return &RedisDeliverer{
		client: client,
		key:    queueKey,
	}
}

func (r *RedisDeliverer) Deliver(ctx context.Context, n Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	cmd := r.client.B().Rpush().Key(r.key).Element(string(payload)).Build()
	return r.client.Do(ctx, cmd).Error()
}
