package config

import (
	"log"

	"github.com/redis/rueidis"
)

// NewRedisClient connects to the redis instance backing the notification
// queue.
func NewRedisClient(addr string) rueidis.Client {
	client, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress: []string{addr},
		},
	)
	if err != nil {
		log.Fatalf("failed to create redis client: %v", err)
	}

	return client
}
