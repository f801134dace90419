package realtime

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"janawaaz-be/models"
)

// Channel names for the pub/sub streams backing the live dashboards.
const (
	IssuesChannel = "events:issues"
	StatsChannel  = "events:stats"
)

// Hub fans out issue and statistics updates over Redis pub/sub. Delivery is
// best effort; a publish failure never fails the mutation that triggered it.
type Hub struct {
	rdb *redis.Client
}

func NewHub(rdb *redis.Client) *Hub {
	return &Hub{rdb: rdb}
}

// PublishIssue broadcasts an issue snapshot to subscribers.
func (h *Hub) PublishIssue(ctx context.Context, issue *models.Issue) error {
	payload, err := json.Marshal(issue)
	if err != nil {
		return err
	}
	return h.rdb.Publish(ctx, IssuesChannel, payload).Err()
}

// PublishStats broadcasts the global statistics document to subscribers.
func (h *Hub) PublishStats(ctx context.Context, stats models.Statistics) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return h.rdb.Publish(ctx, StatsChannel, payload).Err()
}

// Subscribe opens a subscription on a channel. Closing the returned PubSub
// unsubscribes.
func (h *Hub) Subscribe(ctx context.Context, channel string) *redis.PubSub {
	return h.rdb.Subscribe(ctx, channel)
}
