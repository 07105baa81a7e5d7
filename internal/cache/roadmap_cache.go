package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"hmate/internal/model"
)

type RoadmapCache interface {
	Set(ctx context.Context, roadmap *model.Roadmap) error
	Get(ctx context.Context, id string) (*model.Roadmap, error)
}

type roadmapCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRoadmapCache(client *redis.Client) RoadmapCache {
	return &roadmapCache{
		client: client,
		ttl:    7 * 24 * time.Hour,
	}
}

func (c *roadmapCache) Set(ctx context.Context, roadmap *model.Roadmap) error {
	data, err := json.Marshal(roadmap)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "roadmap:"+roadmap.ID, data, c.ttl).Err()
}

func (c *roadmapCache) Get(ctx context.Context, id string) (*model.Roadmap, error) {
	data, err := c.client.Get(ctx, "roadmap:"+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var roadmap model.Roadmap
	err = json.Unmarshal([]byte(data), &roadmap)
	return &roadmap, err
}
