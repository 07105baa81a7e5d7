package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const careerTrendsKey = "careers:recommended"

// CareerTrends keeps a ZSET of how often each career title was recommended
type CareerTrends interface {
	Record(ctx context.Context, titles ...string) error
	Top(ctx context.Context, limit int) ([]CareerCount, error)
	Rank(ctx context.Context, title string) (int, error)
}

// CareerCount is a single entry of the recommendation ranking
type CareerCount struct {
	Title string `json:"title"`
	Count int    `json:"count"`
	Rank  int    `json:"rank"`
}

type careerTrends struct {
	client *redis.Client
}

// NewCareerTrends creates a new career ranking backed by Redis
func NewCareerTrends(client *redis.Client) CareerTrends {
	return &careerTrends{
		client: client,
	}
}

func (c *careerTrends) Record(ctx context.Context, titles ...string) error {
	if len(titles) == 0 {
		return nil
	}
	pipe := c.client.TxPipeline()
	for _, t := range titles {
		pipe.ZIncrBy(ctx, careerTrendsKey, 1, t)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (c *careerTrends) Top(ctx context.Context, limit int) ([]CareerCount, error) {
	if limit <= 0 {
		return []CareerCount{}, nil
	}
	results, err := c.client.ZRevRangeWithScores(ctx, careerTrendsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]CareerCount, len(results))
	for i, z := range results {
		entries[i] = CareerCount{
			Title: z.Member.(string),
			Count: int(z.Score),
			Rank:  i + 1,
		}
	}
	return entries, nil
}

// Rank is 1-indexed, 0 when the title was never recommended
func (c *careerTrends) Rank(ctx context.Context, title string) (int, error) {
	rank, err := c.client.ZRevRank(ctx, careerTrendsKey, title).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return int(rank) + 1, nil
}
