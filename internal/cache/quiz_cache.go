package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"hmate/internal/model"
)

// QuizCache stores generated quizzes so a client can fetch them again by id
type QuizCache interface {
	SetQuiz(ctx context.Context, quiz *model.Quiz) error
	GetQuiz(ctx context.Context, id string) (*model.Quiz, error)
}

type quizCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQuizCache creates a new quiz cache
func NewQuizCache(client *redis.Client) QuizCache {
	return &quizCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *quizCache) key(id string) string {
	return "quiz:" + id
}

func (c *quizCache) SetQuiz(ctx context.Context, quiz *model.Quiz) error {
	data, err := json.Marshal(quiz)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(quiz.ID), data, c.ttl).Err()
}

// GetQuiz returns nil, nil when the quiz expired or never existed
func (c *quizCache) GetQuiz(ctx context.Context, id string) (*model.Quiz, error) {
	data, err := c.client.Get(ctx, c.key(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var quiz model.Quiz
	if err := json.Unmarshal([]byte(data), &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}
