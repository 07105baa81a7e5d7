package service

import (
	"context"
	"sync"

	"hmate/internal/cache"
	"hmate/internal/config"
	"hmate/internal/model"
)

var testModels = config.GeminiModels{
	Questions: "q-model",
	Analysis:  "a-model",
	Chat:      "c-model",
	Roadmap:   "r-model",
}

// fakeGenerator replays canned answers and records every request
type fakeGenerator struct {
	mu       sync.Mutex
	disabled bool
	replies  []string
	err      error
	requests []GenerateRequest
}

func (f *fakeGenerator) Enabled() bool { return !f.disabled }

func (f *fakeGenerator) Generate(_ context.Context, req GenerateRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "", ErrEmptyResponse
	}
	reply := f.replies[0]
	if len(f.replies) > 1 {
		f.replies = f.replies[1:]
	}
	return reply, nil
}

func (f *fakeGenerator) lastRequest() GenerateRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

type memQuizCache struct {
	quizzes map[string]*model.Quiz
}

func newMemQuizCache() *memQuizCache {
	return &memQuizCache{quizzes: make(map[string]*model.Quiz)}
}

func (c *memQuizCache) SetQuiz(_ context.Context, quiz *model.Quiz) error {
	c.quizzes[quiz.ID] = quiz
	return nil
}

func (c *memQuizCache) GetQuiz(_ context.Context, id string) (*model.Quiz, error) {
	return c.quizzes[id], nil
}

type memRoadmapCache struct {
	roadmaps map[string]*model.Roadmap
}

func newMemRoadmapCache() *memRoadmapCache {
	return &memRoadmapCache{roadmaps: make(map[string]*model.Roadmap)}
}

func (c *memRoadmapCache) Set(_ context.Context, r *model.Roadmap) error {
	c.roadmaps[r.ID] = r
	return nil
}

func (c *memRoadmapCache) Get(_ context.Context, id string) (*model.Roadmap, error) {
	return c.roadmaps[id], nil
}

type memResultRepo struct {
	results map[string]*model.CareerAnalysis
}

func newMemResultRepo() *memResultRepo {
	return &memResultRepo{results: make(map[string]*model.CareerAnalysis)}
}

func (r *memResultRepo) Save(_ context.Context, a *model.CareerAnalysis) error {
	r.results[a.ID] = a
	return nil
}

func (r *memResultRepo) GetByID(_ context.Context, id string) (*model.CareerAnalysis, error) {
	return r.results[id], nil
}

func (r *memResultRepo) ListRecent(_ context.Context, limit int64) ([]*model.CareerAnalysis, error) {
	var out []*model.CareerAnalysis
	for _, a := range r.results {
		if int64(len(out)) >= limit {
			break
		}
		out = append(out, a)
	}
	return out, nil
}

type memTrends struct {
	counts map[string]int
}

func (t *memTrends) Record(_ context.Context, titles ...string) error {
	if t.counts == nil {
		t.counts = make(map[string]int)
	}
	for _, title := range titles {
		t.counts[title]++
	}
	return nil
}

func (t *memTrends) Top(_ context.Context, limit int) ([]cache.CareerCount, error) {
	return nil, nil
}

func (t *memTrends) Rank(_ context.Context, title string) (int, error) {
	n, ok := t.counts[title]
	if !ok {
		return 0, nil
	}
	rank := 1
	for _, c := range t.counts {
		if c > n {
			rank++
		}
	}
	return rank, nil
}

type memChatRepo struct {
	transcripts map[string]*model.ChatTranscript
}

func (r *memChatRepo) Append(_ context.Context, sessionID string, messages ...model.ChatMessage) error {
	if r.transcripts == nil {
		r.transcripts = make(map[string]*model.ChatTranscript)
	}
	t := r.transcripts[sessionID]
	if t == nil {
		t = &model.ChatTranscript{SessionID: sessionID}
		r.transcripts[sessionID] = t
	}
	t.Messages = append(t.Messages, messages...)
	return nil
}

func (r *memChatRepo) GetByID(_ context.Context, sessionID string) (*model.ChatTranscript, error) {
	return r.transcripts[sessionID], nil
}
