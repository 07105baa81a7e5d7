package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"hmate/internal/model"
	"hmate/internal/pool"
)

// questionDoc is one template stored with its place in the catalogue
type questionDoc struct {
	Tier     model.AudienceTier `bson:"tier"`
	Category model.Category     `bson:"category"`
	Position int                `bson:"position"`
	Question string             `bson:"question"`
	Options  []model.Option     `bson:"options"`
	Revision string             `bson:"revision"`
}

// ErrEmptyCatalogue is returned when there are no templates to store or load
var ErrEmptyCatalogue = errors.New("question catalogue is empty")

// TierCount is the number of stored templates for one tier
type TierCount struct {
	Tier  model.AudienceTier `json:"tier" bson:"_id"`
	Count int                `json:"count" bson:"count"`
}

type QuestionRepo interface {
	// ReplaceCatalogue makes the stored templates equal to the pool's content.
	// Templates are upserted before stale ones are pruned, so a failed
	// write never leaves the collection empty.
	ReplaceCatalogue(ctx context.Context, p *pool.Pool) (int, error)
	// LoadCatalogue builds a validated pool from the stored templates
	LoadCatalogue(ctx context.Context) (*pool.Pool, error)
	CountByTier(ctx context.Context) ([]TierCount, error)
}

type questionRepo struct {
	collection *mongo.Collection
	log        *zap.Logger
}

func NewQuestionRepo(db *mongo.Database, log *zap.Logger) QuestionRepo {
	repo := &questionRepo{
		collection: db.Collection("question_templates"),
		log:        log,
	}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *questionRepo) ensureIndexes(ctx context.Context) {
	keys := bson.D{
		{Key: "tier", Value: 1},
		{Key: "category", Value: 1},
		{Key: "position", Value: 1},
	}
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys, Options: options.Index().SetUnique(true)})
	if err != nil {
		r.log.Warn("failed to create index", zap.String("collection", r.collection.Name()), zap.Error(err))
	}
}

func (r *questionRepo) ReplaceCatalogue(ctx context.Context, p *pool.Pool) (int, error) {
	revision := uuid.NewString()

	var writes []mongo.WriteModel
	for tier, cats := range p.Catalogue() {
		for cat, list := range cats {
			for i, t := range list {
				doc := questionDoc{
					Tier:     tier,
					Category: cat,
					Position: i,
					Question: t.Question,
					Options:  t.Options,
					Revision: revision,
				}
				writes = append(writes, mongo.NewReplaceOneModel().
					SetFilter(bson.M{"tier": tier, "category": cat, "position": i}).
					SetReplacement(doc).
					SetUpsert(true))
			}
		}
	}
	if len(writes) == 0 {
		return 0, ErrEmptyCatalogue
	}

	if _, err := r.collection.BulkWrite(ctx, writes); err != nil {
		return 0, fmt.Errorf("write question templates: %w", err)
	}
	pruned, err := r.collection.DeleteMany(ctx, bson.M{"revision": bson.M{"$ne": revision}})
	if err != nil {
		return 0, fmt.Errorf("prune question templates: %w", err)
	}
	r.log.Info("question catalogue replaced", zap.Int("templates", len(writes)), zap.Int64("pruned", pruned.DeletedCount))
	return len(writes), nil
}

func (r *questionRepo) LoadCatalogue(ctx context.Context) (*pool.Pool, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "tier", Value: 1},
		{Key: "category", Value: 1},
		{Key: "position", Value: 1},
	})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []questionDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrEmptyCatalogue
	}

	catalogue := make(pool.Catalogue)
	for _, d := range docs {
		if catalogue[d.Tier] == nil {
			catalogue[d.Tier] = make(map[model.Category][]model.QuestionTemplate)
		}
		catalogue[d.Tier][d.Category] = append(catalogue[d.Tier][d.Category], model.QuestionTemplate{
			Question: d.Question,
			Options:  d.Options,
		})
	}
	return pool.New(catalogue)
}

func (r *questionRepo) CountByTier(ctx context.Context) ([]TierCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$tier"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var counts []TierCount
	if err = cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
