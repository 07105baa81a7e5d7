package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hmate/internal/model"
)

// ResultRepo handles MongoDB operations for career analyses
type ResultRepo interface {
	Save(ctx context.Context, analysis *model.CareerAnalysis) error
	GetByID(ctx context.Context, id string) (*model.CareerAnalysis, error)
	ListRecent(ctx context.Context, limit int64) ([]*model.CareerAnalysis, error)
}

type resultRepo struct {
	collection *mongo.Collection
}

// NewResultRepo creates a new result repository
func NewResultRepo(db *mongo.Database) ResultRepo {
	return &resultRepo{
		collection: db.Collection("career_results"),
	}
}

func (r *resultRepo) Save(ctx context.Context, analysis *model.CareerAnalysis) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": analysis.ID}, analysis, opts)
	return err
}

func (r *resultRepo) GetByID(ctx context.Context, id string) (*model.CareerAnalysis, error) {
	var analysis model.CareerAnalysis
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&analysis)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (r *resultRepo) ListRecent(ctx context.Context, limit int64) ([]*model.CareerAnalysis, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*model.CareerAnalysis
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
