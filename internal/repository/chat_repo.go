package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hmate/internal/model"
)

// ChatRepo keeps transcripts of websocket consultation sessions
type ChatRepo interface {
	Append(ctx context.Context, sessionID string, messages ...model.ChatMessage) error
	GetByID(ctx context.Context, sessionID string) (*model.ChatTranscript, error)
}

type chatRepo struct {
	collection *mongo.Collection
}

func NewChatRepo(db *mongo.Database) ChatRepo {
	return &chatRepo{
		collection: db.Collection("chat_sessions"),
	}
}

func (r *chatRepo) Append(ctx context.Context, sessionID string, messages ...model.ChatMessage) error {
	now := time.Now()
	update := bson.M{
		"$push":        bson.M{"messages": bson.M{"$each": messages}},
		"$set":         bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{"startedAt": now},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": sessionID}, update, options.Update().SetUpsert(true))
	return err
}

func (r *chatRepo) GetByID(ctx context.Context, sessionID string) (*model.ChatTranscript, error) {
	var transcript model.ChatTranscript
	err := r.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&transcript)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &transcript, nil
}
