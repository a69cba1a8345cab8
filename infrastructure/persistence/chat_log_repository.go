package persistence

import (
	"context"

	"granitereply/domain/model"
	"granitereply/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ChatLogRepository writes widget transcripts to MongoDB. The client may be
// nil when Mongo is not configured; saving then becomes a logged no-op.
type ChatLogRepository struct {
	mongoDb *mongo.Client
	dbName  string
}

func NewChatLogRepository(db *mongo.Client, dbName string) *ChatLogRepository {
	if dbName == "" {
		dbName = "granitereply"
	}
	return &ChatLogRepository{mongoDb: db, dbName: dbName}
}

func (r *ChatLogRepository) SaveTranscript(ctx context.Context, transcript *model.ChatTranscript) error {
	if r.mongoDb == nil {
		logger.GetLogger().Info("MongoDB client is nil - skipping transcript save")
		return nil
	}
	collection := r.mongoDb.Database(r.dbName).Collection("chat_transcripts")
	_, err := collection.InsertOne(ctx, transcript)
	return err
}
