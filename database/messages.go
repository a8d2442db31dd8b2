package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"health-chatbot-backend/models"
)

// MessageRepository persists processed chat exchanges.
type MessageRepository struct {
	collection *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{collection: db.Collection("messages")}
}

// Save inserts one exchange record.
func (r *MessageRepository) Save(ctx context.Context, message *models.Message) error {
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		message.ID = id
	}
	return nil
}

// RecentBySession returns the latest exchanges for a session, newest first.
func (r *MessageRepository) RecentBySession(ctx context.Context, sessionID string, limit int64) ([]models.Message, error) {
	if limit <= 0 {
		limit = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}

	return messages, nil
}

// CountByChannel returns message totals grouped by channel.
func (r *MessageRepository) CountByChannel(ctx context.Context) (map[models.MessageChannel]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$channel",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate messages: %w", err)
	}
	defer cursor.Close(ctx)

	counts := make(map[models.MessageChannel]int64)
	for cursor.Next(ctx) {
		var row struct {
			Channel models.MessageChannel `bson:"_id"`
			Count   int64                 `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode aggregate row: %w", err)
		}
		counts[row.Channel] = row.Count
	}

	return counts, cursor.Err()
}
