package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"coffee-app/internal/models"
)

// MessageRepository — каноническое хранилище сообщений.
// Запись хранится один раз; прочитанность и скрытие ведутся
// отдельными пометками на пару (пользователь, сообщение).
type MessageRepository interface {
	Insert(ctx context.Context, msg *models.Message) error
	// ListForUser возвращает все сообщения, где пользователь отправитель
	// или получатель, с вычисленным флагом Read и без скрытых.
	ListForUser(ctx context.Context, userID string) ([]models.Message, error)
	SetRead(ctx context.Context, userID, messageID string) error
	SetAllRead(ctx context.Context, userID string) error
	Hide(ctx context.Context, userID, messageID string) error
	DeleteAllForUser(ctx context.Context, userID string) error
}

type messageFlag struct {
	UserID    string `bson:"user_id"`
	MessageID string `bson:"message_id"`
	Read      bool   `bson:"read"`
	Hidden    bool   `bson:"hidden"`
}

type MongoMessageRepository struct {
	messagesCol *mongo.Collection
	flagsCol    *mongo.Collection
}

func NewMongoMessageRepository(db *mongo.Database) *MongoMessageRepository {
	return &MongoMessageRepository{
		messagesCol: db.Collection("messages"),
		flagsCol:    db.Collection("message_flags"),
	}
}

func (r *MongoMessageRepository) Insert(ctx context.Context, msg *models.Message) error {
	_, err := r.messagesCol.InsertOne(ctx, msg)
	return err
}

func (r *MongoMessageRepository) ListForUser(ctx context.Context, userID string) ([]models.Message, error) {
	filter := bson.M{"$or": []bson.M{
		{"from_id": userID},
		{"to": userID},
	}}
	cursor, err := r.messagesCol.Find(ctx, filter, options.Find().SetSort(bson.M{"timestamp": 1}))
	if err != nil {
		return nil, err
	}
	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	flags, err := r.flagsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]models.Message, 0, len(messages))
	for _, msg := range messages {
		flag := flags[msg.ID]
		if flag != nil && flag.Hidden {
			continue
		}
		// Свои сообщения всегда прочитаны; чужие — по пометке.
		msg.Read = msg.FromID == userID || (flag != nil && flag.Read)
		result = append(result, msg)
	}
	return result, nil
}

func (r *MongoMessageRepository) SetRead(ctx context.Context, userID, messageID string) error {
	_, err := r.flagsCol.UpdateOne(ctx,
		bson.M{"user_id": userID, "message_id": messageID},
		bson.M{"$set": bson.M{"read": true}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *MongoMessageRepository) SetAllRead(ctx context.Context, userID string) error {
	cursor, err := r.messagesCol.Find(ctx, bson.M{"to": userID})
	if err != nil {
		return err
	}
	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return err
	}
	for _, msg := range messages {
		if err := r.SetRead(ctx, userID, msg.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *MongoMessageRepository) Hide(ctx context.Context, userID, messageID string) error {
	_, err := r.flagsCol.UpdateOne(ctx,
		bson.M{"user_id": userID, "message_id": messageID},
		bson.M{"$set": bson.M{"hidden": true}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *MongoMessageRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.flagsCol.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}

func (r *MongoMessageRepository) flagsForUser(ctx context.Context, userID string) (map[string]*messageFlag, error) {
	cursor, err := r.flagsCol.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	var flags []messageFlag
	if err := cursor.All(ctx, &flags); err != nil {
		return nil, err
	}
	byID := make(map[string]*messageFlag, len(flags))
	for i := range flags {
		byID[flags[i].MessageID] = &flags[i]
	}
	return byID, nil
}
