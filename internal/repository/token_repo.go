package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"qiyada/internal/model"
)

// TokenRepo handles MongoDB operations for invite tokens
type TokenRepo interface {
	Create(ctx context.Context, token *model.InviteToken) (string, error)
	GetByID(ctx context.Context, id string) (*model.InviteToken, error)
	GetByCode(ctx context.Context, code string) (*model.InviteToken, error)
	ListByAssessment(ctx context.Context, assessmentID string) ([]*model.InviteToken, error)
	MarkUsed(ctx context.Context, id, userID string) error
	UpdateStatus(ctx context.Context, id string, status model.TokenStatus) error
}

type tokenRepo struct {
	collection *mongo.Collection
}

// NewTokenRepo creates a new token repository
func NewTokenRepo(db *mongo.Database) TokenRepo {
	return &tokenRepo{
		collection: db.Collection("invite_tokens"),
	}
}

func (r *tokenRepo) Create(ctx context.Context, token *model.InviteToken) (string, error) {
	token.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, token)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	token.ID = oid.Hex()
	return token.ID, nil
}

func (r *tokenRepo) GetByID(ctx context.Context, id string) (*model.InviteToken, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var token model.InviteToken
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&token)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	token.ID = id
	return &token, nil
}

func (r *tokenRepo) GetByCode(ctx context.Context, code string) (*model.InviteToken, error) {
	var token model.InviteToken
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&token)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *tokenRepo) ListByAssessment(ctx context.Context, assessmentID string) ([]*model.InviteToken, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"assessmentId": assessmentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tokens []*model.InviteToken
	if err := cursor.All(ctx, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *tokenRepo) MarkUsed(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"status": model.TokenUsed,
		"usedBy": userID,
		"usedAt": now,
	}}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *tokenRepo) UpdateStatus(ctx context.Context, id string, status model.TokenStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	return err
}
