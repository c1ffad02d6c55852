package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"qiyada/internal/model"
)

// SubmissionRepo handles MongoDB operations for submissions
type SubmissionRepo interface {
	Create(ctx context.Context, submission *model.Submission) (string, error)
	GetByID(ctx context.Context, id string) (*model.Submission, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Submission, error)
	ListByAssessment(ctx context.Context, assessmentID string) ([]*model.Submission, error)
}

type submissionRepo struct {
	collection *mongo.Collection
}

// NewSubmissionRepo creates a new submission repository
func NewSubmissionRepo(db *mongo.Database) SubmissionRepo {
	return &submissionRepo{
		collection: db.Collection("submissions"),
	}
}

func (r *submissionRepo) Create(ctx context.Context, submission *model.Submission) (string, error) {
	if submission.SubmittedAt.IsZero() {
		submission.SubmittedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, submission)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	submission.ID = oid.Hex()
	return submission.ID, nil
}

func (r *submissionRepo) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var submission model.Submission
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&submission)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	submission.ID = id
	return &submission, nil
}

func (r *submissionRepo) ListByUser(ctx context.Context, userID string) ([]*model.Submission, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []*model.Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepo) ListByAssessment(ctx context.Context, assessmentID string) ([]*model.Submission, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"assessmentId": assessmentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []*model.Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}
