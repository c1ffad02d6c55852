package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"qiyada/internal/model"
)

// AssessmentRepo handles MongoDB operations for the question bank
type AssessmentRepo interface {
	Create(ctx context.Context, assessment *model.Assessment) (string, error)
	GetByID(ctx context.Context, id string) (*model.Assessment, error)
	List(ctx context.Context, activeOnly bool) ([]*model.Assessment, error)
	Update(ctx context.Context, assessment *model.Assessment) error
	Delete(ctx context.Context, id string) error
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("assessments"),
	}
}

func (r *assessmentRepo) Create(ctx context.Context, assessment *model.Assessment) (string, error) {
	assessment.CreatedAt = time.Now()
	assessment.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, assessment)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	assessment.ID = oid.Hex()
	return assessment.ID, nil
}

func (r *assessmentRepo) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var assessment model.Assessment
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&assessment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	assessment.ID = id
	return &assessment, nil
}

func (r *assessmentRepo) List(ctx context.Context, activeOnly bool) ([]*model.Assessment, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assessments []*model.Assessment
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepo) Update(ctx context.Context, assessment *model.Assessment) error {
	oid, err := primitive.ObjectIDFromHex(assessment.ID)
	if err != nil {
		return err
	}

	assessment.UpdatedAt = time.Now()
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, assessment)
	return err
}

func (r *assessmentRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
