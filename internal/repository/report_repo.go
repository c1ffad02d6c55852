package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"qiyada/internal/model"
)

// ReportRepo handles MongoDB operations for generated reports
type ReportRepo interface {
	Create(ctx context.Context, report *model.Report) (string, error)
	GetByID(ctx context.Context, id string) (*model.Report, error)
	GetBySubmissionID(ctx context.Context, submissionID string) (*model.Report, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Report, error)
	ListByAssessment(ctx context.Context, assessmentID string) ([]*model.Report, error)
}

type reportRepo struct {
	collection *mongo.Collection
}

// NewReportRepo creates a new report repository
func NewReportRepo(db *mongo.Database) ReportRepo {
	return &reportRepo{
		collection: db.Collection("reports"),
	}
}

func (r *reportRepo) Create(ctx context.Context, report *model.Report) (string, error) {
	report.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	report.ID = oid.Hex()
	return report.ID, nil
}

func (r *reportRepo) GetByID(ctx context.Context, id string) (*model.Report, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var report model.Report
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	report.ID = id
	return &report, nil
}

func (r *reportRepo) GetBySubmissionID(ctx context.Context, submissionID string) (*model.Report, error) {
	var report model.Report
	err := r.collection.FindOne(ctx, bson.M{"submissionId": submissionID}).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepo) ListByUser(ctx context.Context, userID string) ([]*model.Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []*model.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepo) ListByAssessment(ctx context.Context, assessmentID string) ([]*model.Report, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"assessmentId": assessmentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []*model.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
