package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"qiyada/internal/model"
)

// ReportCache caches generated reports by submission id so repeated report
// views skip MongoDB.
type ReportCache interface {
	Set(ctx context.Context, report *model.Report) error
	Get(ctx context.Context, submissionID string) (*model.Report, error)
	Delete(ctx context.Context, submissionID string) error
}

type reportCache struct {
	client *redis.Client
}

// NewReportCache creates a new report cache
func NewReportCache(client *redis.Client) ReportCache {
	return &reportCache{
		client: client,
	}
}

func (c *reportCache) key(submissionID string) string {
	return "report:" + submissionID
}

func (c *reportCache) Set(ctx context.Context, report *model.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(report.SubmissionID), data, 24*time.Hour).Err()
}

func (c *reportCache) Get(ctx context.Context, submissionID string) (*model.Report, error) {
	data, err := c.client.Get(ctx, c.key(submissionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var report model.Report
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *reportCache) Delete(ctx context.Context, submissionID string) error {
	return c.client.Del(ctx, c.key(submissionID)).Err()
}
