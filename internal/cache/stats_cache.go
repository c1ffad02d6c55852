package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

// StatsCache keeps per-question running totals for the admin item-analysis
// view: how each question scores across all submissions of an assessment.
type StatsCache interface {
	RecordResponse(ctx context.Context, assessmentID, questionID string, score float64) error
	GetQuestionStats(ctx context.Context, assessmentID string) (map[string]QuestionStats, error)
	Reset(ctx context.Context, assessmentID string) error
}

// QuestionStats is the aggregate for one question.
type QuestionStats struct {
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

type statsCache struct {
	client *redis.Client
}

// NewStatsCache creates a new stats cache
func NewStatsCache(client *redis.Client) StatsCache {
	return &statsCache{
		client: client,
	}
}

func (c *statsCache) key(assessmentID string) string {
	return fmt.Sprintf("assessment:%s:qstats", assessmentID)
}

func (c *statsCache) RecordResponse(ctx context.Context, assessmentID, questionID string, score float64) error {
	key := c.key(assessmentID)
	pipe := c.client.Pipeline()
	pipe.HIncrByFloat(ctx, key, questionID+":total", score)
	pipe.HIncrBy(ctx, key, questionID+":count", 1)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *statsCache) GetQuestionStats(ctx context.Context, assessmentID string) (map[string]QuestionStats, error) {
	fields, err := c.client.HGetAll(ctx, c.key(assessmentID)).Result()
	if err != nil {
		return nil, err
	}

	stats := make(map[string]QuestionStats)
	for field, value := range fields {
		idx := strings.LastIndex(field, ":")
		if idx < 0 {
			continue
		}
		questionID, kind := field[:idx], field[idx+1:]
		entry := stats[questionID]
		switch kind {
		case "total":
			entry.Total, _ = strconv.ParseFloat(value, 64)
		case "count":
			entry.Count, _ = strconv.Atoi(value)
		}
		stats[questionID] = entry
	}

	for questionID, entry := range stats {
		if entry.Count > 0 {
			entry.Average = entry.Total / float64(entry.Count)
		}
		stats[questionID] = entry
	}
	return stats, nil
}

func (c *statsCache) Reset(ctx context.Context, assessmentID string) error {
	return c.client.Del(ctx, c.key(assessmentID)).Err()
}
