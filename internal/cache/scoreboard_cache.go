package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ScoreboardCache handles Redis ZSET operations for the per-assessment
// scoreboard shown on the admin dashboard.
type ScoreboardCache interface {
	UpdateScore(ctx context.Context, assessmentID, userID string, overallPercentage int) error
	GetTop(ctx context.Context, assessmentID string, limit int) ([]ScoreboardEntry, error)
	GetRank(ctx context.Context, assessmentID, userID string) (int64, error)
}

// ScoreboardEntry represents a single scoreboard entry
type ScoreboardEntry struct {
	UserID     string `json:"userId"`
	Percentage int    `json:"percentage"`
	Rank       int    `json:"rank"`
}

type scoreboardCache struct {
	client *redis.Client
}

// NewScoreboardCache creates a new scoreboard cache
func NewScoreboardCache(client *redis.Client) ScoreboardCache {
	return &scoreboardCache{
		client: client,
	}
}

func (c *scoreboardCache) key(assessmentID string) string {
	return fmt.Sprintf("assessment:%s:scoreboard", assessmentID)
}

func (c *scoreboardCache) UpdateScore(ctx context.Context, assessmentID, userID string, overallPercentage int) error {
	return c.client.ZAdd(ctx, c.key(assessmentID), redis.Z{
		Score:  float64(overallPercentage),
		Member: userID,
	}).Err()
}

func (c *scoreboardCache) GetTop(ctx context.Context, assessmentID string, limit int) ([]ScoreboardEntry, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, c.key(assessmentID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]ScoreboardEntry, len(results))
	for i, z := range results {
		entries[i] = ScoreboardEntry{
			UserID:     z.Member.(string),
			Percentage: int(z.Score),
			Rank:       i + 1,
		}
	}
	return entries, nil
}

func (c *scoreboardCache) GetRank(ctx context.Context, assessmentID, userID string) (int64, error) {
	rank, err := c.client.ZRevRank(ctx, c.key(assessmentID), userID).Result()
	if err == redis.Nil {
		return -1, nil
	}
	return rank + 1, err // 1-indexed
}
