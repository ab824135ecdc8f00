package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/boardgame-arena/internal/entity"
)

var ErrMatchNotFound = errors.New("match not found")

const (
	matchKeyPrefix = "match:"
	matchListKey   = "matches"
)

type MatchRepository interface {
	Save(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	Recent(ctx context.Context, limit int64) ([]entity.Match, error)
}

type dbMatch struct {
	client *redis.Client
}

func NewMatchRepository(client *redis.Client) MatchRepository {
	return &dbMatch{
		client: client,
	}
}

func (that *dbMatch) Save(ctx context.Context, match *entity.Match) error {
	matchJSON, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	matchKey := matchKeyPrefix + match.ID
	if err = that.client.Set(ctx, matchKey, matchJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set match: %w", err)
	}

	if err = that.client.LPush(ctx, matchListKey, match.ID).Err(); err != nil {
		return fmt.Errorf("failed to push match id: %w", err)
	}

	return nil
}

func (that *dbMatch) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	matchKey := matchKeyPrefix + id

	response, err := that.client.Get(ctx, matchKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrMatchNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	var match entity.Match
	if err = json.Unmarshal([]byte(response), &match); err != nil {
		return nil, fmt.Errorf("could not unmarshal match: %w", err)
	}

	return &match, nil
}

// Recent returns up to limit matches, newest first.
func (that *dbMatch) Recent(ctx context.Context, limit int64) ([]entity.Match, error) {
	if limit <= 0 {
		return nil, nil
	}

	ids, err := that.client.LRange(ctx, matchListKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list match ids: %w", err)
	}

	matches := make([]entity.Match, 0, len(ids))
	for _, id := range ids {
		match, err := that.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		matches = append(matches, *match)
	}

	return matches, nil
}
