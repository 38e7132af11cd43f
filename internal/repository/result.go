package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const tallyKey = "results:tally"

var ErrResultNotFound = errors.New("result not found")

// ResultRepository keeps finished games and how many each side has won.
type ResultRepository interface {
	Record(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, gameID string) (*entity.Result, error)
	Tally(ctx context.Context) (*entity.Tally, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Record stores the result and bumps the winner's counter in one transaction.
func (that *dbResult) Record(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKey(result.GameID), resultJSON, 0)
		pipe.HIncrBy(ctx, tallyKey, result.Winner, 1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, gameID string) (*entity.Result, error) {
	response, err := that.client.Get(ctx, resultKey(gameID)).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Result{}, ErrResultNotFound
	}

	if err != nil {
		return &entity.Result{}, fmt.Errorf("failed to get result by id: %w", err)
	}

	var result entity.Result
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return &entity.Result{}, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

func (that *dbResult) Tally(ctx context.Context) (*entity.Tally, error) {
	counters, err := that.client.HGetAll(ctx, tallyKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get tally: %w", err)
	}

	tally := &entity.Tally{}
	for winner, field := range map[string]*int64{
		entity.PlayerBlack: &tally.Black,
		entity.PlayerWhite: &tally.White,
		entity.PlayerDraw:  &tally.Draw,
	} {
		raw, ok := counters[winner]
		if !ok {
			continue
		}

		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed %s counter %q: %w", winner, raw, err)
		}
		*field = count
	}

	return tally, nil
}

func resultKey(gameID string) string {
	return "result:" + gameID
}
