package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-agent/internal/agent"
)

const valuesKey = "agent:values"

type redisValues struct {
	client *redis.Client
}

// NewRedisValuesRepository - stores the value table as a JSON blob under a
// single key.
func NewRedisValuesRepository(client *redis.Client) ValuesRepository {
	return &redisValues{
		client: client,
	}
}

func (that *redisValues) Load(ctx context.Context) (agent.Values, error) {
	response, err := that.client.Get(ctx, valuesKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrValuesNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get values: %w", err)
	}

	values := agent.Values{}
	if err = json.Unmarshal([]byte(response), &values); err != nil {
		return nil, fmt.Errorf("failed to unmarshal values: %w", err)
	}

	return values, nil
}

func (that *redisValues) Save(ctx context.Context, values agent.Values) error {
	valuesJSON, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("could not marshal values: %w", err)
	}

	if err = that.client.Set(ctx, valuesKey, valuesJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set values: %w", err)
	}

	return nil
}
