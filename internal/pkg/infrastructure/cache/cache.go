package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/database"
	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/redis/go-redis/v9"
)

const DefaultTTL = 5 * time.Minute

//go:generate moq -rm -out conditionstore_mock.go . ConditionStore
type ConditionStore interface {
	AddCondition(ctx context.Context, c types.Condition) (types.Condition, error)
	GetCondition(ctx context.Context, conditionID string) (types.Condition, error)
	GetConditionsByValueType(ctx context.Context, valueType string) ([]types.Condition, error)
	QueryConditions(ctx context.Context, conditions ...database.QueryFunc) (types.Collection[types.Condition], error)
	UpdateCondition(ctx context.Context, conditionID string, u types.ConditionUpdate) (types.Condition, error)
	DeleteCondition(ctx context.Context, conditionID string) error
}

// ConditionCache keeps the active conditions per value type in redis in front of a
// ConditionStore. Writes go to the store and drop the affected keys.
type ConditionCache struct {
	store ConditionStore
	rdb   redis.UniversalClient
	ttl   time.Duration
}

func NewConditionCache(store ConditionStore, rdb redis.UniversalClient, ttl time.Duration) *ConditionCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &ConditionCache{
		store: store,
		rdb:   rdb,
		ttl:   ttl,
	}
}

func key(valueType string) string {
	return fmt.Sprintf("conditions:%s", valueType)
}

func (c *ConditionCache) GetConditionsByValueType(ctx context.Context, valueType string) ([]types.Condition, error) {
	log := logging.GetFromContext(ctx)

	data, err := c.rdb.Get(ctx, key(valueType)).Bytes()
	if err == nil {
		var conditions []types.Condition
		if err = json.Unmarshal(data, &conditions); err == nil {
			return conditions, nil
		}
		log.Warn().Err(err).Str("value_type", valueType).Msg("discarding malformed cache entry")
	} else if !errors.Is(err, redis.Nil) {
		log.Warn().Err(err).Str("value_type", valueType).Msg("condition cache unavailable, reading from store")
	}

	conditions, err := c.store.GetConditionsByValueType(ctx, valueType)
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(conditions)
	if err != nil {
		return conditions, nil
	}

	if err := c.rdb.Set(ctx, key(valueType), b, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("value_type", valueType).Msg("failed to populate condition cache")
	}

	return conditions, nil
}

func (c *ConditionCache) invalidate(ctx context.Context, valueTypes ...string) {
	keys := make([]string, 0, len(valueTypes))
	for _, vt := range valueTypes {
		if vt != "" {
			keys = append(keys, key(vt))
		}
	}
	if len(keys) == 0 {
		return
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log := logging.GetFromContext(ctx)
		log.Warn().Err(err).Strs("keys", keys).Msg("failed to invalidate condition cache")
	}
}

func (c *ConditionCache) AddCondition(ctx context.Context, cond types.Condition) (types.Condition, error) {
	created, err := c.store.AddCondition(ctx, cond)
	if err != nil {
		return types.Condition{}, err
	}
	c.invalidate(ctx, created.ValueType)
	return created, nil
}

func (c *ConditionCache) GetCondition(ctx context.Context, conditionID string) (types.Condition, error) {
	return c.store.GetCondition(ctx, conditionID)
}

func (c *ConditionCache) QueryConditions(ctx context.Context, conditions ...database.QueryFunc) (types.Collection[types.Condition], error) {
	return c.store.QueryConditions(ctx, conditions...)
}

func (c *ConditionCache) UpdateCondition(ctx context.Context, conditionID string, u types.ConditionUpdate) (types.Condition, error) {
	before, err := c.store.GetCondition(ctx, conditionID)
	if err != nil {
		return types.Condition{}, err
	}

	updated, err := c.store.UpdateCondition(ctx, conditionID, u)
	if err != nil {
		return types.Condition{}, err
	}

	c.invalidate(ctx, before.ValueType, updated.ValueType)
	return updated, nil
}

func (c *ConditionCache) DeleteCondition(ctx context.Context, conditionID string) error {
	existing, err := c.store.GetCondition(ctx, conditionID)
	if err != nil {
		return err
	}

	if err := c.store.DeleteCondition(ctx, conditionID); err != nil {
		return err
	}

	c.invalidate(ctx, existing.ValueType)
	return nil
}
