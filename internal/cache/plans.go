package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"lumenquest/internal/models"
)

const planCatalogKey = "lumen-plans:catalog"

type PlanStore interface {
	List(ctx context.Context) ([]models.Plan, error)
	GetByID(ctx context.Context, id string) (models.Plan, error)
	Create(ctx context.Context, plan models.Plan) error
	Update(ctx context.Context, plan models.Plan) error
	Delete(ctx context.Context, id string) error
}

// PlanCatalog serves the plan list from redis and falls through to the
// backing store on a miss. Writes go to the store and drop the cached list.
// Redis failures are logged and never fail the call.
type PlanCatalog struct {
	PlanStore
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewPlanCatalog(store PlanStore, client *redis.Client, ttl time.Duration, log zerolog.Logger) *PlanCatalog {
	return &PlanCatalog{PlanStore: store, client: client, ttl: ttl, log: log}
}

func (c *PlanCatalog) List(ctx context.Context) ([]models.Plan, error) {
	raw, err := c.client.Get(ctx, planCatalogKey).Bytes()
	switch {
	case err == nil:
		var plans []models.Plan
		if err := json.Unmarshal(raw, &plans); err == nil {
			return plans, nil
		}
		c.log.Warn().Msg("cached plan catalog unreadable")
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Msg("plan catalog cache read failed")
	}

	plans, err := c.PlanStore.List(ctx)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(plans); err == nil {
		if err := c.client.Set(ctx, planCatalogKey, payload, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Msg("plan catalog cache write failed")
		}
	}
	return plans, nil
}

func (c *PlanCatalog) Create(ctx context.Context, plan models.Plan) error {
	if err := c.PlanStore.Create(ctx, plan); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *PlanCatalog) Update(ctx context.Context, plan models.Plan) error {
	if err := c.PlanStore.Update(ctx, plan); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *PlanCatalog) Delete(ctx context.Context, id string) error {
	if err := c.PlanStore.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *PlanCatalog) invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, planCatalogKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("plan catalog cache invalidation failed")
	}
}
