package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/chairtime/booking-api/internal/domain/schedule"
)

const (
	entryTTL   = 60 * time.Second
	versionTTL = 48 * time.Hour
)

func NewRedisClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
}

// AvailabilityCache guarda o resultado do cálculo de disponibilidade por
// (data, serviço). A chave embute um contador de versão por data; um
// agendamento novo incrementa o contador e invalida todas as entradas da
// data de uma vez. Com cliente nulo o cache vira no-op.
type AvailabilityCache struct {
	rdb *redis.Client
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb}
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	date string,
	serviceID uint,
) ([]schedule.Slot, bool) {

	if c == nil || c.rdb == nil {
		return nil, false
	}

	key, err := c.entryKey(ctx, date, serviceID)
	if err != nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []schedule.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	date string,
	serviceID uint,
	slots []schedule.Slot,
) {
	if c == nil || c.rdb == nil {
		return
	}

	key, err := c.entryKey(ctx, date, serviceID)
	if err != nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, key, raw, entryTTL)
}

// Invalidate descarta toda a disponibilidade cacheada da data.
func (c *AvailabilityCache) Invalidate(ctx context.Context, date string) {
	if c == nil || c.rdb == nil {
		return
	}

	pipe := c.rdb.Pipeline()
	pipe.Incr(ctx, versionKey(date))
	pipe.Expire(ctx, versionKey(date), versionTTL)
	_, _ = pipe.Exec(ctx)
}

// InvalidateAll descarta a disponibilidade de todas as datas. Usado quando
// turnos ou catálogo de serviços mudam.
func (c *AvailabilityCache) InvalidateAll(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}

	c.rdb.Incr(ctx, globalVersionKey)
}

func (c *AvailabilityCache) entryKey(
	ctx context.Context,
	date string,
	serviceID uint,
) (string, error) {

	gver, err := c.rdb.Get(ctx, globalVersionKey).Result()
	if err == redis.Nil {
		gver = "0"
	} else if err != nil {
		return "", err
	}

	dver, err := c.rdb.Get(ctx, versionKey(date)).Result()
	if err == redis.Nil {
		dver = "0"
	} else if err != nil {
		return "", err
	}

	return fmt.Sprintf("availability:%s:%d:g%s:v%s", date, serviceID, gver, dver), nil
}

const globalVersionKey = "availability:ver:all"

func versionKey(date string) string {
	return "availability:ver:" + date
}
