// Package catalog_proxy wraps read-mostly catalog services with a TTL cache.
package catalog_proxy

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/entity"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/query"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/service"
	"github.com/Wiktor-Wewe/psi-projekt/internal/infrastructure/cache"
	"github.com/Wiktor-Wewe/psi-projekt/internal/infrastructure/metrics"
)

// PublishingHouseProxy caches publishing house lookups. Publishers change
// rarely and every book read resolves one, so single-record reads are the
// profitable path; listings always go to the store because their counts must
// track the filtered set exactly.
type PublishingHouseProxy struct {
	houses service.PublishingHouseServicer
	cache  cache.Cache
	ttl    time.Duration
}

func NewPublishingHouseProxy(houses service.PublishingHouseServicer, cache cache.Cache, ttl time.Duration) *PublishingHouseProxy {
	return &PublishingHouseProxy{houses: houses, cache: cache, ttl: ttl}
}

func cacheKey(id uuid.UUID) string {
	return "publishing_house:" + id.String()
}

func (p *PublishingHouseProxy) Get(ctx context.Context, id uuid.UUID) (entity.PublishingHouse, error) {
	key := cacheKey(id)

	start := time.Now()
	cached, found := p.cache.Get(key)
	metrics.ObserveCacheRequest("PublishingHouseGet", found, time.Since(start))

	if found {
		return cached.(entity.PublishingHouse), nil
	}

	house, err := p.houses.Get(ctx, id)
	if err != nil {
		return entity.PublishingHouse{}, err
	}

	p.cache.Set(key, house, p.ttl)
	return house, nil
}

func (p *PublishingHouseProxy) Create(ctx context.Context, house entity.PublishingHouse) (entity.PublishingHouse, error) {
	return p.houses.Create(ctx, house)
}

func (p *PublishingHouseProxy) Update(ctx context.Context, house entity.PublishingHouse) (entity.PublishingHouse, error) {
	updated, err := p.houses.Update(ctx, house)
	if err != nil {
		return entity.PublishingHouse{}, err
	}
	p.cache.Delete(cacheKey(house.ID))
	return updated, nil
}

func (p *PublishingHouseProxy) Delete(ctx context.Context, id uuid.UUID) error {
	if err := p.houses.Delete(ctx, id); err != nil {
		return err
	}
	p.cache.Delete(cacheKey(id))
	return nil
}

func (p *PublishingHouseProxy) List(ctx context.Context, params query.Params) (query.Page[entity.PublishingHouse], error) {
	return p.houses.List(ctx, params)
}

func (p *PublishingHouseProxy) ListBooks(ctx context.Context, houseID uuid.UUID, params query.Params) (query.Page[entity.Book], error) {
	return p.houses.ListBooks(ctx, houseID, params)
}
