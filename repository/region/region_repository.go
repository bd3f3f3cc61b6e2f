package region

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/thirdparty/storeapi"
	"golang.org/x/sync/singleflight"
)

// RegionRepository loads the province, district and ward lists. Lists are cached
// for ttl and concurrent misses for the same list share one upstream call.
type RegionRepository interface {
	Provinces(ctx context.Context) ([]model.Region, error)
	Districts(ctx context.Context, provinceCode int) ([]model.Region, error)
	Wards(ctx context.Context, districtCode int) ([]model.Region, error)
}

type cached struct {
	regions []model.Region
	at      time.Time
}

type API struct {
	client storeapi.Caller
	ttl    time.Duration
	now    func() time.Time

	sfg   singleflight.Group
	mu    sync.RWMutex
	cache map[string]cached
}

func NewRegionRepository(client storeapi.Caller, ttl time.Duration) RegionRepository {
	return &API{
		client: client,
		ttl:    ttl,
		now:    time.Now,
		cache:  make(map[string]cached),
	}
}

func (s *API) Provinces(ctx context.Context) ([]model.Region, error) {
	return s.load(ctx, "provinces", "/provinces", "provinces")
}

func (s *API) Districts(ctx context.Context, provinceCode int) ([]model.Region, error) {
	code := strconv.Itoa(provinceCode)
	return s.load(ctx, "districts:"+code, "/provinces/"+code+"/districts", "districts")
}

func (s *API) Wards(ctx context.Context, districtCode int) ([]model.Region, error) {
	code := strconv.Itoa(districtCode)
	return s.load(ctx, "wards:"+code, "/districts/"+code+"/wards", "wards")
}

func (s *API) load(ctx context.Context, key, path, field string) ([]model.Region, error) {
	if regions, ok := s.lookup(key); ok {
		return regions, nil
	}

	// The shared call is detached from ctx: one caller giving up must not fail the
	// others waiting on the same list. The client timeout still bounds it.
	ch := s.sfg.DoChan(key, func() (interface{}, error) {
		var res map[string][]model.Region
		err := s.client.Do(context.WithoutCancel(ctx), storeapi.Request{
			Op:     "list_" + field,
			Method: http.MethodGet,
			Path:   path,
		}, &res)
		if err != nil {
			return nil, err
		}
		regions := res[field]
		if regions == nil {
			regions = []model.Region{}
		}

		s.mu.Lock()
		s.cache[key] = cached{regions: regions, at: s.now()}
		s.mu.Unlock()
		return regions, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]model.Region), nil
	}
}

func (s *API) lookup(key string) ([]model.Region, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cache[key]
	if !ok || (s.ttl > 0 && s.now().Sub(c.at) > s.ttl) {
		return nil, false
	}
	return c.regions, true
}
