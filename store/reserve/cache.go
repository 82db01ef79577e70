package reserve

import (
	"context"
	"fmt"
	"time"

	"cdp/core"

	"github.com/bluele/gcache"
	"golang.org/x/sync/singleflight"
)

// Cache wraps a reserve store with a read-through cache. Registrations
// change rarely; balances and prices are never cached here.
func Cache(store core.IReserveStore, exp time.Duration) core.IReserveStore {
	return &cacheReserveStore{
		IReserveStore: store,
		cache:         gcache.New(256).LRU().Expiration(exp).Build(),
		sf:            &singleflight.Group{},
	}
}

type cacheReserveStore struct {
	core.IReserveStore
	cache gcache.Cache
	sf    *singleflight.Group
}

func (s *cacheReserveStore) Find(ctx context.Context, assetID string) (*core.Reserve, error) {
	key := s.assetKey(assetID)
	if v, err := s.cache.Get(key); err == nil {
		if reserve, ok := v.(*core.Reserve); ok {
			return reserve, nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		reserve, err := s.IReserveStore.Find(ctx, assetID)
		if err != nil {
			return nil, err
		}
		s.cache.Set(key, reserve)
		return reserve, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*core.Reserve), nil
}

func (s *cacheReserveStore) ReserveAssetDecimals(ctx context.Context, assetID string) (int32, error) {
	reserve, err := s.Find(ctx, assetID)
	if err != nil {
		return 0, err
	}

	return reserve.Decimals, nil
}

func (s *cacheReserveStore) CollateralFactor(ctx context.Context, assetID string) (core.CollateralFactor, error) {
	reserve, err := s.Find(ctx, assetID)
	if err != nil {
		return core.CollateralFactor{}, err
	}

	return reserve.Factor(), nil
}

func (s *cacheReserveStore) assetKey(assetID string) string {
	return fmt.Sprintf("reserve:asset:%s", assetID)
}
