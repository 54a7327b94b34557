package geolib

import (
	"net"
	"time"

	"github.com/dgraph-io/ristretto"
)

// cachedMiss marks addresses which have no record in the database.
// ristretto cannot distinguish stored nil from absence.
type cachedMiss struct{}

type cachingReader struct {
	Reader

	cache *ristretto.Cache
	ttl   time.Duration
}

func (c cachingReader) Lookup(ip net.IP) (Record, error) {
	cacheKey := ip.String()

	if value, ok := c.cache.Get(cacheKey); ok {
		switch v := value.(type) {
		case cachedMiss:
			return nil, nil
		case Record:
			return v, nil
		}
	}

	result, err := c.Reader.Lookup(ip)
	if err != nil {
		return nil, err
	}

	if result == nil {
		c.cache.SetWithTTL(cacheKey, cachedMiss{}, 1, c.ttl)
	} else {
		c.cache.SetWithTTL(cacheKey, result, 1, c.ttl)
	}

	return result, nil
}

// Wait blocks until all pending cache writes are applied. ristretto is
// eventually consistent so this is mostly useful in tests.
func (c cachingReader) Wait() {
	c.cache.Wait()
}

// NewCachingReader wraps a reader with an in-memory cache of
// itemsCount most used addresses. Columns often contain the same
// address many times; cached records are shared and never copied.
//
// Every address costs exactly 1 so itemsCount is a number of entries,
// not a memory budget. ttl of 0 means that items never expire.
func NewCachingReader(reader Reader, itemsCount uint, ttl time.Duration) Reader {
	cacheConfig := &ristretto.Config{
		MaxCost:            int64(itemsCount),
		NumCounters:        10 * int64(itemsCount),
		Metrics:            false,
		BufferItems:        64,
		IgnoreInternalCost: true,
	}

	cache, err := ristretto.NewCache(cacheConfig)
	if err != nil {
		panic(err)
	}

	return cachingReader{
		Reader: reader,
		cache:  cache,
		ttl:    ttl,
	}
}
