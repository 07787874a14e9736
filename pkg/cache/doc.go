// Package cache provides a bounded, concurrency-safe LRU map.
//
// Eviction callbacks run after the internal lock is released, so they may
// safely close resources or call back into the cache.
//
//	c := cache.NewLRU[string, *party.Party](1024,
//		cache.WithEvictFunc(func(_ string, p *party.Party) { _ = p.Close() }),
//	)
//	p, _ := c.GetOrAdd(visitorID, func() *party.Party { return party.New(cfg) })
package cache
