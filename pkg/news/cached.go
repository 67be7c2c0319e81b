package news

import "context"

// ResultCache memoizes search results by the exact query key for a bounded
// window. Implementations live in internal/cache.
type ResultCache interface {
	Get(key string) (Result, bool)
	Set(key string, r Result)
}

// CachedSearcher wraps a Searcher with time-bounded memoization. Every
// computed result is cached, failures included, matching the upstream
// fetch semantics one-to-one within the window.
type CachedSearcher struct {
	inner Searcher
	cache ResultCache
}

func NewCachedSearcher(inner Searcher, cache ResultCache) *CachedSearcher {
	return &CachedSearcher{inner: inner, cache: cache}
}

func (s *CachedSearcher) Search(ctx context.Context, q Query) Result {
	key := q.Key()
	if r, ok := s.cache.Get(key); ok {
		return r
	}

	r := s.inner.Search(ctx, q)
	s.cache.Set(key, r)
	return r
}
