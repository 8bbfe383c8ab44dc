package pokespeare

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// DescriptionClient fetches the English description of a creature.
// A missing creature is reported as an error matching ErrNotFound.
type DescriptionClient interface {
	Fetch(ctx context.Context, name string) (string, error)
}

// TranslationClient rewrites text in Shakespearean English.
type TranslationClient interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Cache stores previously translated descriptions. Implementations must be
// safe for concurrent use; see the cache package.
type Cache interface {
	// Get retrieves a cached translation. Returns empty string and false on miss.
	Get(key string) (string, bool)

	// Put stores a translation, overwriting any previous entry for the key.
	Put(key string, value string) error
}

// Resolver composes the description source, the translator and the cache
// into the single lookup operation the HTTP boundary invokes.
type Resolver struct {
	descriptions DescriptionClient
	translator   TranslationClient
	cache        Cache
	logger       zerolog.Logger
	group        *singleflight.Group
}

// ResolverOption is a functional option for configuring the Resolver.
type ResolverOption func(*Resolver)

// WithCache sets the result cache. Without a cache every lookup goes upstream.
func WithCache(cache Cache) ResolverOption {
	return func(r *Resolver) {
		r.cache = cache
	}
}

// WithLogger sets the logger used for upstream failures.
func WithLogger(logger zerolog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithSingleFlight de-duplicates concurrent cache misses for the same key,
// so only one upstream round trip pair is in flight per creature at a time.
// Off by default: concurrent misses are allowed to fetch independently.
func WithSingleFlight() ResolverOption {
	return func(r *Resolver) {
		r.group = &singleflight.Group{}
	}
}

// NewResolver creates a Resolver over the given upstream clients.
func NewResolver(descriptions DescriptionClient, translator TranslationClient, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		descriptions: descriptions,
		translator:   translator,
		logger:       zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns the Shakespearean description of the named creature.
//
// The name is lowercased to derive the cache key, so lookups differing only
// in case share one entry. On a cache hit no upstream call is made. On a
// miss the description is fetched, translated and cached; not-found and
// failed lookups are never cached, so they are retried on the next call.
func (r *Resolver) Resolve(ctx context.Context, name string) Outcome {
	key := NormalizeName(name)

	if r.cache != nil {
		if cached, ok := r.cache.Get(key); ok {
			return Found(cached)
		}
	}

	if r.group != nil {
		v, _, _ := r.group.Do(key, func() (interface{}, error) {
			return r.lookup(ctx, key), nil
		})
		return v.(Outcome)
	}

	return r.lookup(ctx, key)
}

// lookup performs the two upstream calls and caches a successful result.
// Each upstream is attempted exactly once; retry policy belongs to callers.
func (r *Resolver) lookup(ctx context.Context, key string) Outcome {
	description, err := r.descriptions.Fetch(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return NotFound()
	}
	if err != nil {
		r.logFailure(key, "fetch description", err)
		return Failed(err)
	}

	translated, err := r.translator.Translate(ctx, description)
	if err != nil {
		r.logFailure(key, "translate description", err)
		return Failed(err)
	}

	if r.cache != nil {
		if err := r.cache.Put(key, translated); err != nil {
			// A cache write failure degrades to an uncached success.
			r.logger.Warn().Err(err).Str("name", key).Msg("cache write failed")
		}
	}

	return Found(translated)
}

func (r *Resolver) logFailure(key, op string, err error) {
	r.logger.Error().
		Err(err).
		Str("name", key).
		Str("kind", string(KindOf(err))).
		Msgf("cannot %s", op)
}

// NormalizeName derives the cache key from a creature name.
// Two names differing only in case denote the same entry.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
