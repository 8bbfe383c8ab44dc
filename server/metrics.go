package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the gateway's Prometheus counters. Upstream clients feed
// the request counters through their RequestHook; cache hit/miss counts are
// read lazily from the cache itself.
type Metrics struct {
	PokeAPIRequests    prometheus.Counter
	TranslatorRequests prometheus.Counter
}

// NewMetrics creates and registers the upstream request counters.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PokeAPIRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pokespeare_pokeapi_requests",
			Help: "Requests sent to the PokeAPI service.",
		}),
		TranslatorRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pokespeare_translator_requests",
			Help: "Requests sent to the translation service.",
		}),
	}
	reg.MustRegister(m.PokeAPIRequests, m.TranslatorRequests)
	return m
}

// RegisterCacheStats exposes the cache hit/miss counters. The counts are
// maintained by the cache; prometheus reads them on scrape.
func RegisterCacheStats(reg prometheus.Registerer, hits, misses func() uint64) {
	reg.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
		Name: "pokespeare_cache_hits",
		Help: "Lookups served from the result cache.",
	}, func() float64 { return float64(hits()) }))

	reg.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
		Name: "pokespeare_cache_misses",
		Help: "Lookups that missed the result cache.",
	}, func() float64 { return float64(misses()) }))
}
