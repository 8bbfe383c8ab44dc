package pokespeare

import (
	"context"
	"sync"
	"time"
)

// RateLimiter paces outgoing API requests using a token bucket.
type RateLimiter struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
}

// RateLimitConfig configures the rate limiter.
type RateLimitConfig struct {
	RequestsPerMinute int // Maximum requests per minute
	BurstSize         int // Maximum burst size (default: same as RPM)
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	rpm := float64(cfg.RequestsPerMinute)
	if rpm <= 0 {
		rpm = 60
	}

	burst := float64(cfg.BurstSize)
	if burst <= 0 {
		burst = rpm
	}

	return &RateLimiter{
		tokens:     burst, // Start with full bucket
		maxTokens:  burst,
		refillRate: rpm / 60.0,
		lastRefill: time.Now(),
	}
}

// Wait blocks until a token is available or the context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		if r.TryAcquire() {
			return nil
		}

		r.mu.Lock()
		waitTime := time.Duration(float64(time.Second) / r.refillRate)
		r.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
			// Try again
		}
	}
}

// TryAcquire attempts to acquire a token without blocking.
func (r *RateLimiter) TryAcquire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.refill()

	if r.tokens >= 1 {
		r.tokens--
		return true
	}

	return false
}

// refill adds tokens based on time elapsed since the last refill.
// Caller must hold the mutex.
func (r *RateLimiter) refill() {
	now := time.Now()
	elapsed := now.Sub(r.lastRefill).Seconds()
	r.lastRefill = now

	r.tokens += elapsed * r.refillRate
	if r.tokens > r.maxTokens {
		r.tokens = r.maxTokens
	}
}

// RateLimitedTranslationClient paces calls to a TranslationClient.
//
// The public Funtranslations API enforces aggressive per-hour quotas;
// pacing keeps a busy gateway from burning the quota in one burst. A paced
// call is still attempted exactly once: pacing is not retry.
type RateLimitedTranslationClient struct {
	translator TranslationClient
	limiter    *RateLimiter
}

// NewRateLimitedTranslationClient wraps a TranslationClient with pacing.
func NewRateLimitedTranslationClient(translator TranslationClient, cfg RateLimitConfig) *RateLimitedTranslationClient {
	return &RateLimitedTranslationClient{
		translator: translator,
		limiter:    NewRateLimiter(cfg),
	}
}

// Translate waits for a token, then delegates to the wrapped client.
func (c *RateLimitedTranslationClient) Translate(ctx context.Context, text string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return c.translator.Translate(ctx, text)
}

// Verify RateLimitedTranslationClient implements TranslationClient
var _ TranslationClient = (*RateLimitedTranslationClient)(nil)
