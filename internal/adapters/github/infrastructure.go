package github

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const apiVersion = "2022-11-28"

// ClientStats tracks API usage statistics
type ClientStats struct {
	APICallsCount  int
	ErrorsCount    int
	RateLimitHits  int
	LastAPICall    time.Time
	RemainingQuota int
	QuotaResetTime time.Time
	mu             sync.RWMutex
}

// StatsSnapshot is a point-in-time copy of ClientStats
type StatsSnapshot struct {
	APICallsCount  int
	ErrorsCount    int
	RateLimitHits  int
	LastAPICall    time.Time
	RemainingQuota int
	QuotaResetTime time.Time
}

// Snapshot returns a copy of the current statistics
func (s *ClientStats) Snapshot() StatsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StatsSnapshot{
		APICallsCount:  s.APICallsCount,
		ErrorsCount:    s.ErrorsCount,
		RateLimitHits:  s.RateLimitHits,
		LastAPICall:    s.LastAPICall,
		RemainingQuota: s.RemainingQuota,
		QuotaResetTime: s.QuotaResetTime,
	}
}

// IncrementAPICall safely increments the API call counter
func (s *ClientStats) IncrementAPICall() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.APICallsCount++
	s.LastAPICall = time.Now()
}

// IncrementError safely increments the error counter
func (s *ClientStats) IncrementError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ErrorsCount++
}

// IncrementRateLimitHit safely increments the rate limit hit counter
func (s *ClientStats) IncrementRateLimitHit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.RateLimitHits++
}

// UpdateQuota updates the rate limit quota information
func (s *ClientStats) UpdateQuota(remaining int, resetTime time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.RemainingQuota = remaining
	s.QuotaResetTime = resetTime
}

// updateFromResponse records quota headers and rate limit responses
func (s *ClientStats) updateFromResponse(resp *http.Response) {
	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			var resetTime time.Time
			if reset := resp.Header.Get("X-RateLimit-Reset"); reset != "" {
				if resetVal, err := strconv.ParseInt(reset, 10, 64); err == nil {
					resetTime = time.Unix(resetVal, 0)
				}
			}
			s.UpdateQuota(val, resetTime)
		}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		s.IncrementRateLimitHit()
	}
	if resp.StatusCode >= 400 {
		s.IncrementError()
	}
}

// RateLimiter spaces outgoing requests. It never reacts to server responses.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a pacer for requestsPerHour. Zero or negative means
// unlimited and yields a nil limiter.
func NewRateLimiter(requestsPerHour int) *RateLimiter {
	if requestsPerHour <= 0 {
		return nil
	}

	rps := rate.Limit(float64(requestsPerHour) / 3600)
	return &RateLimiter{
		limiter: rate.NewLimiter(rps, 1),
	}
}

// Wait blocks until the next request may be sent
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.limiter.Wait(ctx)
}

// apiTransport stamps every REST and GraphQL request with the API version and
// user agent, paces it and records statistics.
type apiTransport struct {
	base      http.RoundTripper
	userAgent string
	limiter   *RateLimiter
	stats     *ClientStats
}

func (t *apiTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	req = req.Clone(req.Context())
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	t.stats.IncrementAPICall()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.stats.IncrementError()
		return nil, err
	}
	t.stats.updateFromResponse(resp)
	return resp, nil
}
