package ratelimit

import (
	"context"
	"sync/atomic"

	"golang.org/x/time/rate"
)

// Limiter is a token bucket that counts admitted and rejected requests.
type Limiter struct {
	limiter    *rate.Limiter
	ratePerSec int
	burst      int
	allowed    atomic.Int64
	rejected   atomic.Int64
}

// Stats is a snapshot of a Limiter.
type Stats struct {
	RatePerSecond int   `json:"rate_per_second"`
	Burst         int   `json:"burst"`
	AllowedTotal  int64 `json:"allowed_total"`
	RejectedTotal int64 `json:"rejected_total"`
}

// New returns a limiter admitting ratePerSec requests per second with the
// given burst. Non-positive values fall back to 100/s and twice the rate.
func New(ratePerSec, burst int) *Limiter {
	if ratePerSec <= 0 {
		ratePerSec = 100
	}
	if burst <= 0 {
		burst = ratePerSec * 2
	}
	return &Limiter{
		limiter:    rate.NewLimiter(rate.Limit(ratePerSec), burst),
		ratePerSec: ratePerSec,
		burst:      burst,
	}
}

// Allow reports whether a request may proceed now.
func (l *Limiter) Allow() bool {
	if l.limiter.Allow() {
		l.allowed.Add(1)
		return true
	}
	l.rejected.Add(1)
	return false
}

// Wait blocks until a token is available or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := l.limiter.Wait(ctx); err != nil {
		l.rejected.Add(1)
		return err
	}
	l.allowed.Add(1)
	return nil
}

func (l *Limiter) Stats() Stats {
	return Stats{
		RatePerSecond: l.ratePerSec,
		Burst:         l.burst,
		AllowedTotal:  l.allowed.Load(),
		RejectedTotal: l.rejected.Load(),
	}
}
