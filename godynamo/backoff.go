package godynamo

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/ggarcia209/go-aws-samples/goaws"
)

// Retries stores parameters for the exponential backoff algorithm.
// Values are in milliseconds.
type Retries struct {
	base    int64
	cap     int64
	jitter  int64
	attempt int64
	elapsed int64
	rnd     *rand.Rand
}

// FailConfig configures the backoff applied when a batch write leaves
// unprocessed items or is throttled.
type FailConfig struct {
	Base   int64 `json:"base"`
	Cap    int64 `json:"cap"`
	Jitter int64 `json:"jitter"`
}

func (f *FailConfig) NewRetries() *Retries {
	return &Retries{
		base:   f.Base,
		cap:    f.Cap,
		jitter: f.Jitter,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func NewFailConfig(base, cap, jitter int64) *FailConfig {
	return &FailConfig{Base: base, Cap: cap, Jitter: jitter}
}

// DefaultFailConfig is the default configuration for the exponential backoff alogrithm
// with a base wait time of 50 miliseconds, and max wait time of 1 minute (60000 ms).
var DefaultFailConfig = &FailConfig{50, 60000, 250}

// Attempts returns the number of waits so far.
func (r *Retries) Attempts() int64 {
	return r.attempt
}

// ExponentialBackoff waits before the next retry and returns
// MaxRetriesExceededError once the total wait reached the cap.
func (r *Retries) ExponentialBackoff(ctx context.Context) error {
	if r.elapsed >= r.cap {
		return NewMaxRetriesExceededError()
	}

	// exponential backoff with full jitter
	r.attempt++
	var jitter int64
	if r.jitter > 0 {
		jitter = r.rnd.Int63n(r.jitter)
	}
	wait := r.base*int64(math.Pow(2.0, float64(r.attempt))) + jitter
	if r.elapsed+wait > r.cap {
		// wait until cap is reached
		wait = r.cap - r.elapsed
	}

	timer := time.NewTimer(time.Duration(wait) * time.Millisecond)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return goaws.NewInternalError(ctx.Err())
	case <-timer.C:
	}
	r.elapsed += wait
	return nil
}
