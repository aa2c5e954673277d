package insight

import (
	"context"
	"sync"

	"github.com/fwojciec/shopinsight"
	"golang.org/x/time/rate"
)

var _ shopinsight.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to each storefront host with a token
// bucket per host. Requests to different hosts do not wait on each other,
// so concurrent extractions for different stores proceed independently.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	burst    int
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// per host with the given burst. A burst below 1 is treated as 1.
func NewDomainLimiter(rps float64, burst int) *DomainLimiter {
	if burst < 1 {
		burst = 1
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
	}
}

// Wait blocks until the host's bucket has a token or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), d.burst)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
