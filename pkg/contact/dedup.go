package contact

import (
	"sync"
	"time"

	"github.com/amoxtli/school-contact/pkg/cache"
)

// dedup remembers fingerprints of delivered submissions for window.
type dedup struct {
	mu     sync.Mutex
	seen   *cache.LRU[string, time.Time]
	window time.Duration
	now    func() time.Time
}

func newDedup(window time.Duration, capacity int) *dedup {
	if window <= 0 {
		return nil
	}
	return &dedup{
		seen:   cache.NewLRU[string, time.Time](max(1, capacity)),
		window: window,
		now:    time.Now,
	}
}

// recent reports whether fp was recorded less than window ago.
// A nil dedup never reports a repeat.
func (d *dedup) recent(fp string) bool {
	if d == nil {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	at, ok := d.seen.Get(fp)
	if !ok {
		return false
	}
	if d.now().Sub(at) >= d.window {
		d.seen.Remove(fp)
		return false
	}
	return true
}

func (d *dedup) record(fp string) {
	if d == nil {
		return
	}
	d.mu.Lock()
	d.seen.Put(fp, d.now())
	d.mu.Unlock()
}
