package relay

import (
	"slices"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

// evictThreshold bounds the suppressor map. Expired entries are collected
// lazily once the map grows past it.
const evictThreshold = 1024

// Suppressor drops repeat deliveries of identical alert groups inside a
// configurable window. Alertmanager re-sends unchanged groups on its
// repeat_interval; without suppression every repeat lands in the channel.
type Suppressor struct {
	mu     sync.Mutex
	window time.Duration
	seen   map[uint64]time.Time
	now    func() time.Time
}

// NewSuppressor creates a Suppressor with the given window.
// A zero window disables suppression.
func NewSuppressor(window time.Duration) *Suppressor {
	return &Suppressor{
		window: window,
		seen:   make(map[uint64]time.Time),
		now:    time.Now,
	}
}

// WithNow overrides the clock. Used for testing.
func (s *Suppressor) WithNow(now func() time.Time) *Suppressor {
	s.now = now
	return s
}

// SetWindow updates the suppression window. Safe for concurrent use, the
// config watcher calls this on reload.
func (s *Suppressor) SetWindow(window time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window = window
}

// ShouldDeliver reports whether the delivery is new within the window.
// Only deliveries recorded via MarkDelivered suppress repeats, so a failed
// send leaves the group eligible for Alertmanager's retry.
func (s *Suppressor) ShouldDeliver(d Delivery) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.window <= 0 {
		return true
	}

	if last, ok := s.seen[deliveryKey(d)]; ok && s.now().Sub(last) < s.window {
		return false
	}
	return true
}

// MarkDelivered records a successful delivery so identical groups are
// suppressed for the length of the window.
func (s *Suppressor) MarkDelivered(d Delivery) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.window <= 0 {
		return
	}

	now := s.now()
	if len(s.seen) >= evictThreshold {
		s.evictLocked(now)
	}
	s.seen[deliveryKey(d)] = now
}

// evictLocked removes entries older than the window. Callers hold s.mu.
func (s *Suppressor) evictLocked(now time.Time) {
	for key, last := range s.seen {
		if now.Sub(last) >= s.window {
			delete(s.seen, key)
		}
	}
}

// deliveryKey hashes the status and the sorted alert fingerprints.
// Fingerprints identify an alert's label set, so an unchanged group maps to
// a stable key regardless of alert ordering.
func deliveryKey(d Delivery) uint64 {
	fingerprints := make([]string, 0, len(d.Alerts))
	for _, alert := range d.Alerts {
		fingerprints = append(fingerprints, alert.Fingerprint)
	}
	slices.Sort(fingerprints)

	digest := xxhash.New()
	_, _ = digest.WriteString(string(d.Status))
	for _, fp := range fingerprints {
		_, _ = digest.Write([]byte{0})
		_, _ = digest.WriteString(fp)
	}
	return digest.Sum64()
}
