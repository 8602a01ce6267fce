package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"
)

// idSource issues wall-clock-millisecond order ids, bumped past the
// last issued id so rapid successive orders never collide.
type idSource struct {
	mu   sync.Mutex
	last int64
}

func (s *idSource) next(now time.Time) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := now.UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// GenerateInvoiceNumber builds a printable invoice reference.
func GenerateInvoiceNumber(now time.Time) string {
	now = now.UTC()

	datePart := now.Format("20060102-150405")
	millis := now.Nanosecond() / int(time.Millisecond)

	// 4-digit cryptographic random
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(now.UnixNano() % 10000)
	}

	return fmt.Sprintf("INV-%s-%03d-%04d", datePart, millis, n.Int64())
}
