package testutil

import (
	"fmt"
	"sync"
)

// SeqNumberGenerator produces predictable citation numbers for tests.
//
// Numbers are "CIT-0001", "CIT-0002", ... in issuance order. The same
// scenario with a fresh generator produces byte-identical rendered
// output, which is what golden snapshot comparison needs.
//
// Thread-safety: safe for concurrent use via internal mutex.
type SeqNumberGenerator struct {
	mu sync.Mutex
	n  int
}

// NewSeqNumberGenerator creates a generator starting at CIT-0001.
func NewSeqNumberGenerator() *SeqNumberGenerator {
	return &SeqNumberGenerator{}
}

// Generate returns the next sequential citation number.
// Implements law.NumberGenerator.
func (g *SeqNumberGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("CIT-%04d", g.n)
}

// Reset restarts the sequence. After Reset, the next Generate returns
// CIT-0001 again.
func (g *SeqNumberGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n = 0
}
