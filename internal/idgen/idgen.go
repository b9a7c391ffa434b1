// Package idgen produces the public identifiers used across the catalog, e.g. "SUB-482913".
package idgen

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

const (
	PrefixDepartment = "DEP"
	PrefixSubject    = "SUB"
	PrefixStudent    = "STD"
	PrefixExam       = "EXM"
	PrefixQuestion   = "QST"
)

const (
	minSuffix  = 100000
	suffixSpan = 900000
)

type Generator interface {
	Generate(prefix string) string
}

// Format renders prefix and a six digit suffix derived from n.
func Format(prefix string, n int) string {
	if n < 0 {
		n = -n
	}
	return fmt.Sprintf("%s-%d", prefix, minSuffix+n%suffixSpan)
}

// Random draws suffixes from a pluggable source. Safe for concurrent use.
type Random struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandom(src rand.Source) *Random {
	return &Random{rnd: rand.New(src)}
}

// New returns a Random seeded from the clock.
func New() *Random {
	seed := uint64(time.Now().UnixNano())
	return NewRandom(rand.NewPCG(seed, seed>>1|1))
}

func (g *Random) Generate(prefix string) string {
	g.mu.Lock()
	n := g.rnd.IntN(suffixSpan)
	g.mu.Unlock()
	return Format(prefix, n)
}

// Sequence hands out consecutive suffixes starting at 100000.
type Sequence struct {
	mu   sync.Mutex
	next int
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (g *Sequence) Generate(prefix string) string {
	g.mu.Lock()
	n := g.next
	g.next++
	g.mu.Unlock()
	return Format(prefix, n)
}
