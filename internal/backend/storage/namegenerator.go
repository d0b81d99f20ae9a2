package storage

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const randomSuffixBound = 1_000_000_000

// NameGenerator produces collision-resistant file names from the current
// time in milliseconds, a random suffix, and the original file extension.
// Clock and random source are injectable for deterministic tests. One
// generator is shared by all concurrent uploads, so access to the random
// source is serialized.
type NameGenerator struct {
	now func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

func NewNameGenerator() *NameGenerator {
	return NewNameGeneratorWith(time.Now, rand.NewSource(time.Now().UnixNano()))
}

func NewNameGeneratorWith(now func() time.Time, source rand.Source) *NameGenerator {
	return &NameGenerator{
		now: now,
		rng: rand.New(source),
	}
}

// FileName returns a generated unique name keeping the (lower-cased)
// extension of the original upload name.
func (g *NameGenerator) FileName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))

	g.mu.Lock()
	suffix := g.rng.Int63n(randomSuffixBound)
	g.mu.Unlock()

	return fmt.Sprintf("%d-%d%s", g.now().UnixMilli(), suffix, ext)
}
