// Package glyphcache memoizes per-glyph triangulation results keyed by
// (font identity, glyph index).
package glyphcache

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/textmesh"
	"github.com/gogpu/textmesh/triangulate"
)

// numShards is the number of cache shards for reduced lock contention.
// Entries are sharded by font identity so that releasing a font only
// touches one shard.
const numShards = 16

// Cache memoizes triangulated glyphs in a two-level lookup
// (font → glyph index → geometry). Entries live until their owning
// font is released with ReleaseFont; there is no other invalidation.
//
// Cache is safe for concurrent use. GetOrCompute is the only compound
// operation: concurrent callers for the same absent key may both run
// the compute function, but exactly one result is stored and all
// callers observe a stored value afterwards.
type Cache struct {
	shards [numShards]*shard

	stats Stats
}

// shard holds the fonts whose identity hashes into it.
type shard struct {
	mu    sync.RWMutex
	fonts map[uint64]map[textmesh.GlyphID]*triangulate.Glyph
}

// Stats holds cache counters.
type Stats struct {
	Hits     atomic.Uint64
	Misses   atomic.Uint64
	Releases atomic.Uint64
}

// New creates an empty cache.
func New() *Cache {
	c := &Cache{}
	for i := range c.shards {
		c.shards[i] = &shard{
			fonts: make(map[uint64]map[textmesh.GlyphID]*triangulate.Glyph),
		}
	}
	return c
}

// GetOrCompute returns the cached triangulation for (fontID, gid),
// calling compute and storing its result on a miss. A compute error is
// returned to the caller and nothing is stored, so a later call can
// retry.
func (c *Cache) GetOrCompute(fontID uint64, gid textmesh.GlyphID, compute func() (*triangulate.Glyph, error)) (*triangulate.Glyph, error) {
	s := c.shardFor(fontID)

	s.mu.RLock()
	if glyphs, ok := s.fonts[fontID]; ok {
		if g, ok := glyphs[gid]; ok {
			s.mu.RUnlock()
			c.stats.Hits.Add(1)
			return g, nil
		}
	}
	s.mu.RUnlock()

	c.stats.Misses.Add(1)
	g, err := compute()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	glyphs, ok := s.fonts[fontID]
	if !ok {
		glyphs = make(map[textmesh.GlyphID]*triangulate.Glyph)
		s.fonts[fontID] = glyphs
	}
	// A concurrent compute may have won the race; keep the first
	// stored value so repeated lookups stay stable.
	if stored, ok := glyphs[gid]; ok {
		s.mu.Unlock()
		return stored, nil
	}
	glyphs[gid] = g
	s.mu.Unlock()

	return g, nil
}

// Lookup returns the cached triangulation for (fontID, gid) without
// computing, or nil when absent.
func (c *Cache) Lookup(fontID uint64, gid textmesh.GlyphID) *triangulate.Glyph {
	s := c.shardFor(fontID)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fonts[fontID][gid]
}

// ReleaseFont drops every cached glyph belonging to a font. Call it
// when the font itself is being released; the cache holds no other
// reference to the font and never outlives it.
func (c *Cache) ReleaseFont(fontID uint64) {
	s := c.shardFor(fontID)

	s.mu.Lock()
	_, ok := s.fonts[fontID]
	delete(s.fonts, fontID)
	s.mu.Unlock()

	if ok {
		c.stats.Releases.Add(1)
	}
}

// Len returns the total number of cached glyphs across all fonts.
func (c *Cache) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.RLock()
		for _, glyphs := range s.fonts {
			total += len(glyphs)
		}
		s.mu.RUnlock()
	}
	return total
}

// StatsSnapshot returns the current hit, miss and release counters.
func (c *Cache) StatsSnapshot() (hits, misses, releases uint64) {
	return c.stats.Hits.Load(), c.stats.Misses.Load(), c.stats.Releases.Load()
}

// shardFor returns the shard owning a font identity.
func (c *Cache) shardFor(fontID uint64) *shard {
	// Fibonacci hashing spreads sequential font IDs across shards.
	return c.shards[(fontID*0x9E3779B97F4A7C15)>>60&(numShards-1)]
}
