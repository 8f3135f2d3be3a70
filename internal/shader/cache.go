package shader

import (
	"hash/fnv"
	"math/rand/v2"
	"sync"
)

// DefaultVariants is the number of distinct animators kept per key.
const DefaultVariants = 5

// Cache hands out a small pool of animators per material key. Particles of
// the same material share these instances, which keeps per-tick animation
// cost proportional to the number of materials rather than particles.
//
// Every variant of a key is built on first use from its own stream derived
// from the cache seed and the key, and callers pick a variant with their own
// generator. The colors a particle gets therefore do not depend on which
// goroutine reached the cache first.
//
// Get is safe for concurrent use; Advance must not overlap with Get.
type Cache struct {
	mu       sync.Mutex
	max      int
	seed     uint64
	variants map[string][]Animator
	keys     []string
}

// NewCache returns a cache holding max animators per key.
func NewCache(max int, seed uint64) *Cache {
	if max <= 0 {
		max = DefaultVariants
	}
	return &Cache{
		max:      max,
		seed:     seed,
		variants: make(map[string][]Animator),
	}
}

// Get returns one of key's animators chosen with r, building the key's
// variants from style on first use.
func (c *Cache) Get(r *rand.Rand, key string, style Style) Animator {
	c.mu.Lock()
	defer c.mu.Unlock()

	list, ok := c.variants[key]
	if !ok {
		c.keys = append(c.keys, key)
		list = make([]Animator, c.max)
		for i := range list {
			list[i] = New(style, c.stream(key, i))
		}
		c.variants[key] = list
	}
	return list[r.IntN(len(list))]
}

func (c *Cache) stream(key string, variant int) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(key))
	return rand.New(rand.NewPCG(c.seed^h.Sum64(), uint64(variant)))
}

// Advance steps every cached animator exactly once.
func (c *Cache) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range c.keys {
		for _, a := range c.variants[key] {
			a.Advance()
		}
	}
}

// Variants reports how many animators exist for key.
func (c *Cache) Variants(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.variants[key])
}

// Len reports the total number of live animators.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, list := range c.variants {
		n += len(list)
	}
	return n
}

// Reset drops every animator and reseeds the variant streams.
func (c *Cache) Reset(seed uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seed = seed
	c.variants = make(map[string][]Animator)
	c.keys = nil
}
