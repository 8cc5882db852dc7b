package expr

import "sync"

// Cache interns parsed expressions by exact source text. Two calls with
// byte-identical source return the same *Parsed, so trees can be compared
// by pointer and reused across frames. Parse failures are not cached.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*Parsed
}

// NewCache creates an empty interning cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Parsed)}
}

// Parse returns the interned tree for source, parsing on first sight.
func (c *Cache) Parse(source string) (*Parsed, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if parsed, ok := c.entries[source]; ok {
		return parsed, nil
	}
	parsed, err := Parse(source)
	if err != nil {
		return nil, err
	}
	c.entries[source] = parsed
	return parsed, nil
}

// Reset drops all interned entries, ending the current construction epoch.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*Parsed)
}

// Len reports the number of interned expressions.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// defaultCache backs the package-level Intern and ResetCache helpers.
var defaultCache = NewCache()

// Intern parses source through the package-level cache.
func Intern(source string) (*Parsed, error) {
	return defaultCache.Parse(source)
}

// ResetCache clears the package-level interning cache.
func ResetCache() {
	defaultCache.Reset()
}
