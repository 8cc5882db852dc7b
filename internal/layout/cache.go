package layout

// Axis names the main axis a measurement was requested for.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical

	// axisContent keys content-driven measurements (explicit sizes and
	// clamps ignored) so they share the cache without colliding with full
	// measurements at the same bounds.
	axisContent
)

// measureKey buckets cache entries under a node by the exact bounds and
// axis of the request. All three must match for a hit.
type measureKey struct {
	axis       Axis
	maxW, maxH int
}

// measureCache memoizes Measurer results. The outer map is keyed by node
// identity (the interface value), never by structural equality, so two
// equal-looking but distinct node objects cannot collide. A cache lives for
// exactly one pass; the engine allocates a fresh one each time, so stale
// cross-pass reuse is impossible by construction.
type measureCache struct {
	entries map[Node]map[measureKey]Size
	hits    int
	misses  int
}

func newMeasureCache() *measureCache {
	return &measureCache{entries: make(map[Node]map[measureKey]Size)}
}

// get returns the cached size for (node, axis, maxW, maxH), if present.
func (c *measureCache) get(node Node, axis Axis, maxW, maxH int) (Size, bool) {
	bucket, ok := c.entries[node]
	if !ok {
		c.misses++
		return Size{}, false
	}
	size, ok := bucket[measureKey{axis: axis, maxW: maxW, maxH: maxH}]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return size, ok
}

// put stores a measurement.
func (c *measureCache) put(node Node, axis Axis, maxW, maxH int, size Size) {
	bucket, ok := c.entries[node]
	if !ok {
		bucket = make(map[measureKey]Size, 2)
		c.entries[node] = bucket
	}
	bucket[measureKey{axis: axis, maxW: maxW, maxH: maxH}] = size
}
