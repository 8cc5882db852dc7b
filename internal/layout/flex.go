package layout

import "math"

// flexEntry holds per-child distribution state. Stack-allocated per layout
// call, never stored on nodes.
type flexEntry struct {
	size   int     // current main-axis size, starts at the base size
	weight float64 // grow or shrink factor depending on the operation
	min    int     // shrink floor (explicit min, else intrinsic min-content)
	max    int     // grow ceiling; negative means unbounded
	frozen bool    // hit its bound; no longer participates
}

// distributeExact splits total cells across weights with no cell lost or
// double-counted: each index gets floor(total * weight / totalWeight), then
// leftover cells go one at a time to the largest fractional remainders,
// ties broken by lowest index. This rule is relied on bit-for-bit by flex
// distribution and fr-track sizing.
func distributeExact(total int, weights []float64) []int {
	shares := make([]int, len(weights))
	if total <= 0 || len(weights) == 0 {
		return shares
	}
	totalWeight := 0.0
	for _, w := range weights {
		totalWeight += w
	}
	if totalWeight <= 0 {
		return shares
	}

	fracs := make([]float64, len(weights))
	assigned := 0
	for i, w := range weights {
		raw := float64(total) * w / totalWeight
		base := math.Floor(raw)
		shares[i] = int(base)
		fracs[i] = raw - base
		assigned += shares[i]
	}

	for leftover := total - assigned; leftover > 0; leftover-- {
		best := -1
		for i := range fracs {
			if best == -1 || fracs[i] > fracs[best] {
				best = i
			}
		}
		shares[best]++
		fracs[best] = -1 // consumed
	}
	return shares
}

// growFlex distributes free cells among entries with positive weight.
// When a share pushes an entry past its max, the entry is frozen at the max
// and the cells it could not absorb are redistributed among the remaining
// unfrozen entries. Iterates to a fixpoint: the loop ends when no entry is
// newly frozen or no space remains.
func growFlex(entries []flexEntry, free int) {
	for free > 0 {
		weights := make([]float64, len(entries))
		active := 0
		for i := range entries {
			if !entries[i].frozen && entries[i].weight > 0 {
				weights[i] = entries[i].weight
				active++
			}
		}
		if active == 0 {
			return
		}

		shares := distributeExact(free, weights)
		newlyFrozen := false
		for i := range entries {
			if shares[i] == 0 {
				continue
			}
			capacity := shares[i]
			if entries[i].max >= 0 {
				if room := entries[i].max - entries[i].size; room < capacity {
					capacity = room
					entries[i].frozen = true
					newlyFrozen = true
				}
			}
			if capacity < 0 {
				capacity = 0
			}
			entries[i].size += capacity
			free -= capacity
		}
		if !newlyFrozen {
			return
		}
	}
}

// shrinkFlex removes deficit cells from entries with positive weight,
// flooring each at its min. Cells a floored entry could not give up are
// taken from the remaining entries, iterating the same way growFlex does.
func shrinkFlex(entries []flexEntry, deficit int) {
	for deficit > 0 {
		weights := make([]float64, len(entries))
		active := 0
		for i := range entries {
			if !entries[i].frozen && entries[i].weight > 0 {
				weights[i] = entries[i].weight
				active++
			}
		}
		if active == 0 {
			return
		}

		cuts := distributeExact(deficit, weights)
		newlyFrozen := false
		for i := range entries {
			if cuts[i] == 0 {
				continue
			}
			give := cuts[i]
			if room := entries[i].size - entries[i].min; room < give {
				give = room
				entries[i].frozen = true
				newlyFrozen = true
			}
			if give < 0 {
				give = 0
			}
			entries[i].size -= give
			deficit -= give
		}
		if !newlyFrozen {
			return
		}
	}
}
