package layout

import "testing"

func TestDistributeExact_EqualWeights(t *testing.T) {
	shares := distributeExact(100, []float64{1, 1, 1})

	// The single remainder cell goes to the lowest index.
	want := []int{34, 33, 33}
	for i := range want {
		if shares[i] != want[i] {
			t.Errorf("shares[%d] = %d, want %d", i, shares[i], want[i])
		}
	}
}

func TestDistributeExact_Conservation(t *testing.T) {
	weights := []float64{1, 2, 3, 5, 7}
	for total := 0; total <= 257; total++ {
		shares := distributeExact(total, weights)
		sum := 0
		for _, s := range shares {
			sum += s
		}
		if total > 0 && sum != total {
			t.Fatalf("total %d: shares sum to %d", total, sum)
		}
	}
}

func TestDistributeExact_LargestRemainderWins(t *testing.T) {
	// 10 over weights 1 and 2: raw shares 3.33 and 6.67. The leftover
	// cell goes to index 1, which holds the larger fraction.
	shares := distributeExact(10, []float64{1, 2})
	if shares[0] != 3 || shares[1] != 7 {
		t.Errorf("shares = %v, want [3 7]", shares)
	}
}

func TestDistributeExact_ZeroWeightGetsNothing(t *testing.T) {
	shares := distributeExact(50, []float64{0, 1, 0})
	if shares[0] != 0 || shares[2] != 0 {
		t.Errorf("zero-weight shares = %d, %d, want 0, 0", shares[0], shares[2])
	}
	if shares[1] != 50 {
		t.Errorf("shares[1] = %d, want 50", shares[1])
	}
}

func TestDistributeExact_NoWeightNoDistribution(t *testing.T) {
	shares := distributeExact(50, []float64{0, 0})
	if shares[0] != 0 || shares[1] != 0 {
		t.Errorf("shares = %v, want [0 0]", shares)
	}
}

func TestGrowFlex_RespectsMax(t *testing.T) {
	entries := []flexEntry{
		{size: 0, weight: 1, max: 10},
		{size: 0, weight: 1, max: -1},
	}
	growFlex(entries, 100)

	if entries[0].size != 10 {
		t.Errorf("capped entry = %d, want 10", entries[0].size)
	}
	// The 40 cells the capped entry could not absorb flow to the other.
	if entries[1].size != 90 {
		t.Errorf("uncapped entry = %d, want 90", entries[1].size)
	}
}

// Locks the exact allocation sequence when caps cascade: entries capped in
// one redistribution round free cells that cap further entries in the
// next, iterating until nothing new freezes.
func TestDistribute_RecapSequence(t *testing.T) {
	entries := []flexEntry{
		{size: 0, weight: 1, max: 5},
		{size: 0, weight: 1, max: 35},
		{size: 0, weight: 1, max: -1},
	}
	growFlex(entries, 90)

	// Round 1: 30 each; entry 0 freezes at 5. Round 2: the freed 25
	// splits 13/12 (remainder to lower index); entry 1 freezes at 35,
	// returning 8. Round 3: entry 2 absorbs the rest.
	want := []int{5, 35, 50}
	for i := range want {
		if entries[i].size != want[i] {
			t.Errorf("entries[%d].size = %d, want %d", i, entries[i].size, want[i])
		}
	}
}

func TestShrinkFlex_FloorsAtMin(t *testing.T) {
	entries := []flexEntry{
		{size: 40, weight: 1, min: 35},
		{size: 40, weight: 1, min: 0},
	}
	shrinkFlex(entries, 30)

	if entries[0].size != 35 {
		t.Errorf("floored entry = %d, want 35", entries[0].size)
	}
	if entries[1].size != 15 {
		t.Errorf("unfloored entry = %d, want 15", entries[1].size)
	}
}

func TestShrinkFlex_ZeroWeightPins(t *testing.T) {
	entries := []flexEntry{
		{size: 40, weight: 0},
		{size: 40, weight: 1},
	}
	shrinkFlex(entries, 20)

	if entries[0].size != 40 {
		t.Errorf("pinned entry = %d, want 40", entries[0].size)
	}
	if entries[1].size != 20 {
		t.Errorf("shrinking entry = %d, want 20", entries[1].size)
	}
}
