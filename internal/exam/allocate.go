package exam

import "sort"

type Distribution string

const (
	DistributionAuto Distribution = "auto"
	DistributionEven Distribution = "even"
)

type disciplineCount struct {
	name      string
	available int
}

// allocate computes a per-discipline quota summing to exactly total, capped
// by availability. Input order is the deterministic tie-break for both
// strategies and for spill redistribution.
func allocate(counts []disciplineCount, total int, dist Distribution) ([]int, error) {
	if len(counts) == 0 || total <= 0 {
		return nil, ErrInsufficientPool
	}

	totalAvailable := 0
	for _, count := range counts {
		totalAvailable += count.available
	}
	if totalAvailable < total {
		return nil, ErrInsufficientPool
	}

	var quotas []int
	switch dist {
	case DistributionEven:
		quotas = allocateEven(len(counts), total)
	default:
		quotas = allocateProportional(counts, total, totalAvailable)
	}

	redistributeSpill(counts, quotas)
	return quotas, nil
}

func allocateEven(k, total int) []int {
	base := total / k
	remainder := total - base*k

	quotas := make([]int, k)
	for idx := range quotas {
		quotas[idx] = base
		if idx < remainder {
			quotas[idx]++
		}
	}
	return quotas
}

// allocateProportional first caps disciplines that cannot supply an even
// share of what is still needed, then splits the remainder among the others
// by the largest-remainder method over their availability shares. The
// capping rounds are what make a small discipline absorb at most its
// availability while the big ones take the spill.
func allocateProportional(counts []disciplineCount, total, totalAvailable int) []int {
	quotas := make([]int, len(counts))

	active := make([]int, 0, len(counts))
	for idx := range counts {
		active = append(active, idx)
	}
	remaining := total

	for {
		k := len(active)
		if k == 0 {
			return quotas
		}
		need := remaining
		next := active[:0]
		for _, idx := range active {
			if counts[idx].available*k < need {
				quotas[idx] = counts[idx].available
				remaining -= counts[idx].available
			} else {
				next = append(next, idx)
			}
		}
		if len(next) == k {
			break
		}
		active = next
	}
	if remaining <= 0 {
		return quotas
	}

	availSum := 0
	for _, idx := range active {
		availSum += counts[idx].available
	}

	fractions := make([]float64, len(counts))
	assigned := 0
	for _, idx := range active {
		ideal := float64(remaining) * float64(counts[idx].available) / float64(availSum)
		quotas[idx] = int(ideal)
		fractions[idx] = ideal - float64(quotas[idx])
		assigned += quotas[idx]
	}

	order := append([]int(nil), active...)
	// Stable sort keeps input order for equal fractions.
	sort.SliceStable(order, func(i, j int) bool {
		return fractions[order[i]] > fractions[order[j]]
	})

	leftover := remaining - assigned
	for idx := 0; idx < leftover; idx++ {
		quotas[order[idx]]++
	}

	return quotas
}

// redistributeSpill moves quota away from disciplines that cannot supply it,
// one unit at a time toward the discipline with the most remaining room.
// The caller guarantees total availability covers the total, so this always
// terminates with no spill left.
func redistributeSpill(counts []disciplineCount, quotas []int) {
	spill := 0
	for idx := range quotas {
		if quotas[idx] > counts[idx].available {
			spill += quotas[idx] - counts[idx].available
			quotas[idx] = counts[idx].available
		}
	}

	for spill > 0 {
		target := -1
		room := 0
		for idx := range quotas {
			if free := counts[idx].available - quotas[idx]; free > room {
				target = idx
				room = free
			}
		}
		if target < 0 {
			return
		}
		quotas[target]++
		spill--
	}
}
