package exam

import (
	"errors"
	"testing"
)

func countsOf(available ...int) []disciplineCount {
	counts := make([]disciplineCount, len(available))
	for idx, n := range available {
		counts[idx] = disciplineCount{name: string(rune('A' + idx)), available: n}
	}
	return counts
}

func sumOf(quotas []int) int {
	total := 0
	for _, quota := range quotas {
		total += quota
	}
	return total
}

func TestAllocateEvenRemainderFollowsInputOrder(t *testing.T) {
	quotas, err := allocate(countsOf(10, 10, 10), 10, DistributionEven)
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	want := []int{4, 3, 3}
	for idx := range want {
		if quotas[idx] != want[idx] {
			t.Fatalf("even quotas = %v, want %v", quotas, want)
		}
	}
}

func TestAllocateAutoCapsSmallDiscipline(t *testing.T) {
	// availability {A:3, B:20}, total 10: A capped at 3, B absorbs the spill.
	quotas, err := allocate(countsOf(3, 20), 10, DistributionAuto)
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	if quotas[0] != 3 || quotas[1] != 7 {
		t.Fatalf("auto quotas = %v, want [3 7]", quotas)
	}
}

func TestAllocateAutoLargestRemainderTieBreaksInInputOrder(t *testing.T) {
	quotas, err := allocate(countsOf(10, 10, 10), 10, DistributionAuto)
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	want := []int{4, 3, 3}
	for idx := range want {
		if quotas[idx] != want[idx] {
			t.Fatalf("auto quotas = %v, want %v", quotas, want)
		}
	}
}

func TestAllocateEvenWithSpill(t *testing.T) {
	quotas, err := allocate(countsOf(2, 8), 8, DistributionEven)
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	if quotas[0] != 2 || quotas[1] != 6 {
		t.Fatalf("quotas = %v, want [2 6]", quotas)
	}
}

func TestAllocateQuotasSumToTotalAndRespectAvailability(t *testing.T) {
	cases := []struct {
		available []int
		total     int
		dist      Distribution
	}{
		{[]int{3, 20}, 10, DistributionAuto},
		{[]int{1, 1, 1, 1, 1}, 5, DistributionAuto},
		{[]int{7, 2, 11}, 12, DistributionEven},
		{[]int{36}, 36, DistributionAuto},
		{[]int{5, 5, 30}, 25, DistributionEven},
	}

	for _, tc := range cases {
		counts := countsOf(tc.available...)
		quotas, err := allocate(counts, tc.total, tc.dist)
		if err != nil {
			t.Fatalf("allocate(%v, %d, %s) failed: %v", tc.available, tc.total, tc.dist, err)
		}
		if got := sumOf(quotas); got != tc.total {
			t.Fatalf("allocate(%v, %d, %s) sum = %d, want %d", tc.available, tc.total, tc.dist, got, tc.total)
		}
		for idx := range quotas {
			if quotas[idx] > counts[idx].available {
				t.Fatalf("allocate(%v, %d, %s) quota %d exceeds availability: %v", tc.available, tc.total, tc.dist, idx, quotas)
			}
		}
	}
}

func TestAllocateInsufficientPool(t *testing.T) {
	_, err := allocate(countsOf(2, 3), 6, DistributionAuto)
	if !errors.Is(err, ErrInsufficientPool) {
		t.Fatalf("expected ErrInsufficientPool, got %v", err)
	}

	_, err = allocate(nil, 5, DistributionAuto)
	if !errors.Is(err, ErrInsufficientPool) {
		t.Fatalf("expected ErrInsufficientPool for empty input, got %v", err)
	}
}
