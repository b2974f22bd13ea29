package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForSequential(t *testing.T) {
	prev := Enabled
	Enabled = false
	defer func() { Enabled = prev }()

	sum := int64(0)
	For(100, func(i int) {
		atomic.AddInt64(&sum, int64(i))
	})
	if sum != 4950 {
		t.Errorf("sum = %d, want 4950", sum)
	}
}

func TestForParallelCoversEveryIndex(t *testing.T) {
	prev := Enabled
	Enabled = true
	defer func() { Enabled = prev }()

	const n = 5000
	seen := make([]int32, n)
	For(n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})
	for i, c := range seen {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
}

func TestForSmallRangeRunsSequentially(t *testing.T) {
	prev := Enabled
	Enabled = true
	defer func() { Enabled = prev }()

	var order []int
	For(10, func(i int) {
		order = append(order, i)
	})
	if len(order) != 10 {
		t.Fatalf("got %d calls, want 10", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("order[%d] = %d, want %d (below-threshold For must run in-order)", i, v, i)
		}
	}
}

func TestForZero(t *testing.T) {
	called := false
	For(0, func(i int) { called = true })
	if called {
		t.Error("For(0, ...) invoked fn")
	}
}
