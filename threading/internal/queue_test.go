package internal

import "testing"

func TestQueueFIFOOrder(t *testing.T) {
	var q Queue
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		q.Push(func() { order = append(order, i) })
	}
	for i := 0; i < 5; i++ {
		job, ok := q.TryPop()
		if !ok {
			t.Fatalf("TryPop %d: expected a job", i)
		}
		job()
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("order[%d] = %d, want %d", i, v, i)
		}
	}
	if _, ok := q.TryPop(); ok {
		t.Fatal("TryPop on empty queue should fail")
	}
}

func TestQueueLen(t *testing.T) {
	var q Queue
	if q.Len() != 0 {
		t.Fatalf("Len = %d, want 0", q.Len())
	}
	q.Push(func() {})
	q.Push(func() {})
	if q.Len() != 2 {
		t.Fatalf("Len = %d, want 2", q.Len())
	}
	q.TryPop()
	if q.Len() != 1 {
		t.Fatalf("Len = %d, want 1", q.Len())
	}
}
