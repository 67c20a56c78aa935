package circularqueue

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newQueue(t *testing.T, capacity int) *Queue {
	t.Helper()
	q, err := New(capacity)
	if err != nil {
		t.Fatalf("New(%d) unexpected error: %v", capacity, err)
	}
	return q
}

func TestNew_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -3} {
		if _, err := New(capacity); !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("New(%d) error = %v; want ErrInvalidCapacity", capacity, err)
		}
	}
}

func TestEnqueueUntilFull(t *testing.T) {
	q := newQueue(t, DefaultCapacity)

	if !q.IsEmpty() || q.IsFull() {
		t.Fatalf("new queue: IsEmpty=%v IsFull=%v; want true, false", q.IsEmpty(), q.IsFull())
	}

	for v := 1; v <= DefaultCapacity; v++ {
		if err := q.Enqueue(v); err != nil {
			t.Fatalf("Enqueue(%d) unexpected error: %v", v, err)
		}
	}

	if !q.IsFull() {
		t.Error("expected queue to be full")
	}
	if err := q.Enqueue(6); !errors.Is(err, ErrOverflow) {
		t.Errorf("Enqueue on full queue error = %v; want ErrOverflow", err)
	}
	if q.Count() != q.Capacity() {
		t.Errorf("Count() = %d; want Capacity() = %d", q.Count(), q.Capacity())
	}
	if q.Capacity() != DefaultCapacity {
		t.Errorf("Capacity() = %d; want %d", q.Capacity(), DefaultCapacity)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, q.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapAround(t *testing.T) {
	q := newQueue(t, 5)
	for v := 1; v <= 5; v++ {
		_ = q.Enqueue(v)
	}

	got, err := q.Dequeue()
	if err != nil || got != 1 {
		t.Fatalf("Dequeue() = %d, %v; want 1, nil", got, err)
	}

	// rear wraps to index 0, directly behind front
	if err := q.Enqueue(6); err != nil {
		t.Fatalf("Enqueue(6) unexpected error: %v", err)
	}
	if !q.IsFull() {
		t.Error("expected queue to be full after wrap-around")
	}
	if diff := cmp.Diff([]int{2, 3, 4, 5, 6}, q.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
	if q.Count() != 5 {
		t.Errorf("Count() = %d; want 5", q.Count())
	}

	_, _ = q.Dequeue()
	_, _ = q.Dequeue()

	if diff := cmp.Diff([]int{4, 5, 6}, q.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
	if q.Count() != 3 {
		t.Errorf("Count() = %d; want 3", q.Count())
	}

	front, err := q.Peek()
	if err != nil || front != 4 {
		t.Errorf("Peek() = %d, %v; want 4, nil", front, err)
	}
}

func TestDequeueLastResetsQueue(t *testing.T) {
	q := newQueue(t, 3)
	_ = q.Enqueue(1)
	_ = q.Enqueue(2)
	_, _ = q.Dequeue()
	_, _ = q.Dequeue()

	if !q.IsEmpty() {
		t.Fatal("expected queue to be empty")
	}
	if q.front != -1 || q.rear != -1 {
		t.Errorf("front, rear = %d, %d; want -1, -1", q.front, q.rear)
	}
	if _, err := q.Dequeue(); !errors.Is(err, ErrUnderflow) {
		t.Errorf("Dequeue on empty queue error = %v; want ErrUnderflow", err)
	}
	if _, err := q.Peek(); !errors.Is(err, ErrUnderflow) {
		t.Errorf("Peek on empty queue error = %v; want ErrUnderflow", err)
	}
	if q.Count() != 0 || len(q.Values()) != 0 {
		t.Errorf("Count() = %d, Values() = %v; want 0, []", q.Count(), q.Values())
	}
}

func TestCapacityOne(t *testing.T) {
	q := newQueue(t, 1)

	if err := q.Enqueue(42); err != nil {
		t.Fatalf("Enqueue(42) unexpected error: %v", err)
	}
	if !q.IsFull() {
		t.Error("expected single-slot queue to be full")
	}
	if err := q.Enqueue(43); !errors.Is(err, ErrOverflow) {
		t.Errorf("Enqueue(43) error = %v; want ErrOverflow", err)
	}

	got, err := q.Dequeue()
	if err != nil || got != 42 {
		t.Errorf("Dequeue() = %d, %v; want 42, nil", got, err)
	}
	if !q.IsEmpty() {
		t.Error("expected queue to be empty")
	}
}
