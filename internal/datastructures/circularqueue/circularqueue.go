package circularqueue

import (
	"errors"
	"fmt"
)

const DefaultCapacity = 5

var (
	ErrOverflow        = errors.New("queue overflow")
	ErrUnderflow       = errors.New("queue underflow")
	ErrInvalidCapacity = errors.New("invalid queue capacity")
)

// Queue is a fixed-capacity ring buffer. Full and empty are told apart by
// the front/rear relationship alone; an empty queue has front == rear == -1.
type Queue struct {
	items []int
	front int
	rear  int
}

func New(capacity int) (*Queue, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	return &Queue{
		items: make([]int, capacity),
		front: -1,
		rear:  -1,
	}, nil
}

func (q *Queue) Capacity() int {
	return len(q.items)
}

func (q *Queue) IsFull() bool {
	return (q.front == 0 && q.rear == len(q.items)-1) || q.rear+1 == q.front
}

func (q *Queue) IsEmpty() bool {
	return q.front == -1
}

func (q *Queue) Enqueue(value int) error {
	if q.IsFull() {
		return ErrOverflow
	}

	if q.IsEmpty() {
		q.front = 0
		q.rear = 0
	} else {
		q.rear = (q.rear + 1) % len(q.items)
	}

	q.items[q.rear] = value
	return nil
}

func (q *Queue) Dequeue() (int, error) {
	if q.IsEmpty() {
		return 0, ErrUnderflow
	}

	value := q.items[q.front]

	if q.front == q.rear {
		q.front = -1
		q.rear = -1
	} else {
		q.front = (q.front + 1) % len(q.items)
	}

	return value, nil
}

func (q *Queue) Peek() (int, error) {
	if q.IsEmpty() {
		return 0, ErrUnderflow
	}
	return q.items[q.front], nil
}

// Values lists the elements from front to rear, wrapping around the buffer.
func (q *Queue) Values() []int {
	values := []int{}
	if q.IsEmpty() {
		return values
	}

	for i := q.front; ; i = (i + 1) % len(q.items) {
		values = append(values, q.items[i])
		if i == q.rear {
			break
		}
	}
	return values
}

func (q *Queue) Count() int {
	if q.IsEmpty() {
		return 0
	}

	if q.rear >= q.front {
		return q.rear - q.front + 1
	}
	return len(q.items) - (q.front - q.rear - 1)
}
