package stack

import "errors"

var ErrUnderflow = errors.New("stack underflow")

type node struct {
	value int
	next  *node
}

// Stack is a LIFO stack on a singly linked chain; each node points at the
// one below it. The zero value is an empty stack.
type Stack struct {
	top *node
}

func New() *Stack {
	return &Stack{}
}

func (s *Stack) Push(value int) {
	s.top = &node{value: value, next: s.top}
}

func (s *Stack) Pop() (int, error) {
	if s.top == nil {
		return 0, ErrUnderflow
	}

	popped := s.top
	s.top = popped.next
	popped.next = nil

	return popped.value, nil
}

func (s *Stack) Peek() (int, error) {
	if s.top == nil {
		return 0, ErrUnderflow
	}
	return s.top.value, nil
}

func (s *Stack) IsEmpty() bool {
	return s.top == nil
}

// Values lists the elements from top to bottom.
func (s *Stack) Values() []int {
	values := []int{}
	for n := s.top; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

func (s *Stack) Count() int {
	count := 0
	for n := s.top; n != nil; n = n.next {
		count++
	}
	return count
}
