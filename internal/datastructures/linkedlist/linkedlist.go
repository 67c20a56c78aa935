package linkedlist

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrEmpty            = errors.New("list is empty")
	ErrNotFound         = errors.New("value not found")
	ErrPositionNotFound = errors.New("position not found")
)

type Node struct {
	Value int
	Next  *Node
}

// LinkedList is a singly linked list. The zero value is an empty list.
type LinkedList struct {
	Head *Node
}

func New() *LinkedList {
	return &LinkedList{}
}

func (l *LinkedList) InsertAtBeginning(value int) {
	l.Head = &Node{Value: value, Next: l.Head}
}

func (l *LinkedList) InsertAtEnd(value int) {
	newNode := &Node{Value: value}

	if l.Head == nil {
		l.Head = newNode
		return
	}

	last := l.Head
	for last.Next != nil {
		last = last.Next
	}
	last.Next = newNode
}

// InsertAfterPosition links a new node after the node at the 1-based position.
func (l *LinkedList) InsertAfterPosition(position int, value int) error {
	if position < 1 {
		return ErrPositionNotFound
	}

	current := l.Head
	for i := 1; i < position && current != nil; i++ {
		current = current.Next
	}

	if current == nil {
		return ErrPositionNotFound
	}

	current.Next = &Node{Value: value, Next: current.Next}
	return nil
}

func (l *LinkedList) DeleteFromBeginning() (int, error) {
	if l.Head == nil {
		return 0, ErrEmpty
	}

	removed := l.Head
	l.Head = removed.Next
	removed.Next = nil

	return removed.Value, nil
}

func (l *LinkedList) DeleteFromEnd() (int, error) {
	if l.Head == nil {
		return 0, ErrEmpty
	}

	var prev *Node
	current := l.Head
	for current.Next != nil {
		prev = current
		current = current.Next
	}

	if prev == nil {
		l.Head = nil
	} else {
		prev.Next = nil
	}

	return current.Value, nil
}

// DeleteByValue unlinks the first node holding value.
func (l *LinkedList) DeleteByValue(value int) error {
	var prev *Node
	current := l.Head

	for current != nil && current.Value != value {
		prev = current
		current = current.Next
	}

	if current == nil {
		return ErrNotFound
	}

	if prev == nil {
		l.Head = current.Next
	} else {
		prev.Next = current.Next
	}
	current.Next = nil

	return nil
}

func (l *LinkedList) Values() []int {
	values := []int{}
	for n := l.Head; n != nil; n = n.Next {
		values = append(values, n.Value)
	}
	return values
}

func (l *LinkedList) Count() int {
	count := 0
	for n := l.Head; n != nil; n = n.Next {
		count++
	}
	return count
}

func (l *LinkedList) IsEmpty() bool {
	return l.Head == nil
}

// String renders the chain as "1 -> 2 -> NULL".
func (l *LinkedList) String() string {
	var sb strings.Builder
	for n := l.Head; n != nil; n = n.Next {
		sb.WriteString(strconv.Itoa(n.Value))
		sb.WriteString(" -> ")
	}
	sb.WriteString("NULL")
	return sb.String()
}
