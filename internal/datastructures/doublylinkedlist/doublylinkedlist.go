package doublylinkedlist

import "errors"

var ErrEmpty = errors.New("list is empty")

type Node struct {
	Value int
	Prev  *Node
	Next  *Node
}

type DoublyLinkedList struct {
	Head *Node
	Tail *Node
	Size int
}

func NewDoublyLinkedList() *DoublyLinkedList {
	return &DoublyLinkedList{
		Head: nil,
		Tail: nil,
		Size: 0,
	}
}

func (dll *DoublyLinkedList) InsertAtBeginning(value int) {
	newNode := &Node{Value: value}

	if dll.Head == nil {
		dll.Head = newNode
		dll.Tail = newNode
	} else {
		newNode.Next = dll.Head
		dll.Head.Prev = newNode
		dll.Head = newNode
	}
	dll.Size++
}

func (dll *DoublyLinkedList) InsertAtEnd(value int) {
	newNode := &Node{Value: value}

	if dll.Tail == nil {
		dll.Tail = newNode
		dll.Head = newNode
	} else {
		newNode.Prev = dll.Tail
		dll.Tail.Next = newNode
		dll.Tail = newNode
	}
	dll.Size++
}

func (dll *DoublyLinkedList) DeleteFromBeginning() (int, error) {
	if dll.Head == nil {
		return 0, ErrEmpty
	}

	removed := dll.Head
	dll.Head = removed.Next
	if dll.Head != nil {
		dll.Head.Prev = nil
	} else {
		dll.Tail = nil
	}
	removed.Next = nil
	dll.Size--

	return removed.Value, nil
}

func (dll *DoublyLinkedList) DeleteFromEnd() (int, error) {
	if dll.Tail == nil {
		return 0, ErrEmpty
	}

	removed := dll.Tail
	dll.Tail = removed.Prev
	if dll.Tail != nil {
		dll.Tail.Next = nil
	} else {
		dll.Head = nil
	}
	removed.Prev = nil
	dll.Size--

	return removed.Value, nil
}

// Forward walks Next links from the head.
func (dll *DoublyLinkedList) Forward() []int {
	values := []int{}
	for n := dll.Head; n != nil; n = n.Next {
		values = append(values, n.Value)
	}
	return values
}

// Backward walks Prev links from the tail.
func (dll *DoublyLinkedList) Backward() []int {
	values := []int{}
	for n := dll.Tail; n != nil; n = n.Prev {
		values = append(values, n.Value)
	}
	return values
}

func (dll *DoublyLinkedList) Count() int {
	count := 0
	for n := dll.Head; n != nil; n = n.Next {
		count++
	}
	return count
}

func (dll *DoublyLinkedList) IsEmpty() bool {
	return dll.Head == nil
}
