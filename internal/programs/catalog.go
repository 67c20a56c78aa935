package programs

import (
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/dsa-lab/internal/menu"
)

// Settings carries the knobs an exercise may need when it is built.
type Settings struct {
	QueueCapacity int
}

type Entry struct {
	Name    string
	Aliases []string
	Short   string
	Build   func(Settings) (*menu.Program, error)
}

func plain(build func() *menu.Program) func(Settings) (*menu.Program, error) {
	return func(Settings) (*menu.Program, error) {
		return build(), nil
	}
}

func buildCircularQueue(s Settings) (*menu.Program, error) {
	return CircularQueue(s.QueueCapacity)
}

// Catalog lists the exercises in menu order.
func Catalog() []Entry {
	return []Entry{
		{
			Name:    "sll",
			Aliases: []string{"singly-linked-list", "linked-list"},
			Short:   "Singly Linked List",
			Build:   plain(SinglyLinkedList),
		},
		{
			Name:    "stack",
			Aliases: []string{"linked-stack", "singly-linked-stack"},
			Short:   "Stack using Linked List",
			Build:   plain(Stack),
		},
		{
			Name:    "dll",
			Aliases: []string{"doubly-linked-list"},
			Short:   "Doubly Linked List",
			Build:   plain(DoublyLinkedList),
		},
		{
			Name:    "cq",
			Aliases: []string{"circular-queue"},
			Short:   "Circular Queue",
			Build:   buildCircularQueue,
		},
		{
			Name:    "bt",
			Aliases: []string{"binary-tree"},
			Short:   "Binary Tree",
			Build:   plain(BinaryTree),
		},
		{
			Name:    "bst",
			Aliases: []string{"binary-search-tree"},
			Short:   "Binary Search Tree",
			Build:   plain(BinarySearchTree),
		},
	}
}

// Lookup finds an entry by name or alias, ignoring case.
func Lookup(entries []Entry, name string) (Entry, error) {
	for _, e := range entries {
		if strings.EqualFold(e.Name, name) {
			return e, nil
		}
		for _, alias := range e.Aliases {
			if strings.EqualFold(alias, name) {
				return e, nil
			}
		}
	}
	return Entry{}, fmt.Errorf("unknown exercise %q", name)
}
