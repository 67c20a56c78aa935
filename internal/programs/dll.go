package programs

import (
	"errors"

	"github.com/povarna/generative-ai-agents/dsa-lab/internal/datastructures/doublylinkedlist"
	"github.com/povarna/generative-ai-agents/dsa-lab/internal/menu"
)

func DoublyLinkedList() *menu.Program {
	list := doublylinkedlist.NewDoublyLinkedList()

	traverseForward := func(s *menu.Session) error {
		if list.IsEmpty() {
			s.Println("List is empty.")
			return nil
		}
		printValues(s, "Traversal from beginning: ", list.Forward())
		return nil
	}
	traverseBackward := func(s *menu.Session) error {
		if list.IsEmpty() {
			s.Println("List is empty.")
			return nil
		}
		printValues(s, "Traversal from end: ", list.Backward())
		return nil
	}
	deleted := func(s *menu.Session, where string, v int, err error) error {
		if errors.Is(err, doublylinkedlist.ErrEmpty) {
			s.Println("List is empty. Cannot delete.")
			return nil
		}
		if err != nil {
			return err
		}
		s.Printf("Node with value %d deleted from %s.\n", v, where)
		return nil
	}

	return &menu.Program{
		Name:          "dll",
		Title:         "DOUBLY LINKED LIST OPERATIONS",
		InvalidChoice: "Invalid choice! Please try again.",
		Options: []menu.Option{
			{Label: "Insert at Beginning", Action: func(s *menu.Session) error {
				v, err := s.Ask("Enter value to insert: ")
				if err != nil {
					return err
				}
				list.InsertAtBeginning(v)
				s.Println("Node inserted at beginning.")
				return nil
			}},
			{Label: "Insert at End", Action: func(s *menu.Session) error {
				v, err := s.Ask("Enter value to insert: ")
				if err != nil {
					return err
				}
				list.InsertAtEnd(v)
				s.Println("Node inserted at end.")
				return nil
			}},
			{Label: "Delete from Beginning", Action: func(s *menu.Session) error {
				v, err := list.DeleteFromBeginning()
				return deleted(s, "beginning", v, err)
			}},
			{Label: "Delete from End", Action: func(s *menu.Session) error {
				v, err := list.DeleteFromEnd()
				return deleted(s, "end", v, err)
			}},
			{Label: "Traverse from Beginning", Action: traverseForward},
			{Label: "Traverse from End", Action: traverseBackward},
			{Label: "Display from Both Sides", Action: func(s *menu.Session) error {
				if err := traverseForward(s); err != nil {
					return err
				}
				return traverseBackward(s)
			}},
			{Label: "Count Number of Nodes", Action: func(s *menu.Session) error {
				s.Printf("Total number of nodes: %d\n", list.Count())
				return nil
			}},
		},
	}
}
