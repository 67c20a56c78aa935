package programs

import (
	"errors"

	"github.com/povarna/generative-ai-agents/dsa-lab/internal/datastructures/linkedlist"
	"github.com/povarna/generative-ai-agents/dsa-lab/internal/menu"
)

func SinglyLinkedList() *menu.Program {
	list := linkedlist.New()

	return &menu.Program{
		Name:  "sll",
		Title: "SINGLE LINKED LIST OPERATIONS",
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
			{Label: "Insert After Position", Action: func(s *menu.Session) error {
				pos, err := s.Ask("Enter position: ")
				if err != nil {
					return err
				}
				v, err := s.Ask("Enter value to insert: ")
				if err != nil {
					return err
				}
				if err := list.InsertAfterPosition(pos, v); err != nil {
					if errors.Is(err, linkedlist.ErrPositionNotFound) {
						s.Println("Position not found.")
						return nil
					}
					return err
				}
				s.Printf("Node inserted after position %d.\n", pos)
				return nil
			}},
			{Label: "Delete from Beginning", Action: func(s *menu.Session) error {
				if _, err := list.DeleteFromBeginning(); err != nil {
					if errors.Is(err, linkedlist.ErrEmpty) {
						s.Println("List is empty.")
						return nil
					}
					return err
				}
				s.Println("Node deleted from beginning.")
				return nil
			}},
			{Label: "Delete from End", Action: func(s *menu.Session) error {
				if _, err := list.DeleteFromEnd(); err != nil {
					if errors.Is(err, linkedlist.ErrEmpty) {
						s.Println("List is empty.")
						return nil
					}
					return err
				}
				s.Println("Node deleted from end.")
				return nil
			}},
			{Label: "Delete by Value", Action: func(s *menu.Session) error {
				v, err := s.Ask("Enter value to delete: ")
				if err != nil {
					return err
				}
				if err := list.DeleteByValue(v); err != nil {
					if errors.Is(err, linkedlist.ErrNotFound) {
						s.Println("Value not found.")
						return nil
					}
					return err
				}
				s.Printf("Node with value %d deleted.\n", v)
				return nil
			}},
			{Label: "Display List", Action: func(s *menu.Session) error {
				if list.IsEmpty() {
					s.Println("List is empty.")
					return nil
				}
				s.Printf("Linked List: %s\n", list)
				return nil
			}},
			{Label: "Count Nodes", Action: func(s *menu.Session) error {
				s.Printf("Total nodes: %d\n", list.Count())
				return nil
			}},
		},
	}
}
