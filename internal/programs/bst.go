package programs

import (
	"errors"

	"github.com/povarna/generative-ai-agents/dsa-lab/internal/datastructures/bst"
	"github.com/povarna/generative-ai-agents/dsa-lab/internal/menu"
)

func BinarySearchTree() *menu.Program {
	tree := bst.New()

	return &menu.Program{
		Name:  "bst",
		Title: "BINARY SEARCH TREE OPERATIONS",
		Options: []menu.Option{
			{Label: "Insert Node", Action: func(s *menu.Session) error {
				v, err := s.Ask("Enter value to insert: ")
				if err != nil {
					return err
				}
				if err := tree.Insert(v); err != nil {
					if errors.Is(err, bst.ErrDuplicate) {
						s.Println("Duplicate value! Ignored.")
						return nil
					}
					return err
				}
				return nil
			}},
			{Label: "Delete Node", Action: func(s *menu.Session) error {
				v, err := s.Ask("Enter value to delete: ")
				if err != nil {
					return err
				}
				if err := tree.Delete(v); err != nil {
					if errors.Is(err, bst.ErrNotFound) {
						s.Println("Value not found.")
						return nil
					}
					return err
				}
				return nil
			}},
			{Label: "Search Node", Action: func(s *menu.Session) error {
				v, err := s.Ask("Enter value to search: ")
				if err != nil {
					return err
				}
				if tree.Contains(v) {
					s.Printf("Value %d found in BST.\n", v)
				} else {
					s.Printf("Value %d not found.\n", v)
				}
				return nil
			}},
			{Label: "Inorder Traversal", Action: func(s *menu.Session) error {
				printValues(s, "Inorder Traversal: ", tree.Inorder())
				return nil
			}},
			{Label: "Preorder Traversal", Action: func(s *menu.Session) error {
				printValues(s, "Preorder Traversal: ", tree.Preorder())
				return nil
			}},
			{Label: "Postorder Traversal", Action: func(s *menu.Session) error {
				printValues(s, "Postorder Traversal: ", tree.Postorder())
				return nil
			}},
		},
	}
}
