package programs

import (
	"errors"

	"github.com/povarna/generative-ai-agents/dsa-lab/internal/datastructures/binarytree"
	"github.com/povarna/generative-ai-agents/dsa-lab/internal/menu"
)

func BinaryTree() *menu.Program {
	tree := binarytree.New()

	return &menu.Program{
		Name:  "bt",
		Title: "BINARY TREE OPERATIONS",
		Options: []menu.Option{
			{Label: "Insert Node", Action: func(s *menu.Session) error {
				v, err := s.Ask("Enter value to insert: ")
				if err != nil {
					return err
				}
				tree.Insert(v)
				return nil
			}},
			{Label: "Delete Node", Action: func(s *menu.Session) error {
				v, err := s.Ask("Enter value to delete: ")
				if err != nil {
					return err
				}
				// an empty tree has nothing to report
				if tree.IsEmpty() {
					return nil
				}
				if err := tree.Delete(v); err != nil {
					if errors.Is(err, binarytree.ErrNotFound) {
						s.Printf("Node with value %d not found.\n", v)
						return nil
					}
					return err
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
			{Label: "Count Nodes", Action: func(s *menu.Session) error {
				s.Printf("Total number of nodes: %d\n", tree.Count())
				return nil
			}},
		},
	}
}
