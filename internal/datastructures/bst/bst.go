package bst

import (
	"errors"

	"github.com/povarna/generative-ai-agents/dsa-lab/internal/datastructures/binarytree"
)

var (
	ErrDuplicate = errors.New("duplicate value")
	ErrNotFound  = errors.New("value not found")
	ErrEmpty     = errors.New("tree is empty")
)

// Tree keeps every left subtree strictly less than its root and every right
// subtree strictly greater. Duplicates are rejected.
type Tree struct {
	Root *binarytree.Node
}

func New() *Tree {
	return &Tree{}
}

func (t *Tree) Insert(value int) error {
	root, err := insert(t.Root, value)
	if err != nil {
		return err
	}
	t.Root = root
	return nil
}

func insert(n *binarytree.Node, value int) (*binarytree.Node, error) {
	if n == nil {
		return &binarytree.Node{Value: value}, nil
	}

	var err error
	switch {
	case value < n.Value:
		n.Left, err = insert(n.Left, value)
	case value > n.Value:
		n.Right, err = insert(n.Right, value)
	default:
		err = ErrDuplicate
	}
	return n, err
}

func (t *Tree) Delete(value int) error {
	root, err := remove(t.Root, value)
	if err != nil {
		return err
	}
	t.Root = root
	return nil
}

func remove(n *binarytree.Node, value int) (*binarytree.Node, error) {
	if n == nil {
		return nil, ErrNotFound
	}

	var err error
	switch {
	case value < n.Value:
		n.Left, err = remove(n.Left, value)
		return n, err
	case value > n.Value:
		n.Right, err = remove(n.Right, value)
		return n, err
	}

	switch {
	case n.Left == nil && n.Right == nil:
		return nil, nil
	case n.Left == nil:
		return n.Right, nil
	case n.Right == nil:
		return n.Left, nil
	}

	// two children: take the in-order successor's value, then drop the successor
	successor := minNode(n.Right)
	n.Value = successor.Value
	n.Right, err = remove(n.Right, successor.Value)
	return n, err
}

func minNode(n *binarytree.Node) *binarytree.Node {
	for n != nil && n.Left != nil {
		n = n.Left
	}
	return n
}

func maxNode(n *binarytree.Node) *binarytree.Node {
	for n != nil && n.Right != nil {
		n = n.Right
	}
	return n
}

// Search returns the node holding value, or nil.
func (t *Tree) Search(value int) *binarytree.Node {
	n := t.Root
	for n != nil && n.Value != value {
		if value < n.Value {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n
}

func (t *Tree) Contains(value int) bool {
	return t.Search(value) != nil
}

func (t *Tree) Min() (int, error) {
	if t.Root == nil {
		return 0, ErrEmpty
	}
	return minNode(t.Root).Value, nil
}

func (t *Tree) Max() (int, error) {
	if t.Root == nil {
		return 0, ErrEmpty
	}
	return maxNode(t.Root).Value, nil
}

func (t *Tree) Inorder() []int {
	return binarytree.Inorder(t.Root)
}

func (t *Tree) Preorder() []int {
	return binarytree.Preorder(t.Root)
}

func (t *Tree) Postorder() []int {
	return binarytree.Postorder(t.Root)
}

func (t *Tree) Count() int {
	return binarytree.Count(t.Root)
}
