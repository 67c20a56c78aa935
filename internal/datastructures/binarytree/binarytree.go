// Package binarytree implements a binary tree that is filled in level order,
// so it always stays complete. Deletion swaps the target with the deepest
// node and prunes the deepest node.
package binarytree

import (
	"errors"

	"github.com/emirpasic/gods/queues/arrayqueue"
)

var ErrNotFound = errors.New("node not found")

type Node struct {
	Value int
	Left  *Node
	Right *Node
}

type Tree struct {
	Root *Node
}

func New() *Tree {
	return &Tree{}
}

// WalkLevelOrder visits nodes breadth-first until visit returns false.
// Children are queued after their parent has been visited.
func WalkLevelOrder(root *Node, visit func(n *Node) bool) {
	if root == nil {
		return
	}

	queue := arrayqueue.New()
	queue.Enqueue(root)

	for !queue.Empty() {
		v, _ := queue.Dequeue()
		n := v.(*Node)

		if !visit(n) {
			return
		}

		if n.Left != nil {
			queue.Enqueue(n.Left)
		}
		if n.Right != nil {
			queue.Enqueue(n.Right)
		}
	}
}

// Insert places value in the first free child slot in level order.
func (t *Tree) Insert(value int) {
	newNode := &Node{Value: value}

	if t.Root == nil {
		t.Root = newNode
		return
	}

	WalkLevelOrder(t.Root, func(n *Node) bool {
		if n.Left == nil {
			n.Left = newNode
			return false
		}
		if n.Right == nil {
			n.Right = newNode
			return false
		}
		return true
	})
}

// Deepest returns the last node in level order, or nil for an empty tree.
func (t *Tree) Deepest() *Node {
	var last *Node
	WalkLevelOrder(t.Root, func(n *Node) bool {
		last = n
		return true
	})
	return last
}

// Delete removes value from the tree. When several nodes hold value, the
// last one in level order is the one replaced.
func (t *Tree) Delete(value int) error {
	var target, deepest *Node

	WalkLevelOrder(t.Root, func(n *Node) bool {
		if n.Value == value {
			target = n
		}
		deepest = n
		return true
	})

	if target == nil {
		return ErrNotFound
	}

	target.Value = deepest.Value

	if deepest == t.Root {
		t.Root = nil
		return nil
	}

	WalkLevelOrder(t.Root, func(n *Node) bool {
		if n.Left == deepest {
			n.Left = nil
			return false
		}
		if n.Right == deepest {
			n.Right = nil
			return false
		}
		return true
	})

	return nil
}

func (t *Tree) LevelOrder() []int {
	return LevelOrder(t.Root)
}

func (t *Tree) Inorder() []int {
	return Inorder(t.Root)
}

func (t *Tree) Preorder() []int {
	return Preorder(t.Root)
}

func (t *Tree) Postorder() []int {
	return Postorder(t.Root)
}

func (t *Tree) Count() int {
	return Count(t.Root)
}

func (t *Tree) IsEmpty() bool {
	return t.Root == nil
}
