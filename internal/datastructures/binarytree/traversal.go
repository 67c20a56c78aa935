package binarytree

func LevelOrder(root *Node) []int {
	values := []int{}
	WalkLevelOrder(root, func(n *Node) bool {
		values = append(values, n.Value)
		return true
	})
	return values
}

// Inorder visits left, root, right.
func Inorder(root *Node) []int {
	return inorder(root, []int{})
}

func inorder(n *Node, values []int) []int {
	if n == nil {
		return values
	}
	values = inorder(n.Left, values)
	values = append(values, n.Value)
	return inorder(n.Right, values)
}

// Preorder visits root, left, right.
func Preorder(root *Node) []int {
	return preorder(root, []int{})
}

func preorder(n *Node, values []int) []int {
	if n == nil {
		return values
	}
	values = append(values, n.Value)
	values = preorder(n.Left, values)
	return preorder(n.Right, values)
}

// Postorder visits left, right, root.
func Postorder(root *Node) []int {
	return postorder(root, []int{})
}

func postorder(n *Node, values []int) []int {
	if n == nil {
		return values
	}
	values = postorder(n.Left, values)
	values = postorder(n.Right, values)
	return append(values, n.Value)
}

func Count(root *Node) int {
	if root == nil {
		return 0
	}
	return 1 + Count(root.Left) + Count(root.Right)
}
