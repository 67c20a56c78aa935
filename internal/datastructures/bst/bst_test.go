package bst

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func buildTree(t *testing.T, values ...int) *Tree {
	t.Helper()
	tree := New()
	for _, v := range values {
		if err := tree.Insert(v); err != nil {
			t.Fatalf("Insert(%d) unexpected error: %v", v, err)
		}
	}
	return tree
}

var sample = []int{50, 30, 70, 20, 40, 60, 80}

func TestInsert_Traversals(t *testing.T) {
	tree := buildTree(t, sample...)

	tests := []struct {
		name string
		got  []int
		want []int
	}{
		{name: "inorder", got: tree.Inorder(), want: []int{20, 30, 40, 50, 60, 70, 80}},
		{name: "preorder", got: tree.Preorder(), want: []int{50, 30, 20, 40, 70, 60, 80}},
		{name: "postorder", got: tree.Postorder(), want: []int{20, 40, 30, 60, 80, 70, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if tree.Count() != len(sample) {
		t.Errorf("Count() = %d; want %d", tree.Count(), len(sample))
	}
}

func TestInsert_Duplicate(t *testing.T) {
	tree := buildTree(t, sample...)

	if err := tree.Insert(40); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Insert(40) error = %v; want ErrDuplicate", err)
	}
	if tree.Count() != len(sample) {
		t.Errorf("Count() = %d; want %d", tree.Count(), len(sample))
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name         string
		value        int
		wantInorder  []int
		wantPreorder []int
		wantErr      error
	}{
		{
			name:         "leaf",
			value:        20,
			wantInorder:  []int{30, 40, 50, 60, 70, 80},
			wantPreorder: []int{50, 30, 40, 70, 60, 80},
		},
		{
			name:         "two children uses in-order successor",
			value:        50,
			wantInorder:  []int{20, 30, 40, 60, 70, 80},
			wantPreorder: []int{60, 30, 20, 40, 70, 80},
		},
		{
			name:         "inner two children",
			value:        30,
			wantInorder:  []int{20, 40, 50, 60, 70, 80},
			wantPreorder: []int{50, 40, 20, 70, 60, 80},
		},
		{
			name:         "missing",
			value:        65,
			wantInorder:  []int{20, 30, 40, 50, 60, 70, 80},
			wantPreorder: []int{50, 30, 20, 40, 70, 60, 80},
			wantErr:      ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := buildTree(t, sample...)

			if err := tree.Delete(tt.value); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Delete(%d) error = %v; want %v", tt.value, err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.wantInorder, tree.Inorder()); diff != "" {
				t.Errorf("Inorder() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantPreorder, tree.Preorder()); diff != "" {
				t.Errorf("Preorder() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDelete_OneChild(t *testing.T) {
	leftOnly := buildTree(t, 10, 5, 3)
	if err := leftOnly.Delete(5); err != nil {
		t.Fatalf("Delete(5) unexpected error: %v", err)
	}
	if diff := cmp.Diff([]int{10, 3}, leftOnly.Preorder()); diff != "" {
		t.Errorf("left child: Preorder() mismatch (-want +got):\n%s", diff)
	}

	rightOnly := buildTree(t, 10, 15, 20)
	if err := rightOnly.Delete(15); err != nil {
		t.Fatalf("Delete(15) unexpected error: %v", err)
	}
	if diff := cmp.Diff([]int{10, 20}, rightOnly.Preorder()); diff != "" {
		t.Errorf("right child: Preorder() mismatch (-want +got):\n%s", diff)
	}
}

func TestDelete_Root(t *testing.T) {
	tree := buildTree(t, 1)
	if err := tree.Delete(1); err != nil {
		t.Fatalf("Delete(1) unexpected error: %v", err)
	}
	if tree.Root != nil {
		t.Errorf("expected empty tree")
	}
	if err := tree.Delete(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete on empty tree error = %v; want ErrNotFound", err)
	}
}

func TestSearch(t *testing.T) {
	tree := buildTree(t, sample...)

	for _, v := range sample {
		n := tree.Search(v)
		if n == nil || n.Value != v {
			t.Errorf("Search(%d) = %v; want node %d", v, n, v)
		}
	}
	for _, v := range []int{0, 35, 90} {
		if tree.Contains(v) {
			t.Errorf("Contains(%d) = true; want false", v)
		}
	}
}

func TestMinMax(t *testing.T) {
	empty := New()
	if _, err := empty.Min(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Min() on empty tree error = %v; want ErrEmpty", err)
	}
	if _, err := empty.Max(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Max() on empty tree error = %v; want ErrEmpty", err)
	}

	tree := buildTree(t, sample...)
	if got, _ := tree.Min(); got != 20 {
		t.Errorf("Min() = %d; want 20", got)
	}
	if got, _ := tree.Max(); got != 80 {
		t.Errorf("Max() = %d; want 80", got)
	}
}

func TestInorderStaysSorted(t *testing.T) {
	tree := New()
	for _, v := range []int{41, 7, 93, 12, 58, 3, 77, 29, 64, 18} {
		_ = tree.Insert(v)
	}
	for _, v := range []int{41, 3, 77, 100} {
		_ = tree.Delete(v)
	}

	got := tree.Inorder()
	if !slices.IsSorted(got) {
		t.Errorf("Inorder() = %v; want strictly increasing", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i] == got[i-1] {
			t.Errorf("Inorder() contains duplicate %d", got[i])
		}
	}
	if tree.Count() != 7 {
		t.Errorf("Count() = %d; want 7", tree.Count())
	}
}
