package bvec

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// NodeInfo describes one node of a vector's tree, as reported by Walk.
type NodeInfo[T any] struct {
	ID       int  // pre-order number, the root is 1
	Parent   int  // ID of the parent node, 0 for the root
	Depth    int  // 0 for the root
	Leaf     bool
	Offset   int  // index of the first element of the subtree
	Size     int  // number of elements of the subtree
	Children int  // number of children of an internal node
	Items    []T  // copy of a leaf's elements
}

// Walk calls fn for every node of the tree in pre-order, until fn returns
// false. It fails with ErrBorrowed if a cursor is open.
func (t *Vec[T]) Walk(fn func(NodeInfo[T]) bool) error {
	if err := t.checkRead(); err != nil {
		return err
	}
	if t.root == nil || fn == nil {
		return nil
	}
	defer t.beginRead()()
	id := 0
	var walk func(n treeNode[T], height, depth, parent, offset int) bool
	walk = func(n treeNode[T], height, depth, parent, offset int) bool {
		id++
		info := NodeInfo[T]{
			ID:     id,
			Parent: parent,
			Depth:  depth,
			Leaf:   height == 1,
			Offset: offset,
			Size:   n.size(),
		}
		if info.Leaf {
			info.Items = slices.Clone(n.(*leafNode[T]).items)
			return fn(info)
		}
		inner := n.(*innerNode[T])
		info.Children = len(inner.children)
		if !fn(info) {
			return false
		}
		self := id
		for i, child := range inner.children {
			if !walk(child, height-1, depth+1, self, offset) {
				return false
			}
			offset += inner.sizes[i]
		}
		return true
	}
	walk(t.root, t.height, 0, 0, 0)
	return nil
}

// Vec2Dot outputs the internal structure of a vector in Graphviz DOT format
// (for debugging purposes).
func Vec2Dot[T any](v *Vec[T], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	err := v.Walk(func(node NodeInfo[T]) bool {
		styles := nodeDotStyles(node.Leaf)
		if node.Leaf {
			label := fmt.Sprintf("%d @%d\\n%s", node.Size, node.Offset, itemsLabel(node.Items))
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", node.ID, label, styles)
		} else {
			fmt.Fprintf(&nodelist, "\"%d\" [label=%d %s];\n", node.ID, node.Size, styles)
		}
		if node.Parent > 0 {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", node.Parent, node.ID)
		}
		return true
	})
	if err != nil {
		tracer().Errorf("vector DOT: %s", err.Error())
		return err
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	_, err = io.WriteString(w, "}\n")
	return err
}

// itemsLabel shows the first and last elements of a leaf.
func itemsLabel[T any](items []T) string {
	var s string
	if len(items) <= 3 {
		s = fmt.Sprint(items)
	} else {
		s = fmt.Sprintf("[%v … %v]", items[0], items[len(items)-1])
	}
	return strings.ReplaceAll(s, `"`, `\"`)
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}

// String formats the elements like a slice: "[e0 e1 ...]". It panics if a
// cursor is open.
func (t *Vec[T]) String() string {
	return fmt.Sprint(slices.Collect(t.Values()))
}
