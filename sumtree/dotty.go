package sumtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/alga/ops"
)

type nodeids[T any] struct {
	idTable map[treeNode[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[treeNode[T]]int),
		max:     1,
	}
}

func (ids *nodeids[T]) alloc(node treeNode[T]) int {
	if id := ids.idTable[node]; id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Inner nodes are labeled with their summary and
// item count, leaves with their summary and items.
func Tree2Dot[T any, O ops.Op](t *Tree[T, O], w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	if t.root != nil {
		ids := newtable[T]()
		var nodelist, edgelist strings.Builder
		var walk func(n treeNode[T]) int
		walk = func(n treeNode[T]) int {
			id := ids.alloc(n)
			if leaf, ok := n.(*leafNode[T]); ok {
				label := fmt.Sprintf("%v\\n%v", leaf.summary, leaf.items)
				fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", id, escapeLabel(label), nodeDotStyles(true))
				return id
			}
			inner := n.(*innerNode[T])
			label := fmt.Sprintf("%v\\n#%d", inner.summary, inner.count)
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", id, escapeLabel(label), nodeDotStyles(false))
			for _, child := range inner.children {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", id, walk(child))
			}
			return id
		}
		walk(t.root)
		b.WriteString(nodelist.String())
		b.WriteString(edgelist.String())
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeLabel(s string) string {
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
