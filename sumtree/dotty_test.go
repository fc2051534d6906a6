package sumtree

import (
	"strings"
	"testing"
)

func TestTree2Dot(t *testing.T) {
	items := make([]int64, 10)
	for i := range items {
		items[i] = int64(i + 1)
	}
	cfg := additiveConfig()
	cfg.Degree = MinDegree
	tree, err := FromSlice(cfg, items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var b strings.Builder
	if err := Tree2Dot(tree, &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dot := b.String()
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("expected a digraph, got\n%s", dot)
	}
	if !strings.Contains(dot, `label="55\n#10"`) {
		t.Fatalf("expected root labeled with total summary, got\n%s", dot)
	}
	if strings.Count(dot, "shape=box") != 3 {
		t.Fatalf("expected 3 leaves, got\n%s", dot)
	}
}

func TestTree2DotEmpty(t *testing.T) {
	tree, _ := New(additiveConfig())
	var b strings.Builder
	if err := Tree2Dot(tree, &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(b.String(), "->") {
		t.Fatalf("expected no edges for empty tree, got\n%s", b.String())
	}
}
