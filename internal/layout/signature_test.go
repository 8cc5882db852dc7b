package layout

import "testing"

func sigTree() *testNode {
	parent := rowContainer(80, 24)
	parent.AddChild(fixedBox("a", 20, 24), newTestText("label", "hello"))
	return parent
}

func TestSignature_StableForIdenticalTrees(t *testing.T) {
	a, aOK := treeSignature(sigTree(), 80, 24)
	b, bOK := treeSignature(sigTree(), 80, 24)
	if !aOK || !bOK {
		t.Fatal("signature unsupported for a plain tree")
	}
	if a != b {
		t.Errorf("signatures differ for identical trees: %#x vs %#x", a, b)
	}
}

func TestSignature_ChangesWithTree(t *testing.T) {
	base, _ := treeSignature(sigTree(), 80, 24)

	cases := map[string]func() (uint64, bool){
		"different viewport": func() (uint64, bool) {
			return treeSignature(sigTree(), 81, 24)
		},
		"different content": func() (uint64, bool) {
			tree := sigTree()
			tree.children[1].(*testNode).content = "world"
			return treeSignature(tree, 80, 24)
		},
		"different width": func() (uint64, bool) {
			tree := sigTree()
			tree.children[0].(*testNode).props.Width = Fixed(21)
			return treeSignature(tree, 80, 24)
		},
		"extra child": func() (uint64, bool) {
			tree := sigTree()
			tree.AddChild(fixedBox("extra", 1, 1))
			return treeSignature(tree, 80, 24)
		},
	}
	for name, build := range cases {
		t.Run(name, func(t *testing.T) {
			sig, ok := build()
			if !ok {
				t.Fatal("signature unsupported")
			}
			if sig == base {
				t.Error("signature unchanged")
			}
		})
	}
}

func TestSignature_UnsupportedKindRefuses(t *testing.T) {
	tree := sigTree()
	tree.children[0].(*testNode).kind = Kind(99)
	if _, ok := treeSignature(tree, 80, 24); ok {
		t.Error("signature produced for an unknown node kind")
	}
}

func TestEngine_SkipsIdenticalPass(t *testing.T) {
	eng := NewEngine()
	tree := sigTree()

	first, err := eng.Layout(tree, 80, 24)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	second, err := eng.Layout(tree, 80, 24)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	if first != second {
		t.Error("skipped pass did not return the previous result")
	}
	stats := eng.Stats()
	if stats.FullPasses != 1 || stats.SkippedPasses != 1 {
		t.Errorf("passes = %d full / %d skipped, want 1/1", stats.FullPasses, stats.SkippedPasses)
	}
}

func TestEngine_ContentChangeForcesFullPass(t *testing.T) {
	eng := NewEngine()
	tree := sigTree()

	if _, err := eng.Layout(tree, 80, 24); err != nil {
		t.Fatalf("Layout: %v", err)
	}
	tree.children[1].(*testNode).content = "a much longer label"
	if _, err := eng.Layout(tree, 80, 24); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	if got := eng.Stats().FullPasses; got != 2 {
		t.Errorf("FullPasses = %d, want 2", got)
	}
}

func TestEngine_ViewportChangeForcesFullPass(t *testing.T) {
	eng := NewEngine()
	tree := sigTree()

	if _, err := eng.Layout(tree, 80, 24); err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if _, err := eng.Layout(tree, 120, 40); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	stats := eng.Stats()
	if stats.FullPasses != 2 || stats.SkippedPasses != 0 {
		t.Errorf("passes = %d full / %d skipped, want 2/0", stats.FullPasses, stats.SkippedPasses)
	}
}

func TestEngine_UnsupportedKindNeverSkips(t *testing.T) {
	eng := NewEngine()
	tree := sigTree()
	tree.children[0].(*testNode).kind = Kind(99)

	for i := 0; i < 2; i++ {
		if _, err := eng.Layout(tree, 80, 24); err != nil {
			t.Fatalf("Layout: %v", err)
		}
	}
	stats := eng.Stats()
	if stats.FullPasses != 2 || stats.SkippedPasses != 0 {
		t.Errorf("passes = %d full / %d skipped, want 2/0", stats.FullPasses, stats.SkippedPasses)
	}
}

func TestEngine_InvalidateForcesFullPass(t *testing.T) {
	eng := NewEngine()
	tree := sigTree()

	if _, err := eng.Layout(tree, 80, 24); err != nil {
		t.Fatalf("Layout: %v", err)
	}
	eng.Invalidate()
	if _, err := eng.Layout(tree, 80, 24); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	if got := eng.Stats().FullPasses; got != 2 {
		t.Errorf("FullPasses = %d, want 2", got)
	}
}
