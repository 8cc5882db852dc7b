package flexcell

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// appFrame builds the usual header/body/footer column.
func appFrame() (root, header, body, footer *BasicNode) {
	header = Box("header").Edit(func(c *Constraints) {
		c.Height = Fixed(3)
	})
	body = Box("body").Edit(func(c *Constraints) {
		c.FlexGrow = 1
	})
	footer = Box("footer").Edit(func(c *Constraints) {
		c.Height = Fixed(1)
	})
	root = Box("root", header, body, footer).Edit(func(c *Constraints) {
		c.Direction = Column
	})
	return root, header, body, footer
}

func TestLayout_AppFrame(t *testing.T) {
	root, header, body, footer := appFrame()

	result, err := NewEngine().Layout(root, 80, 24)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	if got := result.Rects[root]; got != NewRect(0, 0, 80, 24) {
		t.Errorf("root = %+v, want the full viewport", got)
	}
	if got := result.Rects[header]; got.Y != 0 || got.Height != 3 {
		t.Errorf("header = %+v, want y=0 h=3", got)
	}
	if got := result.Rects[body]; got.Y != 3 || got.Height != 20 {
		t.Errorf("body = %+v, want y=3 h=20", got)
	}
	if got := result.Rects[footer]; got.Y != 23 || got.Height != 1 {
		t.Errorf("footer = %+v, want y=23 h=1", got)
	}
}

func TestLayout_UsesDisplayWidths(t *testing.T) {
	label := Text("label", "你好")
	root := Box("root", label).Edit(func(c *Constraints) {
		c.Width = Fixed(40)
		c.Height = Fixed(5)
		c.Align = AlignStart
	})

	result, err := NewEngine().Layout(root, 40, 5)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if got := result.Rects[label]; got.Width != 4 || got.Height != 1 {
		t.Errorf("label = %+v, want 4x1 (CJK display width)", got)
	}
}

func TestLayout_SidebarDrivenByExpression(t *testing.T) {
	sidebar := Box("sidebar").Edit(func(c *Constraints) {
		c.Width = MustExpr("clamp(20, parent.w * 0.3, 60)")
	})
	main := Box("main").Edit(func(c *Constraints) {
		c.FlexGrow = 1
	})
	root := Box("root", sidebar, main)

	result, err := NewEngine().Layout(root, 100, 24)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if got := result.Rects[sidebar].Width; got != 30 {
		t.Errorf("sidebar width = %d, want 30", got)
	}
	if got := result.Rects[main].Width; got != 70 {
		t.Errorf("main width = %d, want 70", got)
	}
}

func TestLayout_DeterministicAcrossEquivalentTrees(t *testing.T) {
	build := func() (*BasicNode, []*BasicNode) {
		kids := []*BasicNode{
			Text("a", "one"),
			Box("b").Edit(func(c *Constraints) { c.FlexGrow = 1 }),
			Button("c", "Go"),
		}
		root := Box("root", kids[0], kids[1], kids[2]).Edit(func(c *Constraints) {
			c.Gap = 1
		})
		return root, kids
	}

	rectsByID := func(root *BasicNode, kids []*BasicNode) map[string]Rect {
		result, err := NewEngine().Layout(root, 60, 10)
		if err != nil {
			t.Fatalf("Layout: %v", err)
		}
		out := map[string]Rect{"root": result.Rects[root]}
		for _, kid := range kids {
			out[kid.ID()] = result.Rects[kid]
		}
		return out
	}

	first := rectsByID(build())
	second := rectsByID(build())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("equivalent trees disagree (-first +second):\n%s", diff)
	}
}

func TestExpr_SurfacesSyntaxErrors(t *testing.T) {
	_, err := Expr("clamp(1, 2")
	if err == nil {
		t.Fatal("Expr accepted malformed source")
	}
	if !strings.Contains(err.Error(), "syntax error") {
		t.Errorf("error %q does not mention the syntax fault", err)
	}
}

func TestMustExpr_PanicsOnBadSource(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustExpr did not panic")
		}
	}()
	MustExpr("1 +")
}

func TestExpr_InternsBySource(t *testing.T) {
	a, err := Expr("parent.w * 0.5")
	if err != nil {
		t.Fatalf("Expr: %v", err)
	}
	b, err := Expr("parent.w * 0.5")
	if err != nil {
		t.Fatalf("Expr: %v", err)
	}
	if a.Expr != b.Expr {
		t.Error("identical source produced distinct trees")
	}
}

func TestExprHelpers_Sources(t *testing.T) {
	cases := map[string]struct {
		value Value
		want  string
	}{
		"percent of parent": {PercentOfParent("w", 25), "parent.w * 0.25"},
		"viewport at least": {ViewportAtLeast("h", 10), "max(viewport.h, 10)"},
		"clamped intrinsic": {ClampedIntrinsic("w", 20, 60), "clamp(20, intrinsic.w, 60)"},
		"max of siblings":   {MaxOfSiblings("col", "min_w"), "max_sibling(#col.min_w)"},
		"sum of siblings":   {SumOfSiblings("row", "h"), "sum_sibling(#row.h)"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := tc.value.Source(); got != tc.want {
				t.Errorf("source = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPercentOfParent_MatchesPlainPercent(t *testing.T) {
	viaExpr := Box("a").Edit(func(c *Constraints) {
		c.Width = PercentOfParent("w", 25)
	})
	viaPercent := Box("b").Edit(func(c *Constraints) {
		c.Width = Percent(25)
	})
	root := Box("root", viaExpr, viaPercent).Edit(func(c *Constraints) {
		c.Width = Fixed(80)
		c.Height = Fixed(10)
	})

	result, err := NewEngine().Layout(root, 80, 10)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if a, b := result.Rects[viaExpr].Width, result.Rects[viaPercent].Width; a != b || a != 20 {
		t.Errorf("widths = %d and %d, want both 20", a, b)
	}
}

func TestBasicNode_Chaining(t *testing.T) {
	node := Text("title", "draft").
		SetContent("final").
		Edit(func(c *Constraints) { c.Height = Fixed(1) })

	if node.Content() != "final" {
		t.Errorf("content = %q, want %q", node.Content(), "final")
	}
	if node.Constraints().Height != Fixed(1) {
		t.Error("Edit did not apply the height")
	}

	parent := Box("parent").Append(node, Spacer(""))
	if len(parent.Children()) != 2 {
		t.Errorf("children = %d, want 2", len(parent.Children()))
	}
}
