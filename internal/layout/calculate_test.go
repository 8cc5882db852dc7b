package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func rowContainer(w, h int) *testNode {
	c := DefaultConstraints()
	c.Width = Fixed(w)
	c.Height = Fixed(h)
	c.Direction = Row
	return newTestNode(c)
}

func layoutTree(t *testing.T, root Node, vw, vh int) *Result {
	t.Helper()
	result, err := NewEngine().Layout(root, vw, vh)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	return result
}

func TestLayout_RowFixedPlusFlex(t *testing.T) {
	parent := rowContainer(100, 10)
	parent.props.Gap = 1

	a := fixedBox("a", 20, 10)
	b := fixedBox("b", 20, 10)
	flex := newTestNode(DefaultConstraints())
	flex.props.Height = Fixed(10)
	flex.props.FlexGrow = 1
	parent.AddChild(a, b, flex)

	result := layoutTree(t, parent, 100, 10)

	if got := result.Rects[a]; got.X != 0 || got.Width != 20 {
		t.Errorf("a = x=%d w=%d, want x=0 w=20", got.X, got.Width)
	}
	if got := result.Rects[b]; got.X != 21 || got.Width != 20 {
		t.Errorf("b = x=%d w=%d, want x=21 w=20", got.X, got.Width)
	}
	if got := result.Rects[flex]; got.X != 42 || got.Width != 58 {
		t.Errorf("flex = x=%d w=%d, want x=42 w=58", got.X, got.Width)
	}
}

func TestLayout_ThreeEqualFlexChildren(t *testing.T) {
	parent := rowContainer(100, 10)
	var kids []*testNode
	for i := 0; i < 3; i++ {
		child := newTestNode(DefaultConstraints())
		child.props.FlexGrow = 1
		kids = append(kids, child)
		parent.AddChild(child)
	}

	result := layoutTree(t, parent, 100, 10)

	want := []int{34, 33, 33}
	for i, child := range kids {
		if got := result.Rects[child].Width; got != want[i] {
			t.Errorf("child %d width = %d, want %d", i, got, want[i])
		}
	}
	if got := result.Rects[kids[2]]; got.X+got.Width != 100 {
		t.Errorf("last child ends at %d, want 100", got.X+got.Width)
	}
}

func TestLayout_ColumnStacksVertically(t *testing.T) {
	c := DefaultConstraints()
	c.Width = Fixed(20)
	c.Height = Fixed(30)
	c.Direction = Column
	c.Gap = 2
	parent := newTestNode(c)

	a := fixedBox("a", 20, 5)
	b := fixedBox("b", 20, 5)
	parent.AddChild(a, b)

	result := layoutTree(t, parent, 40, 40)

	if got := result.Rects[a]; got.Y != 0 || got.Height != 5 {
		t.Errorf("a = y=%d h=%d, want y=0 h=5", got.Y, got.Height)
	}
	if got := result.Rects[b]; got.Y != 7 {
		t.Errorf("b.Y = %d, want 7", got.Y)
	}
}

func TestLayout_PaddingAndBorderShrinkContent(t *testing.T) {
	c := DefaultConstraints()
	c.Width = Fixed(20)
	c.Height = Fixed(10)
	c.Padding = Sides(2)
	c.Border = true
	parent := newTestNode(c)

	child := newTestNode(DefaultConstraints())
	child.props.FlexGrow = 1
	parent.AddChild(child)

	result := layoutTree(t, parent, 40, 40)

	got := result.Rects[child]
	want := NewRect(3, 3, 14, 4)
	if got != want {
		t.Errorf("child rect = %+v, want %+v", got, want)
	}
}

func TestLayout_NegativeMarginShiftsOrigin(t *testing.T) {
	parent := rowContainer(40, 10)
	child := fixedBox("c", 10, 5)
	child.props.Margin = Sides(-2)
	parent.AddChild(child)

	result := layoutTree(t, parent, 40, 10)

	got := result.Rects[child]
	if got.X != -2 || got.Y != -2 {
		t.Errorf("child origin = (%d, %d), want (-2, -2)", got.X, got.Y)
	}
}

func TestLayout_JustifyModes(t *testing.T) {
	type tc struct {
		justify Justify
		wantX   []int
	}
	tests := map[string]tc{
		"start":         {JustifyStart, []int{0, 10}},
		"end":           {JustifyEnd, []int{20, 30}},
		"center":        {JustifyCenter, []int{10, 20}},
		"space-between": {JustifySpaceBetween, []int{0, 30}},
		"space-evenly":  {JustifySpaceEvenly, []int{6, 22}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := rowContainer(40, 10)
			parent.props.Justify = tt.justify
			a := fixedBox("a", 10, 10)
			b := fixedBox("b", 10, 10)
			parent.AddChild(a, b)

			result := layoutTree(t, parent, 40, 10)

			if got := result.Rects[a].X; got != tt.wantX[0] {
				t.Errorf("a.X = %d, want %d", got, tt.wantX[0])
			}
			if got := result.Rects[b].X; got != tt.wantX[1] {
				t.Errorf("b.X = %d, want %d", got, tt.wantX[1])
			}
		})
	}
}

func TestLayout_AlignCrossAxis(t *testing.T) {
	type tc struct {
		align Align
		wantY int
		wantH int
	}
	tests := map[string]tc{
		"start":   {AlignStart, 0, 4},
		"end":     {AlignEnd, 16, 4},
		"center":  {AlignCenter, 8, 4},
		"stretch": {AlignStretch, 0, 4}, // explicit height wins over stretch
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := rowContainer(40, 20)
			parent.props.Align = tt.align
			child := fixedBox("c", 10, 4)
			parent.AddChild(child)

			result := layoutTree(t, parent, 40, 20)

			got := result.Rects[child]
			if got.Y != tt.wantY || got.Height != tt.wantH {
				t.Errorf("child = y=%d h=%d, want y=%d h=%d", got.Y, got.Height, tt.wantY, tt.wantH)
			}
		})
	}
}

func TestLayout_StretchFillsCross(t *testing.T) {
	parent := rowContainer(40, 20)
	child := newTestNode(DefaultConstraints())
	child.props.Width = Fixed(10)
	parent.AddChild(child)

	result := layoutTree(t, parent, 40, 20)

	if got := result.Rects[child].Height; got != 20 {
		t.Errorf("stretched height = %d, want 20", got)
	}
}

func TestLayout_PercentOfParent(t *testing.T) {
	parent := rowContainer(80, 10)
	child := newTestNode(DefaultConstraints())
	child.props.Width = Percent(25)
	child.props.Height = Fixed(10)
	parent.AddChild(child)

	result := layoutTree(t, parent, 80, 10)

	if got := result.Rects[child].Width; got != 20 {
		t.Errorf("percent width = %d, want 20", got)
	}
}

func TestLayout_MinWinsOverMax(t *testing.T) {
	parent := rowContainer(100, 10)
	child := fixedBox("c", 50, 10)
	child.props.MinWidth = Fixed(30)
	child.props.MaxWidth = Fixed(20)
	parent.AddChild(child)

	result := layoutTree(t, parent, 100, 10)

	if got := result.Rects[child].Width; got != 30 {
		t.Errorf("width = %d, want 30 (min wins)", got)
	}
}

func TestLayout_AspectRatioDerivesHeight(t *testing.T) {
	parent := rowContainer(100, 50)
	parent.props.Align = AlignStart
	child := newTestNode(DefaultConstraints())
	child.props.Width = Fixed(30)
	child.props.AspectRatio = 2.0 // width / height
	parent.AddChild(child)

	result := layoutTree(t, parent, 100, 50)

	if got := result.Rects[child].Height; got != 15 {
		t.Errorf("derived height = %d, want 15", got)
	}
}

func TestLayout_NoNegativeDimensions(t *testing.T) {
	c := DefaultConstraints()
	c.Width = Fixed(4)
	c.Height = Fixed(2)
	c.Padding = Sides(5) // more chrome than space
	parent := newTestNode(c)
	child := fixedBox("c", 10, 10)
	child.props.FlexShrink = 1
	parent.AddChild(child)

	result := layoutTree(t, parent, 4, 2)

	for node, rect := range result.Rects {
		if rect.Width < 0 || rect.Height < 0 {
			t.Errorf("node %v has negative dimensions: %+v", node, rect)
		}
	}
}

func TestLayout_Deterministic(t *testing.T) {
	build := func() (Node, map[string]*testNode) {
		parent := rowContainer(100, 24)
		parent.props.Gap = 1
		named := map[string]*testNode{}
		for _, id := range []string{"a", "b", "c"} {
			child := newTestNode(DefaultConstraints())
			child.id = id
			child.props.FlexGrow = 1
			named[id] = child
			parent.AddChild(child)
		}
		return parent, named
	}

	root1, named1 := build()
	root2, named2 := build()
	r1 := layoutTree(t, root1, 100, 24)
	r2 := layoutTree(t, root2, 100, 24)

	for id := range named1 {
		if diff := cmp.Diff(r1.Rects[named1[id]], r2.Rects[named2[id]]); diff != "" {
			t.Errorf("node %q rect mismatch (-first +second):\n%s", id, diff)
		}
	}
}

func TestLayout_AbsoluteChild(t *testing.T) {
	parent := rowContainer(40, 20)
	inflow := fixedBox("a", 10, 10)
	abs := fixedBox("b", 5, 5)
	abs.props.Position = PositionAbsolute
	abs.props.Offsets = Inset{Top: Offset(2), Right: Offset(3)}
	parent.AddChild(abs, inflow)

	result := layoutTree(t, parent, 40, 20)

	// Absolute child does not consume in-flow space.
	if got := result.Rects[inflow].X; got != 0 {
		t.Errorf("inflow.X = %d, want 0", got)
	}
	got := result.Rects[abs]
	if got.X != 32 || got.Y != 2 {
		t.Errorf("absolute = (%d, %d), want (32, 2)", got.X, got.Y)
	}
}

func TestLayout_AbsoluteStretchBetweenOffsets(t *testing.T) {
	parent := rowContainer(40, 20)
	abs := newTestNode(DefaultConstraints())
	abs.props.Height = Fixed(5)
	abs.props.Position = PositionAbsolute
	abs.props.Offsets = Inset{Left: Offset(4), Right: Offset(6)}
	parent.AddChild(abs)

	result := layoutTree(t, parent, 40, 20)

	got := result.Rects[abs]
	if got.X != 4 || got.Width != 30 {
		t.Errorf("absolute = x=%d w=%d, want x=4 w=30", got.X, got.Width)
	}
}

func TestLayout_OverflowMetadata(t *testing.T) {
	c := DefaultConstraints()
	c.Width = Fixed(20)
	c.Height = Fixed(5)
	c.Direction = Column
	c.ScrollY = 100
	parent := newTestNode(c)
	for i := 0; i < 4; i++ {
		parent.AddChild(fixedBox("", 20, 3))
	}

	result := layoutTree(t, parent, 20, 5)

	ov, ok := result.Overflow[parent]
	if !ok {
		t.Fatal("expected overflow metadata")
	}
	if ov.ContentHeight != 12 || ov.ViewportHeight != 5 {
		t.Errorf("overflow = content %d viewport %d, want 12 and 5", ov.ContentHeight, ov.ViewportHeight)
	}
	if ov.ScrollY != 7 {
		t.Errorf("ScrollY = %d, want 7 (clamped to range)", ov.ScrollY)
	}
}

func TestLayout_HiddenChildExcluded(t *testing.T) {
	parent := rowContainer(40, 10)
	hidden := fixedBox("h", 10, 10)
	hidden.props.Display = Fixed(0)
	after := fixedBox("a", 10, 10)
	parent.AddChild(hidden, after)

	result := layoutTree(t, parent, 40, 10)

	if _, ok := result.Rects[hidden]; ok {
		t.Error("hidden child should have no rect")
	}
	if got := result.Rects[after].X; got != 0 {
		t.Errorf("after.X = %d, want 0 (hidden child consumes nothing)", got)
	}
}

func TestLayout_PercentNeverExceedsAvailable(t *testing.T) {
	parent := rowContainer(100, 10)
	child := newTestNode(DefaultConstraints())
	child.props.Width = Percent(150)
	child.props.Height = Fixed(5)
	child.props.FlexShrink = 0 // shrink must not be what reins this in
	parent.AddChild(child)

	result := layoutTree(t, parent, 100, 40)
	if got := result.Rects[child].Width; got != 100 {
		t.Errorf("width = %d, want 100 (capped at available space)", got)
	}
}

func TestLayout_AspectDerivedWidthCappedAtAvailable(t *testing.T) {
	parent := rowContainer(30, 10)
	child := newTestNode(DefaultConstraints())
	child.props.Height = Fixed(8)
	child.props.AspectRatio = 5.0 // derives width 40 in a 30-wide row
	child.props.FlexShrink = 0
	parent.AddChild(child)

	result := layoutTree(t, parent, 30, 40)
	if got := result.Rects[child].Width; got != 30 {
		t.Errorf("width = %d, want 30 (derived value capped at available space)", got)
	}
}

func TestLayout_OverflowMeasurementUsesCache(t *testing.T) {
	calls := 0
	eng := NewEngine(WithMeasurer(func(node Node, maxWidth int) Size {
		calls++
		return wrappingMeasure(node, maxWidth)
	}))
	parent := rowContainer(12, 2)
	long := newTestText("label", "a very long line of content")
	parent.AddChild(long)

	result, err := eng.Layout(parent, 12, 2)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if _, ok := result.Overflow[long]; !ok {
		t.Fatal("expected overflow metadata on the clipped text node")
	}

	stats := eng.Stats()
	if stats.MeasureCalls != calls {
		t.Errorf("MeasureCalls = %d, measurer ran %d times", stats.MeasureCalls, calls)
	}
	if stats.MeasureCalls > stats.CacheMisses {
		t.Errorf("measurer ran %d times for %d cache misses; a measurement bypassed the cache",
			stats.MeasureCalls, stats.CacheMisses)
	}
}
