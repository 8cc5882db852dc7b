package layout

import "testing"

func wrapRow(w, h int) *testNode {
	parent := rowContainer(w, h)
	parent.props.Wrap = true
	parent.props.Align = AlignStart
	return parent
}

func TestWrap_BreaksIntoLines(t *testing.T) {
	parent := wrapRow(30, 20)
	a := fixedBox("a", 12, 3)
	b := fixedBox("b", 12, 3)
	c := fixedBox("c", 12, 3)
	parent.AddChild(a, b, c)

	result := layoutTree(t, parent, 30, 20)

	if got := result.Rects[a]; got.X != 0 || got.Y != 0 {
		t.Errorf("a = (%d,%d), want (0,0)", got.X, got.Y)
	}
	if got := result.Rects[b]; got.X != 12 || got.Y != 0 {
		t.Errorf("b = (%d,%d), want (12,0)", got.X, got.Y)
	}
	if got := result.Rects[c]; got.X != 0 || got.Y != 3 {
		t.Errorf("c = (%d,%d), want (0,3)", got.X, got.Y)
	}
}

func TestWrap_GapAppliesWithinAndBetweenLines(t *testing.T) {
	parent := wrapRow(30, 20)
	parent.props.Gap = 2
	a := fixedBox("a", 12, 3)
	b := fixedBox("b", 12, 3)
	c := fixedBox("c", 12, 3)
	parent.AddChild(a, b, c)

	result := layoutTree(t, parent, 30, 20)

	if got := result.Rects[b]; got.X != 14 || got.Y != 0 {
		t.Errorf("b = (%d,%d), want (14,0)", got.X, got.Y)
	}
	if got := result.Rects[c]; got.X != 0 || got.Y != 5 {
		t.Errorf("c = (%d,%d), want (0,5)", got.X, got.Y)
	}
}

func TestWrap_OversizedItemKeepsItsOwnLine(t *testing.T) {
	parent := wrapRow(30, 20)
	wide := fixedBox("wide", 40, 3)
	next := fixedBox("next", 10, 3)
	parent.AddChild(wide, next)

	result := layoutTree(t, parent, 30, 20)

	if got := result.Rects[wide]; got.X != 0 || got.Width != 40 {
		t.Errorf("wide = x=%d w=%d, want x=0 w=40", got.X, got.Width)
	}
	if got := result.Rects[next]; got.X != 0 || got.Y != 3 {
		t.Errorf("next = (%d,%d), want (0,3)", got.X, got.Y)
	}
}

func TestWrap_JustifyAppliesPerLine(t *testing.T) {
	parent := wrapRow(30, 20)
	parent.props.Justify = JustifyCenter
	a := fixedBox("a", 12, 3)
	b := fixedBox("b", 12, 3)
	c := fixedBox("c", 12, 3)
	parent.AddChild(a, b, c)

	result := layoutTree(t, parent, 30, 20)

	// First line has 6 free cells, second has 18; each centers on its own.
	if got := result.Rects[a].X; got != 3 {
		t.Errorf("a.X = %d, want 3", got)
	}
	if got := result.Rects[b].X; got != 15 {
		t.Errorf("b.X = %d, want 15", got)
	}
	if got := result.Rects[c].X; got != 9 {
		t.Errorf("c.X = %d, want 9", got)
	}
}

func TestWrap_ColumnDirectionWrapsIntoColumns(t *testing.T) {
	parent := newTestNode(DefaultConstraints())
	parent.props.Width = Fixed(20)
	parent.props.Height = Fixed(10)
	parent.props.Direction = Column
	parent.props.Wrap = true
	parent.props.Align = AlignStart

	a := fixedBox("a", 5, 6)
	b := fixedBox("b", 5, 6)
	parent.AddChild(a, b)

	result := layoutTree(t, parent, 20, 10)

	if got := result.Rects[a]; got.X != 0 || got.Y != 0 {
		t.Errorf("a = (%d,%d), want (0,0)", got.X, got.Y)
	}
	if got := result.Rects[b]; got.X != 5 || got.Y != 0 {
		t.Errorf("b = (%d,%d), want (5,0)", got.X, got.Y)
	}
}

// wrappingMeasure folds content onto multiple lines within the width bound,
// unlike the engine default which never wraps.
func wrappingMeasure(node Node, maxWidth int) Size {
	n := len(node.Content())
	if n == 0 {
		return Size{}
	}
	if maxWidth <= 0 {
		return Size{Height: n}
	}
	width := n
	if width > maxWidth {
		width = maxWidth
	}
	return Size{Width: width, Height: (n + maxWidth - 1) / maxWidth}
}

func TestWrap_GrowTriggersOneFeedbackMeasure(t *testing.T) {
	parent := wrapRow(20, 10)
	item := newTestText("item", "short text")
	item.props.FlexGrow = 1
	parent.AddChild(item)

	eng := NewEngine(WithMeasurer(wrappingMeasure))
	result, err := eng.Layout(parent, 20, 10)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	if got := result.Rects[item].Width; got != 20 {
		t.Errorf("item width = %d, want 20 (grown to the line)", got)
	}
	if got := eng.Stats().WrapFeedbackPasses; got != 1 {
		t.Errorf("WrapFeedbackPasses = %d, want 1", got)
	}
}

func TestWrap_NoGrowNoFeedback(t *testing.T) {
	parent := wrapRow(30, 20)
	parent.AddChild(fixedBox("a", 12, 3), fixedBox("b", 12, 3))

	eng := NewEngine()
	if _, err := eng.Layout(parent, 30, 20); err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if got := eng.Stats().WrapFeedbackPasses; got != 0 {
		t.Errorf("WrapFeedbackPasses = %d, want 0", got)
	}
}
