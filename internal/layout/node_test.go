package layout

import (
	"github.com/flexcell/flexcell/internal/expr"
)

// testNode is the Node implementation used across the package tests.
type testNode struct {
	id       string
	kind     Kind
	content  string
	props    Constraints
	children []Node
}

func (n *testNode) ID() string               { return n.id }
func (n *testNode) Kind() Kind               { return n.kind }
func (n *testNode) Children() []Node         { return n.children }
func (n *testNode) Constraints() Constraints { return n.props }
func (n *testNode) Content() string          { return n.content }

func newTestNode(c Constraints) *testNode {
	return &testNode{kind: KindBox, props: c}
}

func newTestText(id, content string) *testNode {
	return &testNode{id: id, kind: KindText, content: content, props: DefaultConstraints()}
}

func (n *testNode) AddChild(children ...Node) *testNode {
	n.children = append(n.children, children...)
	return n
}

// mustExpr parses an expression source or panics; for test constraint
// literals only.
func mustExpr(source string) Value {
	parsed, err := expr.Parse(source)
	if err != nil {
		panic(err)
	}
	return FromExpr(parsed)
}

// fixedBox is a shorthand for a box with fixed width/height.
func fixedBox(id string, w, h int) *testNode {
	c := DefaultConstraints()
	c.Width = Fixed(w)
	c.Height = Fixed(h)
	return &testNode{id: id, kind: KindBox, props: c}
}

// countingMeasurer wraps a fixed per-line measurer and counts invocations,
// so tests can observe cache and skip behavior.
type countingMeasurer struct {
	calls int
}

func (m *countingMeasurer) measure(node Node, maxWidth int) Size {
	m.calls++
	width := len(node.Content())
	if width > maxWidth {
		width = maxWidth
	}
	height := 0
	if node.Content() != "" {
		height = 1
	}
	return Size{Width: width, Height: height}
}
