package layout

// Kind identifies what a node is. The engine knows how to measure and
// fingerprint the kinds below; any other value still lays out as a box but
// forces a conservative full relayout every pass.
type Kind uint8

const (
	KindBox    Kind = iota // container: stack, or grid when Columns is set
	KindText               // leaf: measured by the content measurer
	KindButton             // leaf: content plus button chrome
	KindInput              // leaf: single-line editable field
	KindSpacer             // leaf: empty flexible space
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindText:
		return "text"
	case KindButton:
		return "button"
	case KindInput:
		return "input"
	case KindSpacer:
		return "spacer"
	default:
		return "unknown"
	}
}

// supported reports whether the stability signature covers this kind.
func (k Kind) supported() bool {
	switch k {
	case KindBox, KindText, KindButton, KindInput, KindSpacer:
		return true
	default:
		return false
	}
}

// isLeaf reports whether the kind delegates sizing to the content measurer.
func (k Kind) isLeaf() bool {
	return k != KindBox
}

// Node is the engine's read-only view of one element in the committed tree.
// The tree is owned by the caller for the duration of a pass; the engine
// never mutates it and emits results in a separate map keyed by node
// identity (the interface value itself, so implementations must be
// pointer-shaped and comparable).
type Node interface {
	// ID returns the node's id for #id expression references, or "".
	ID() string

	// Kind returns what this node is.
	Kind() Kind

	// Children returns the child nodes in layout order.
	Children() []Node

	// Constraints returns the node's layout properties.
	Constraints() Constraints

	// Content returns the text content for leaf kinds, "" for containers.
	// The default measurer and the stability signature both read it.
	Content() string
}

// MeasureFunc computes the size of a leaf node's content given a maximum
// width in cells. Intrinsic measurement passes a very large bound, so
// measurers should wrap against maxWidth rather than treat any value as
// special.
type MeasureFunc func(node Node, maxWidth int) Size

// Overflow describes content that exceeds a node's content rect, for
// external clipping and scrolling layers.
type Overflow struct {
	ScrollX, ScrollY             int
	ContentWidth, ContentHeight  int
	ViewportWidth, ViewportHeight int
}

// Result is the output of one layout pass: the final border-box rectangle
// for every laid-out node, plus overflow metadata for nodes whose content
// exceeds their box. Hidden nodes and grid children beyond fixed capacity
// have no entry.
type Result struct {
	Rects    map[Node]Rect
	Overflow map[Node]Overflow
}
