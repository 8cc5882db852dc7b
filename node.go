package flexcell

// BasicNode is the concrete node type most trees are built from. Anything
// implementing Node works with the engine; BasicNode just covers the
// common case of a static tree with per-node constraints.
type BasicNode struct {
	id       string
	kind     Kind
	content  string
	props    Constraints
	children []Node
}

// NewNode creates a node of the given kind. The id may be empty; ids only
// matter to sibling expression references.
func NewNode(kind Kind, id string) *BasicNode {
	return &BasicNode{
		id:    id,
		kind:  kind,
		props: DefaultConstraints(),
	}
}

// Box creates a container node with the given children.
func Box(id string, children ...Node) *BasicNode {
	n := NewNode(KindBox, id)
	n.children = children
	return n
}

// Text creates a text leaf.
func Text(id, content string) *BasicNode {
	n := NewNode(KindText, id)
	n.content = content
	return n
}

// Button creates a button leaf with the given label.
func Button(id, label string) *BasicNode {
	n := NewNode(KindButton, id)
	n.content = label
	return n
}

// Input creates an input leaf with the given current value.
func Input(id, value string) *BasicNode {
	n := NewNode(KindInput, id)
	n.content = value
	return n
}

// Spacer creates an empty flexible leaf.
func Spacer(id string) *BasicNode {
	return NewNode(KindSpacer, id)
}

func (n *BasicNode) ID() string               { return n.id }
func (n *BasicNode) Kind() Kind               { return n.kind }
func (n *BasicNode) Children() []Node         { return n.children }
func (n *BasicNode) Constraints() Constraints { return n.props }
func (n *BasicNode) Content() string          { return n.content }

// With replaces the node's constraints and returns the node for chaining.
func (n *BasicNode) With(c Constraints) *BasicNode {
	n.props = c
	return n
}

// Edit applies fn to the node's constraints in place.
func (n *BasicNode) Edit(fn func(c *Constraints)) *BasicNode {
	fn(&n.props)
	return n
}

// SetContent replaces a leaf's text content.
func (n *BasicNode) SetContent(content string) *BasicNode {
	n.content = content
	return n
}

// Append adds children and returns the node for chaining.
func (n *BasicNode) Append(children ...Node) *BasicNode {
	n.children = append(n.children, children...)
	return n
}
