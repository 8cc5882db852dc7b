package expr

// Node is a node in a parsed constraint expression tree. Trees are
// immutable after parsing; the interning cache hands out the same tree for
// identical source text.
type Node interface {
	exprNode()
}

// BinOp identifies a binary operator.
type BinOp uint8

const (
	OpAdd BinOp = iota // +
	OpSub              // -
	OpMul              // *
	OpDiv              // /
	OpLT               // <
	OpLE               // <=
	OpGT               // >
	OpGE               // >=
	OpEQ               // ==
	OpNE               // !=
)

var binOpNames = [...]string{"+", "-", "*", "/", "<", "<=", ">", ">=", "==", "!="}

// String returns the operator's source form.
func (op BinOp) String() string {
	if int(op) < len(binOpNames) {
		return binOpNames[op]
	}
	return "?"
}

// RefSpace identifies which metric namespace a reference reads from.
type RefSpace uint8

const (
	RefParent    RefSpace = iota // parent.w, parent.h
	RefViewport                  // viewport.w, viewport.h
	RefIntrinsic                 // intrinsic.w, intrinsic.h
	RefSibling                   // #id.w, #id.h, #id.min_w, #id.min_h
	RefUnknown                   // unrecognized space name; rejected at resolution
)

// Literal is a numeric constant.
type Literal struct {
	Value float64
}

// Ref reads a metric from a namespace. For RefSibling, ID holds the target
// node id. For RefUnknown, ID holds the unrecognized space name so that
// resolution can report it. Metric is kept as written and validated at
// resolution time.
type Ref struct {
	Space  RefSpace
	ID     string
	Metric string
	Offset int
}

// Unary is a prefix operator application (only negation).
type Unary struct {
	X Node
}

// Binary applies Op to X and Y.
type Binary struct {
	Op   BinOp
	X, Y Node
}

// Call invokes a named function. Name is not validated at parse time.
type Call struct {
	Name   string
	Args   []Node
	Offset int
}

// Pair is a threshold:value bucket inside a steps(...) call. Pairs are only
// syntactically valid as call arguments; resolution rejects them elsewhere.
type Pair struct {
	Threshold Node
	Value     Node
}

// Ternary is cond ? then : else. The condition is truthy when > 0.
type Ternary struct {
	Cond, Then, Else Node
}

func (*Literal) exprNode() {}
func (*Ref) exprNode()     {}
func (*Unary) exprNode()   {}
func (*Binary) exprNode()  {}
func (*Call) exprNode()    {}
func (*Pair) exprNode()    {}
func (*Ternary) exprNode() {}

// Parsed couples an expression tree with the exact source text it was
// parsed from. The source is the interning key and is carried into
// resolution faults and layout signatures.
type Parsed struct {
	Source string
	Root   Node
}

// lookupSpace maps a space identifier to its RefSpace tag.
func lookupSpace(name string) RefSpace {
	switch name {
	case "parent":
		return RefParent
	case "viewport":
		return RefViewport
	case "intrinsic":
		return RefIntrinsic
	default:
		return RefUnknown
	}
}
