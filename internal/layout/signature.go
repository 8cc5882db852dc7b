package layout

import (
	"hash/fnv"
	"io"
	"math"
	"strconv"
)

// treeSignature hashes everything a layout pass reads: the viewport, tree
// shape, node identity and content, and every constraint including
// expression sources. Two calls with equal signatures produce identical
// results, so the engine can reuse the previous frame.
//
// The second return is false when the tree contains a node kind the hash
// does not cover, in which case skipping is never safe.
func treeSignature(root Node, viewportW, viewportH int) (uint64, bool) {
	h := fnv.New64a()
	writeSigInt(h, viewportW)
	writeSigInt(h, viewportH)
	if !writeSigNode(h, root) {
		return 0, false
	}
	return h.Sum64(), true
}

func writeSigNode(w io.Writer, node Node) bool {
	if !node.Kind().supported() {
		return false
	}
	writeSigInt(w, int(node.Kind()))
	writeSigString(w, node.ID())
	if node.Kind().isLeaf() {
		writeSigString(w, node.Content())
	}
	writeSigConstraints(w, node.Constraints())

	children := node.Children()
	writeSigInt(w, len(children))
	for _, child := range children {
		if !writeSigNode(w, child) {
			return false
		}
	}
	return true
}

func writeSigConstraints(w io.Writer, c Constraints) {
	writeSigValue(w, c.Width)
	writeSigValue(w, c.Height)
	writeSigValue(w, c.MinWidth)
	writeSigValue(w, c.MinHeight)
	writeSigValue(w, c.MaxWidth)
	writeSigValue(w, c.MaxHeight)
	writeSigValue(w, c.Display)
	writeSigValue(w, c.FlexBasis)
	writeSigFloat(w, c.AspectRatio)
	writeSigFloat(w, c.FlexGrow)
	writeSigFloat(w, c.FlexShrink)

	writeSigInt(w, int(c.Direction))
	writeSigInt(w, int(c.Justify))
	writeSigInt(w, int(c.Align))
	writeSigBool(w, c.Wrap)
	writeSigInt(w, c.Gap)
	writeSigBool(w, c.Border)
	writeSigInt(w, int(c.Position))
	writeSigEdges(w, c.Padding.Resolve())
	writeSigEdges(w, c.Margin.Resolve())

	if c.AlignSelf != nil {
		writeSigInt(w, int(*c.AlignSelf))
	} else {
		writeSigInt(w, -1)
	}

	writeSigInt(w, len(c.Columns))
	for _, t := range c.Columns {
		writeSigTrack(w, t)
	}
	writeSigInt(w, len(c.Rows))
	for _, t := range c.Rows {
		writeSigTrack(w, t)
	}
	writeSigInt(w, c.GridColumn)
	writeSigInt(w, c.GridRow)
	writeSigInt(w, c.ColSpan)
	writeSigInt(w, c.RowSpan)

	writeSigInset(w, c.Offsets)
	writeSigInt(w, c.ScrollX)
	writeSigInt(w, c.ScrollY)
}

func writeSigValue(w io.Writer, v Value) {
	writeSigInt(w, int(v.Unit))
	switch v.Unit {
	case UnitExpr:
		writeSigString(w, v.Source())
	default:
		writeSigFloat(w, v.Amount)
	}
}

func writeSigTrack(w io.Writer, t Track) {
	writeSigInt(w, int(t.Kind))
	writeSigFloat(w, t.Amount)
}

func writeSigEdges(w io.Writer, e Edges) {
	writeSigInt(w, e.Top)
	writeSigInt(w, e.Right)
	writeSigInt(w, e.Bottom)
	writeSigInt(w, e.Left)
}

func writeSigInset(w io.Writer, in Inset) {
	for _, side := range []*int{in.Top, in.Right, in.Bottom, in.Left} {
		if side == nil {
			writeSigInt(w, math.MinInt)
		} else {
			writeSigInt(w, *side)
		}
	}
}

func writeSigInt(w io.Writer, v int) {
	var buf [8]byte
	u := uint64(v)
	for i := range buf {
		buf[i] = byte(u >> (8 * i))
	}
	w.Write(buf[:])
}

func writeSigFloat(w io.Writer, v float64) {
	writeSigInt(w, int(math.Float64bits(v)))
}

func writeSigBool(w io.Writer, v bool) {
	if v {
		writeSigInt(w, 1)
	} else {
		writeSigInt(w, 0)
	}
}

func writeSigString(w io.Writer, s string) {
	io.WriteString(w, strconv.Itoa(len(s)))
	io.WriteString(w, s)
}
