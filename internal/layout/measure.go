package layout

import "math"

// unboundedCell is passed as a measurement bound when no real constraint
// exists; content measurers see it as "wide enough to never wrap".
const unboundedCell = maxCellValue

// measure computes a node's natural size within the given bounds. Results
// are memoized in the per-pass cache under (node identity, axis, maxW,
// maxH). Bounds are clamped to zero, never skipped: a subtree squeezed to
// nothing is still measured with zero bounds so output stays deterministic
// and diffable.
func (p *pass) measure(node Node, maxW, maxH int, axis Axis) (Size, error) {
	if maxW < 0 {
		maxW = 0
	}
	if maxH < 0 {
		maxH = 0
	}
	if size, ok := p.cache.get(node, axis, maxW, maxH); ok {
		return size, nil
	}
	size, err := p.measureUncached(node, maxW, maxH, axis)
	if err != nil {
		return Size{}, err
	}
	if size.Width < 0 {
		size.Width = 0
	}
	if size.Height < 0 {
		size.Height = 0
	}
	p.cache.put(node, axis, maxW, maxH, size)
	return size, nil
}

// intrinsic measures a node with no external bound: its natural size with
// every size property honored.
func (p *pass) intrinsic(node Node) (Size, error) {
	return p.measure(node, unboundedCell, unboundedCell, Horizontal)
}

// contentIntrinsic measures the content-driven size alone, ignoring the
// node's explicit width/height and min/max clamps. intrinsic.* references
// and sibling min_w/min_h metrics read this form.
func (p *pass) contentIntrinsic(node Node) (Size, error) {
	return p.contentSize(node, unboundedCell, unboundedCell)
}

// contentSize is naturalSize behind the per-pass cache, stored under the
// content keyspace so entries never collide with full measurements of the
// same node at the same bounds.
func (p *pass) contentSize(node Node, maxW, maxH int) (Size, error) {
	if maxW < 0 {
		maxW = 0
	}
	if maxH < 0 {
		maxH = 0
	}
	if size, ok := p.cache.get(node, axisContent, maxW, maxH); ok {
		return size, nil
	}
	size, err := p.naturalSize(node, node.Constraints(), maxW, maxH, Horizontal)
	if err != nil {
		return Size{}, err
	}
	p.cache.put(node, axisContent, maxW, maxH, size)
	return size, nil
}

// parentBasis returns the content box a node's parent makes available:
// what parent.w and parent.h resolve to inside the node's expressions. The
// basis is a property of the tree position alone, computed from the
// parent's own size constraints against its own basis (availability when
// the parent is auto-sized), so it does not depend on which consult site
// demands the value first. The root's basis is the viewport.
func (p *pass) parentBasis(node Node) (Size, error) {
	parent := p.graph.parents[node]
	if parent == nil {
		return p.viewport, nil
	}
	if basis, ok := p.basis[parent]; ok {
		return basis, nil
	}

	outer, err := p.parentBasis(parent)
	if err != nil {
		return Size{}, err
	}
	c := parent.Constraints()

	width, widthSet, err := p.resolveOptional(parent, propWidth, c.Width, outer)
	if err != nil {
		return Size{}, err
	}
	if !widthSet {
		width = outer.Width
	}
	height, heightSet, err := p.resolveOptional(parent, propHeight, c.Height, outer)
	if err != nil {
		return Size{}, err
	}
	if !heightSet {
		height = outer.Height
	}
	width, err = p.clampAxis(parent, width, c.MinWidth, c.MaxWidth, propMinWidth, propMaxWidth, outer)
	if err != nil {
		return Size{}, err
	}
	height, err = p.clampAxis(parent, height, c.MinHeight, c.MaxHeight, propMinHeight, propMaxHeight, outer)
	if err != nil {
		return Size{}, err
	}

	chrome := chromeEdges(c)
	basis := Size{
		Width:  maxNonNeg(width - chrome.Horizontal()),
		Height: maxNonNeg(height - chrome.Vertical()),
	}
	p.basis[parent] = basis
	return basis, nil
}

func (p *pass) measureUncached(node Node, maxW, maxH int, axis Axis) (Size, error) {
	c := node.Constraints()
	avail := Size{Width: maxW, Height: maxH}

	width, widthSet, err := p.resolveOptional(node, propWidth, c.Width, avail)
	if err != nil {
		return Size{}, err
	}
	height, heightSet, err := p.resolveOptional(node, propHeight, c.Height, avail)
	if err != nil {
		return Size{}, err
	}
	wasW, wasH := widthSet, heightSet
	width, height, widthSet, heightSet = deriveAspect(c.AspectRatio, width, height, wasW, wasH)
	// Aspect-derived values pass through the availability clamp just like
	// percentages do.
	if widthSet && !wasW {
		width = capToBound(width, maxW)
	}
	if heightSet && !wasH {
		height = capToBound(height, maxH)
	}

	if !widthSet || !heightSet {
		natural, err := p.naturalSize(node, c, boundOr(width, widthSet, maxW), boundOr(height, heightSet, maxH), axis)
		if err != nil {
			return Size{}, err
		}
		if !widthSet {
			width = natural.Width
		}
		if !heightSet {
			height = natural.Height
		}
		// Aspect ratio may become derivable once content fixes one axis.
		width, height, _, _ = deriveAspect(c.AspectRatio, width, height, widthSet, heightSet)
		if widthSet != heightSet {
			if !widthSet {
				width = capToBound(width, maxW)
			} else {
				height = capToBound(height, maxH)
			}
		}
	}

	width, err = p.clampAxis(node, width, c.MinWidth, c.MaxWidth, propMinWidth, propMaxWidth, avail)
	if err != nil {
		return Size{}, err
	}
	height, err = p.clampAxis(node, height, c.MinHeight, c.MaxHeight, propMinHeight, propMaxHeight, avail)
	if err != nil {
		return Size{}, err
	}
	return Size{Width: width, Height: height}, nil
}

// naturalSize computes the content-driven size: leaf content measurement,
// or the children sums for containers. Bounds already exclude any explicit
// size on the other axis. The returned size includes padding and border.
func (p *pass) naturalSize(node Node, c Constraints, maxW, maxH int, axis Axis) (Size, error) {
	chrome := chromeEdges(c)
	innerW := maxNonNeg(maxW - chrome.Horizontal())
	innerH := maxNonNeg(maxH - chrome.Vertical())

	var inner Size
	switch {
	case node.Kind() == KindSpacer:
		inner = Size{}
	case node.Kind().isLeaf():
		p.eng.stats.MeasureCalls++
		inner = p.eng.measureFn(node, innerW)
	case c.isGrid():
		var err error
		inner, err = p.measureGrid(node, c, innerW, innerH)
		if err != nil {
			return Size{}, err
		}
	default:
		var err error
		inner, err = p.measureStack(node, c, innerW, innerH, axis)
		if err != nil {
			return Size{}, err
		}
	}

	return Size{
		Width:  inner.Width + chrome.Horizontal(),
		Height: inner.Height + chrome.Vertical(),
	}, nil
}

// measureStack sums in-flow children along the main axis (per line in wrap
// mode) and takes the max on the cross axis. Gaps count between adjacent
// children; absolute and hidden children consume nothing.
func (p *pass) measureStack(node Node, c Constraints, maxW, maxH int, axis Axis) (Size, error) {
	children, err := p.flowChildren(node)
	if err != nil {
		return Size{}, err
	}
	if len(children) == 0 {
		return Size{}, nil
	}

	isRow := c.Direction == Row
	mainBound := maxW
	childAxis := Horizontal
	if !isRow {
		mainBound = maxH
		childAxis = Vertical
	}

	if c.Wrap {
		lines, err := p.buildWrapLines(node, children, mainBound, maxW, maxH, c.Gap, isRow)
		if err != nil {
			return Size{}, err
		}
		var main, cross int
		for i, line := range lines {
			if line.main > main {
				main = line.main
			}
			cross += line.cross
			if i > 0 {
				cross += c.Gap
			}
		}
		if mainBound < unboundedCell && main > mainBound {
			main = mainBound
		}
		return mainCrossSize(main, cross, isRow), nil
	}

	var main, cross int
	for i, child := range children {
		size, err := p.measure(child, maxW, maxH, childAxis)
		if err != nil {
			return Size{}, err
		}
		outer := outerSize(size, child.Constraints().Margin.Resolve())
		cm, cc := mainCross(outer, isRow)
		main += cm
		if i > 0 {
			main += c.Gap
		}
		if cc > cross {
			cross = cc
		}
	}
	if mainBound < unboundedCell && main > mainBound {
		main = mainBound
	}
	return mainCrossSize(main, cross, isRow), nil
}

// resolveOptional resolves a size value, reporting whether it yielded a
// concrete number (auto does not).
func (p *pass) resolveOptional(node Node, prop propID, v Value, avail Size) (int, bool, error) {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount), true, nil
	case UnitPercent:
		base := avail.Width
		if prop == propHeight || prop == propMinHeight || prop == propMaxHeight {
			base = avail.Height
		}
		if base >= unboundedCell {
			// Percent of an unbounded basis has no answer; treat as auto.
			return 0, false, nil
		}
		// Percentages never resolve past the available space, so a >100%
		// child cannot overflow even with shrink pinned to zero.
		value := v.Resolve(base, 0)
		if value > base {
			value = base
		}
		return value, true, nil
	case UnitExpr:
		value, err := p.exprValue(node, prop)
		if err != nil {
			return 0, false, err
		}
		return snapFloor(value), true, nil
	default:
		return 0, false, nil
	}
}

// clampAxis applies min/max constraints to one axis. Min wins when the two
// conflict. The result never goes negative.
func (p *pass) clampAxis(node Node, size int, minV, maxV Value, minProp, maxProp propID, avail Size) (int, error) {
	minimum := 0
	if !minV.IsAuto() {
		v, _, err := p.resolveOptional(node, minProp, minV, avail)
		if err != nil {
			return 0, err
		}
		minimum = v
	}
	maximum := -1
	if !maxV.IsAuto() {
		v, _, err := p.resolveOptional(node, maxProp, maxV, avail)
		if err != nil {
			return 0, err
		}
		maximum = v
	}
	if maximum >= 0 && maximum >= minimum && size > maximum {
		size = maximum
	}
	if size < minimum {
		size = minimum
	}
	if size < 0 {
		size = 0
	}
	return size, nil
}

// deriveAspect fills in the unset axis from AspectRatio (width / height)
// using floored multiplication or division. When both axes are already
// resolved the ratio is ignored.
func deriveAspect(ratio float64, w, h int, wSet, hSet bool) (int, int, bool, bool) {
	if ratio <= 0 || (wSet && hSet) || (!wSet && !hSet) {
		return w, h, wSet, hSet
	}
	if wSet {
		h = int(math.Floor(float64(w) / ratio))
		hSet = true
	} else {
		w = int(math.Floor(float64(h) * ratio))
		wSet = true
	}
	return w, h, wSet, hSet
}

// flowChildren returns the visible, in-flow children of a container.
func (p *pass) flowChildren(node Node) ([]Node, error) {
	kids := node.Children()
	flow := make([]Node, 0, len(kids))
	for _, child := range kids {
		hidden, err := p.isHidden(child)
		if err != nil {
			return nil, err
		}
		if hidden || child.Constraints().Position == PositionAbsolute {
			continue
		}
		flow = append(flow, child)
	}
	return flow, nil
}

// chromeEdges returns the padding-plus-border inset between a node's
// border box and its content rect.
func chromeEdges(c Constraints) Edges {
	chrome := c.Padding.Resolve()
	if c.Border {
		chrome = Edges{
			Top: chrome.Top + 1, Right: chrome.Right + 1,
			Bottom: chrome.Bottom + 1, Left: chrome.Left + 1,
		}
	}
	return chrome
}

func boundOr(v int, set bool, fallback int) int {
	if set {
		return v
	}
	return fallback
}

// capToBound caps an availability-derived value at a real bound; an
// unbounded bound caps nothing.
func capToBound(v, bound int) int {
	if bound < unboundedCell && v > bound {
		return bound
	}
	return v
}

func maxNonNeg(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func outerSize(s Size, margin Edges) Size {
	return Size{
		Width:  maxNonNeg(s.Width + margin.Horizontal()),
		Height: maxNonNeg(s.Height + margin.Vertical()),
	}
}

func mainCross(s Size, isRow bool) (int, int) {
	if isRow {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

func mainCrossSize(main, cross int, isRow bool) Size {
	if isRow {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

// snapFloor converts an evaluated expression value to cells with floor
// snapping, the single rounding rule used everywhere.
func snapFloor(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Floor(v))
}
