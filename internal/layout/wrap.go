package layout

// Wrap measurement is a small state machine per child: the first pass
// measures against the container bound, line building may then allocate a
// different main size (flex growth within a line), and at most one feedback
// re-measure picks up the cross-axis consequence. After that the item is
// done; the pass never oscillates.
const (
	wrapFirstPass = iota
	wrapFeedbackPass
	wrapDone
)

type wrapItem struct {
	node      Node
	margin    Edges
	outer     Size // measured size including margin
	allocated int  // final main-axis size including margin
	cross     int  // final cross-axis size including margin
	grow      float64
	state     int
}

type wrapLine struct {
	items []wrapItem
	main  int
	cross int
}

// buildWrapLines measures in-flow children, breaks them greedily into
// lines, distributes per-line free space to growing items, and re-measures
// any item whose allocation differs from its measured size.
func (p *pass) buildWrapLines(node Node, children []Node, mainBound, maxW, maxH, gap int, isRow bool) ([]wrapLine, error) {
	childAxis := Horizontal
	if !isRow {
		childAxis = Vertical
	}

	items := make([]wrapItem, 0, len(children))
	for _, child := range children {
		cc := child.Constraints()
		margin := cc.Margin.Resolve()
		size, err := p.measure(child, maxW, maxH, childAxis)
		if err != nil {
			return nil, err
		}
		outer := outerSize(size, margin)
		main, cross := mainCross(outer, isRow)
		items = append(items, wrapItem{
			node:      child,
			margin:    margin,
			outer:     outer,
			allocated: main,
			cross:     cross,
			grow:      cc.FlexGrow,
			state:     wrapFirstPass,
		})
	}

	var lines []wrapLine
	var current wrapLine
	lineMain := 0
	for _, item := range items {
		needed := item.allocated
		if len(current.items) > 0 {
			needed += gap
		}
		// A line always takes at least one item, even one wider than the
		// container.
		if len(current.items) > 0 && mainBound < unboundedCell && lineMain+needed > mainBound {
			lines = append(lines, current)
			current = wrapLine{}
			lineMain = 0
			needed = item.allocated
		}
		current.items = append(current.items, item)
		lineMain += needed
	}
	if len(current.items) > 0 {
		lines = append(lines, current)
	}

	for li := range lines {
		line := &lines[li]
		if err := p.finishWrapLine(line, mainBound, maxW, maxH, gap, isRow); err != nil {
			return nil, err
		}
	}
	return lines, nil
}

// finishWrapLine grows items into the line's free space, runs the feedback
// re-measure for items whose main allocation changed, and records the
// line's final main and cross extents.
func (p *pass) finishWrapLine(line *wrapLine, mainBound, maxW, maxH, gap int, isRow bool) error {
	used := 0
	totalGrow := 0.0
	for i := range line.items {
		used += line.items[i].allocated
		if i > 0 {
			used += gap
		}
		totalGrow += line.items[i].grow
	}

	if mainBound < unboundedCell && used < mainBound && totalGrow > 0 {
		weights := make([]float64, len(line.items))
		for i := range line.items {
			weights[i] = line.items[i].grow
		}
		shares := distributeExact(mainBound-used, weights)
		for i := range line.items {
			line.items[i].allocated += shares[i]
		}
		used = mainBound
	}

	childAxis := Horizontal
	if !isRow {
		childAxis = Vertical
	}
	for i := range line.items {
		item := &line.items[i]
		itemMain, _ := mainCross(item.outer, isRow)
		if item.state == wrapFirstPass && item.allocated != itemMain {
			item.state = wrapFeedbackPass
			p.eng.stats.WrapFeedbackPasses++
			marginW, marginH := item.margin.Horizontal(), item.margin.Vertical()
			var size Size
			var err error
			if isRow {
				size, err = p.measure(item.node, maxNonNeg(item.allocated-marginW), maxH, childAxis)
			} else {
				size, err = p.measure(item.node, maxW, maxNonNeg(item.allocated-marginH), childAxis)
			}
			if err != nil {
				return err
			}
			item.outer = outerSize(size, item.margin)
			_, item.cross = mainCross(item.outer, isRow)
		}
		item.state = wrapDone
	}

	line.main = used
	line.cross = 0
	for i := range line.items {
		if line.items[i].cross > line.cross {
			line.cross = line.items[i].cross
		}
	}
	return nil
}

// placeWrapped lays out a wrapping container: lines stack along the cross
// axis with the container gap between them, and each line justifies and
// aligns its items independently.
func (p *pass) placeWrapped(node Node, c Constraints, flow []Node, content Rect) error {
	if len(flow) == 0 {
		return nil
	}
	isRow := c.Direction == Row
	mainSize, crossSize := content.Width, content.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	lines, err := p.buildWrapLines(node, flow, mainSize, content.Width, content.Height, c.Gap, isRow)
	if err != nil {
		return err
	}

	crossUsed := 0
	for i, line := range lines {
		crossUsed += line.cross
		if i > 0 {
			crossUsed += c.Gap
		}
	}
	crossCursor := alignOffset(c.Align, crossSize, crossUsed)
	if crossCursor < 0 {
		crossCursor = 0
	}

	for _, line := range lines {
		leftover := mainSize - line.main
		offset := justifyOffset(c.Justify, leftover, len(line.items))
		spacing := justifySpacing(c.Justify, leftover, len(line.items))

		cursor := offset
		for _, item := range line.items {
			cross := item.cross
			cc := item.node.Constraints()
			align := c.Align
			if cc.AlignSelf != nil {
				align = *cc.AlignSelf
			}
			crossValue := cc.Height
			if !isRow {
				crossValue = cc.Width
			}
			if align == AlignStretch && crossValue.IsAuto() {
				cross = line.cross
			}
			crossPos := crossCursor + alignOffset(align, line.cross, cross)

			var slot Rect
			if isRow {
				slot = NewRect(content.X+cursor, content.Y+crossPos, item.allocated, cross)
			} else {
				slot = NewRect(content.X+crossPos, content.Y+cursor, cross, item.allocated)
			}
			if err := p.placeNode(item.node, slot.Inset(item.margin)); err != nil {
				return err
			}
			cursor += item.allocated + c.Gap + spacing
		}
		crossCursor += line.cross + c.Gap
	}
	return nil
}
