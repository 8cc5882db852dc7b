package layout

// pass holds the mutable state of one layout pass. Everything here is
// allocated fresh per pass and discarded afterwards, so no geometry or
// cache entry can leak into the next frame.
type pass struct {
	eng      *Engine
	viewport Size

	cache  *measureCache
	graph  *graph
	hidden map[Node]bool
	basis  map[Node]Size // content box each container offers its children

	rects    map[Node]Rect
	overflow map[Node]Overflow
}

// run resolves the root's size against the viewport and places the tree.
func (p *pass) run(root Node) error {
	hidden, err := p.isHidden(root)
	if err != nil {
		return err
	}
	if hidden {
		return nil
	}

	c := root.Constraints()
	avail := p.viewport

	width, widthSet, err := p.resolveOptional(root, propWidth, c.Width, avail)
	if err != nil {
		return err
	}
	if !widthSet {
		width = avail.Width
	}
	height, heightSet, err := p.resolveOptional(root, propHeight, c.Height, avail)
	if err != nil {
		return err
	}
	if !heightSet {
		height = avail.Height
	}
	width, err = p.clampAxis(root, width, c.MinWidth, c.MaxWidth, propMinWidth, propMaxWidth, avail)
	if err != nil {
		return err
	}
	height, err = p.clampAxis(root, height, c.MinHeight, c.MaxHeight, propMinHeight, propMaxHeight, avail)
	if err != nil {
		return err
	}

	return p.placeNode(root, NewRect(0, 0, width, height))
}

// placeNode records a node's border box and places its children inside the
// content rect (border box minus border and padding). Absolute children are
// placed in an independent second pass against the content rect and never
// consume in-flow space.
func (p *pass) placeNode(node Node, borderBox Rect) error {
	c := node.Constraints()
	p.rects[node] = borderBox

	content := borderBox.Inset(chromeEdges(c))

	children := node.Children()
	if len(children) > 0 {
		flow, err := p.flowChildren(node)
		if err != nil {
			return err
		}
		switch {
		case c.isGrid():
			if err := p.placeGrid(node, c, flow, content); err != nil {
				return err
			}
		case c.Wrap:
			if err := p.placeWrapped(node, c, flow, content); err != nil {
				return err
			}
		default:
			if err := p.placeStack(node, c, flow, content); err != nil {
				return err
			}
		}

		for _, child := range children {
			cc := child.Constraints()
			if cc.Position != PositionAbsolute {
				continue
			}
			hidden, err := p.isHidden(child)
			if err != nil {
				return err
			}
			if hidden {
				continue
			}
			if err := p.placeAbsolute(child, content); err != nil {
				return err
			}
		}
	}

	return p.recordOverflow(node, c, content)
}

// stackEntry extends flexEntry with placement state for one stack child.
type stackEntry struct {
	flexEntry
	node        Node
	margin      Edges
	explicitMin int // explicit main-axis minimum incl margin; -1 when unset
	crossPos    int
	cross       int
	mainPos     int
}

// placeStack arranges in-flow children along the container's main axis.
//
// Two paths produce identical output: when no child uses main-axis
// percentage sizing or a positive flex factor, the sizes cannot interact
// and the greedy single pass below suffices. Otherwise the entries run
// through the exact distributor.
func (p *pass) placeStack(node Node, c Constraints, flow []Node, content Rect) error {
	if len(flow) == 0 {
		return nil
	}
	isRow := c.Direction == Row
	mainSize, crossSize := content.Width, content.Height
	childAxis := Horizontal
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
		childAxis = Vertical
	}

	entries := make([]stackEntry, len(flow))
	avail := Size{Width: content.Width, Height: content.Height}
	totalGrow, totalShrink := 0.0, 0.0
	interacting := false

	for i, child := range flow {
		cc := child.Constraints()
		entry := &entries[i]
		entry.node = child
		entry.margin = cc.Margin.Resolve()

		marginMain := entry.margin.Horizontal()
		if !isRow {
			marginMain = entry.margin.Vertical()
		}

		mainValue := cc.Width
		mainProp := propWidth
		if !isRow {
			mainValue = cc.Height
			mainProp = propHeight
		}
		if mainValue.Unit == UnitPercent || cc.FlexGrow > 0 {
			interacting = true
		}

		measured, err := p.measure(child, content.Width, content.Height, childAxis)
		if err != nil {
			return err
		}
		measuredMain, measuredCross := mainCross(measured, isRow)
		entry.cross = measuredCross

		// Base size: flex-basis beats the explicit main size, which beats
		// the measured content size. A growing child with no basis starts
		// from zero so the distributor owns its whole allocation.
		base := measuredMain
		switch {
		case !cc.FlexBasis.IsAuto():
			base = cc.FlexBasis.Resolve(mainSize, measuredMain)
		case cc.FlexGrow > 0:
			base = 0
		default:
			if v, set, err := p.resolveOptional(child, mainProp, mainValue, avail); err != nil {
				return err
			} else if set {
				base = v
			}
		}
		entry.size = base + marginMain

		minMain, maxMain, err := p.mainBounds(child, cc, isRow, avail)
		if err != nil {
			return err
		}
		entry.explicitMin = -1
		if minMain >= 0 {
			entry.explicitMin = minMain + marginMain
		}
		if minMain < 0 {
			// Shrink floor defaults to the intrinsic min-content size.
			intrinsicSize, err := p.intrinsic(child)
			if err != nil {
				return err
			}
			minMain, _ = mainCross(intrinsicSize, isRow)
		}
		entry.min = minMain + marginMain
		if maxMain >= 0 {
			entry.max = maxMain + marginMain
		} else {
			entry.max = -1
		}

		totalGrow += cc.FlexGrow
		totalShrink += cc.FlexShrink
	}

	totalGap := c.Gap * (len(flow) - 1)
	used := 0
	for i := range entries {
		used += entries[i].size
	}
	free := mainSize - used - totalGap

	if free < 0 && totalShrink > 0 {
		interacting = true
	}
	if interacting {
		if free > 0 && totalGrow > 0 {
			flexEntries := make([]flexEntry, len(entries))
			for i := range entries {
				flexEntries[i] = entries[i].flexEntry
				flexEntries[i].weight = flow[i].Constraints().FlexGrow
			}
			growFlex(flexEntries, free)
			for i := range entries {
				entries[i].size = flexEntries[i].size
			}
		} else if free < 0 && totalShrink > 0 {
			flexEntries := make([]flexEntry, len(entries))
			for i := range entries {
				flexEntries[i] = entries[i].flexEntry
				flexEntries[i].weight = flow[i].Constraints().FlexShrink
			}
			shrinkFlex(flexEntries, -free)
			for i := range entries {
				entries[i].size = flexEntries[i].size
			}
		}
	}

	// Clamp entries the distributor did not touch. Min wins over max.
	for i := range entries {
		if entries[i].max >= 0 && entries[i].size > entries[i].max {
			entries[i].size = entries[i].max
		}
		if entries[i].explicitMin >= 0 && entries[i].size < entries[i].explicitMin {
			entries[i].size = entries[i].explicitMin
		}
		if entries[i].size < 0 {
			entries[i].size = 0
		}
	}

	used = 0
	for i := range entries {
		used += entries[i].size
	}
	leftover := mainSize - used - totalGap
	offset := justifyOffset(c.Justify, leftover, len(entries))
	spacing := justifySpacing(c.Justify, leftover, len(entries))

	cursor := offset
	for i := range entries {
		entries[i].mainPos = cursor
		cursor += entries[i].size + c.Gap + spacing
	}

	for i, child := range flow {
		if err := p.resolveCross(child, &entries[i], c.Align, isRow, crossSize, avail); err != nil {
			return err
		}
	}

	for i := range entries {
		if err := p.placeStackEntry(&entries[i], content, isRow); err != nil {
			return err
		}
	}
	return nil
}

// resolveCross determines a child's cross-axis slot size and offset.
func (p *pass) resolveCross(child Node, entry *stackEntry, align Align, isRow bool, crossSize int, avail Size) error {
	cc := child.Constraints()
	if cc.AlignSelf != nil {
		align = *cc.AlignSelf
	}

	crossValue := cc.Height
	crossProp := propHeight
	crossMargin := entry.margin.Vertical()
	if !isRow {
		crossValue = cc.Width
		crossProp = propWidth
		crossMargin = entry.margin.Horizontal()
	}

	switch {
	case align == AlignStretch && crossValue.IsAuto():
		entry.cross = crossSize
		entry.crossPos = 0
	default:
		contentCross := entry.cross // measured
		if v, set, err := p.resolveOptional(child, crossProp, crossValue, avail); err != nil {
			return err
		} else if set {
			contentCross = v
		}
		entry.cross = contentCross + crossMargin
		entry.crossPos = alignOffset(align, crossSize, entry.cross)
	}
	return nil
}

// placeStackEntry converts main/cross slot coordinates into a border box
// and recurses. The slot includes the child's margin; insetting by the
// margin yields the border box the child is placed in.
func (p *pass) placeStackEntry(entry *stackEntry, content Rect, isRow bool) error {
	var slot Rect
	if isRow {
		slot = NewRect(content.X+entry.mainPos, content.Y+entry.crossPos, entry.size, entry.cross)
	} else {
		slot = NewRect(content.X+entry.crossPos, content.Y+entry.mainPos, entry.cross, entry.size)
	}
	return p.placeNode(entry.node, slot.Inset(entry.margin))
}

// mainBounds resolves explicit min/max constraints on the main axis.
// min < 0 means "no explicit minimum" (the caller substitutes the
// intrinsic floor); max < 0 means unbounded.
func (p *pass) mainBounds(child Node, cc Constraints, isRow bool, avail Size) (int, int, error) {
	minV, maxV := cc.MinWidth, cc.MaxWidth
	minProp, maxProp := propMinWidth, propMaxWidth
	if !isRow {
		minV, maxV = cc.MinHeight, cc.MaxHeight
		minProp, maxProp = propMinHeight, propMaxHeight
	}

	minMain := -1
	if !minV.IsAuto() {
		v, _, err := p.resolveOptional(child, minProp, minV, avail)
		if err != nil {
			return 0, 0, err
		}
		minMain = v
	}
	maxMain := -1
	if !maxV.IsAuto() {
		v, _, err := p.resolveOptional(child, maxProp, maxV, avail)
		if err != nil {
			return 0, 0, err
		}
		maxMain = v
	}
	return minMain, maxMain, nil
}

// justifyOffset returns the initial cursor offset for the justify mode.
func justifyOffset(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}
	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / (itemCount * 2)
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// justifySpacing returns the extra spacing between children for the mode.
func justifySpacing(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}
	switch justify {
	case JustifySpaceBetween:
		return freeSpace / (itemCount - 1)
	case JustifySpaceAround:
		return freeSpace / itemCount
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default:
		return 0
	}
}

// alignOffset returns the cross-axis offset for one child.
func alignOffset(align Align, crossSize, itemSize int) int {
	switch align {
	case AlignEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}

// recordOverflow emits overflow metadata when a node's content exceeds its
// content rect. Scroll offsets are clamped to the scrollable range.
func (p *pass) recordOverflow(node Node, c Constraints, content Rect) error {
	var contentW, contentH int

	if node.Kind().isLeaf() && node.Kind() != KindSpacer {
		chrome := chromeEdges(c)
		natural, err := p.contentSize(node, content.Width+chrome.Horizontal(), unboundedCell)
		if err != nil {
			return err
		}
		contentW = natural.Width - chrome.Horizontal()
		contentH = natural.Height - chrome.Vertical()
	} else {
		for _, child := range node.Children() {
			rect, ok := p.rects[child]
			if !ok {
				continue
			}
			if r := rect.Right() - content.X; r > contentW {
				contentW = r
			}
			if b := rect.Bottom() - content.Y; b > contentH {
				contentH = b
			}
		}
	}

	if contentW <= content.Width && contentH <= content.Height {
		return nil
	}
	p.overflow[node] = Overflow{
		ScrollX:        clampScroll(c.ScrollX, contentW-content.Width),
		ScrollY:        clampScroll(c.ScrollY, contentH-content.Height),
		ContentWidth:   contentW,
		ContentHeight:  contentH,
		ViewportWidth:  content.Width,
		ViewportHeight: content.Height,
	}
	return nil
}

func clampScroll(v, maxScroll int) int {
	if maxScroll < 0 {
		maxScroll = 0
	}
	if v > maxScroll {
		return maxScroll
	}
	if v < 0 {
		return 0
	}
	return v
}
