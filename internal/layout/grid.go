package layout

// gridCell is one placed grid item with its resolved track coordinates.
type gridCell struct {
	node   Node
	margin Edges
	col    int // 0-based first column
	row    int // 0-based first row
	colEnd int // exclusive
	rowEnd int // exclusive
}

// gridPlan is the shared result of grid placement and track sizing, used
// by both measurement and final positioning.
type gridPlan struct {
	cells     []gridCell
	colSizes  []int
	rowSizes  []int
	colStarts []int // prefix offsets including gaps
	rowStarts []int
}

// planGrid places children onto tracks and sizes every track.
//
// Explicitly placed children claim their cells first; the rest auto-flow in
// row-major order into the first span-sized hole. With explicit row tracks
// the grid has fixed capacity and children that do not fit are dropped from
// the result. Without explicit rows the grid grows rows as needed.
func (p *pass) planGrid(c Constraints, flow []Node, availW, availH int) (*gridPlan, error) {
	cols := len(c.Columns)
	fixedRows := len(c.Rows) > 0
	rows := len(c.Rows)
	if !fixedRows {
		rows = 1
	}

	occupied := make(map[[2]int]bool)
	canGrow := func(r int) bool { return !fixedRows || r < rows }
	fits := func(col, row, colSpan, rowSpan int) bool {
		if col+colSpan > cols {
			return false
		}
		if fixedRows && row+rowSpan > rows {
			return false
		}
		for r := row; r < row+rowSpan; r++ {
			for cl := col; cl < col+colSpan; cl++ {
				if occupied[[2]int{r, cl}] {
					return false
				}
			}
		}
		return true
	}
	claim := func(col, row, colSpan, rowSpan int) {
		for r := row; r < row+rowSpan; r++ {
			for cl := col; cl < col+colSpan; cl++ {
				occupied[[2]int{r, cl}] = true
			}
		}
		if !fixedRows && row+rowSpan > rows {
			rows = row + rowSpan
		}
	}

	plan := &gridPlan{}

	// place scans forward row-major from (col, row) to the first free
	// span-sized hole and claims it. With fixed rows it can run out of
	// capacity, in which case the child stays unplaced.
	place := func(child Node, cc Constraints, col, row, colSpan, rowSpan int) (int, int, bool) {
		for canGrow(row) || row < rows {
			if col+colSpan > cols {
				col = 0
				row++
				continue
			}
			if fixedRows && row+rowSpan > rows {
				return 0, 0, false
			}
			if fits(col, row, colSpan, rowSpan) {
				claim(col, row, colSpan, rowSpan)
				plan.cells = append(plan.cells, gridCell{
					node: child, margin: cc.Margin.Resolve(),
					col: col, row: row, colEnd: col + colSpan, rowEnd: row + rowSpan,
				})
				return col, row, true
			}
			col++
		}
		return 0, 0, false
	}

	var auto []Node
	for _, child := range flow {
		cc := child.Constraints()
		if cc.GridColumn == 0 && cc.GridRow == 0 {
			auto = append(auto, child)
			continue
		}
		col, row := cc.GridColumn-1, cc.GridRow-1
		if col < 0 {
			col = 0
		}
		if row < 0 {
			row = 0
		}
		// Spans are clamped to the capacity remaining from the start cell.
		colSpan := cc.colSpan()
		if col+colSpan > cols {
			colSpan = cols - col
		}
		rowSpan := cc.rowSpan()
		if fixedRows && row+rowSpan > rows {
			rowSpan = rows - row
		}
		if colSpan < 1 || rowSpan < 1 {
			continue
		}
		place(child, cc, col, row, colSpan, rowSpan)
	}

	cursorCol, cursorRow := 0, 0
	for _, child := range auto {
		cc := child.Constraints()
		colSpan := cc.colSpan()
		if colSpan > cols {
			colSpan = cols
		}
		rowSpan := cc.rowSpan()
		if fixedRows && rowSpan > rows {
			rowSpan = rows
		}
		if col, row, ok := place(child, cc, cursorCol, cursorRow, colSpan, rowSpan); ok {
			cursorCol, cursorRow = col, row
		}
	}

	if err := p.sizeTracks(plan, c, availW, availH, rows); err != nil {
		return nil, err
	}
	return plan, nil
}

// sizeTracks resolves fixed tracks directly, sizes auto tracks to the
// largest single-span item they hold, and splits the remainder across
// fractional tracks with the exact distributor.
func (p *pass) sizeTracks(plan *gridPlan, c Constraints, availW, availH, rows int) error {
	measureMain := func(child Node) (Size, error) {
		return p.measure(child, availW, availH, Horizontal)
	}

	var err error
	plan.colSizes, err = p.sizeAxis(c.Columns, availW, c.Gap, plan.cells, true, measureMain)
	if err != nil {
		return err
	}

	rowTracks := c.Rows
	if len(rowTracks) == 0 {
		rowTracks = make([]Track, rows)
		for i := range rowTracks {
			rowTracks[i] = AutoTrack()
		}
	}
	plan.rowSizes, err = p.sizeAxis(rowTracks, availH, c.Gap, plan.cells, false, measureMain)
	if err != nil {
		return err
	}

	plan.colStarts = trackStarts(plan.colSizes, c.Gap)
	plan.rowStarts = trackStarts(plan.rowSizes, c.Gap)
	return nil
}

// sizeAxis sizes one axis of tracks.
func (p *pass) sizeAxis(tracks []Track, avail, gap int, cells []gridCell, isCols bool, measure func(Node) (Size, error)) ([]int, error) {
	sizes := make([]int, len(tracks))
	frWeights := make([]float64, len(tracks))
	totalFr := 0.0

	for i, track := range tracks {
		switch track.Kind {
		case TrackFixed:
			sizes[i] = int(track.Amount)
		case TrackFr:
			frWeights[i] = track.Amount
			totalFr += track.Amount
		case TrackAuto:
			for _, cell := range cells {
				start, end := cell.row, cell.rowEnd
				if isCols {
					start, end = cell.col, cell.colEnd
				}
				if start != i || end != i+1 {
					continue // auto tracks size to single-span items only
				}
				size, err := measure(cell.node)
				if err != nil {
					return nil, err
				}
				outer := outerSize(size, cell.margin)
				extent := outer.Height
				if isCols {
					extent = outer.Width
				}
				if extent > sizes[i] {
					sizes[i] = extent
				}
			}
		}
	}

	if totalFr > 0 {
		used := gap * (len(tracks) - 1)
		for _, s := range sizes {
			used += s
		}
		free := avail - used
		if free < 0 || avail >= unboundedCell {
			free = 0
		}
		shares := distributeExact(free, frWeights)
		for i := range sizes {
			if tracks[i].Kind == TrackFr {
				sizes[i] = shares[i]
			}
		}
	}
	return sizes, nil
}

// trackStarts returns each track's offset from the content origin.
func trackStarts(sizes []int, gap int) []int {
	starts := make([]int, len(sizes))
	cursor := 0
	for i, size := range sizes {
		starts[i] = cursor
		cursor += size + gap
	}
	return starts
}

// span returns the extent from track start (inclusive) to end (exclusive),
// including the interior gaps the span crosses.
func (plan *gridPlan) span(starts, sizes []int, start, end int) (int, int) {
	if start >= len(sizes) {
		return 0, 0
	}
	if end > len(sizes) {
		end = len(sizes)
	}
	offset := starts[start]
	extent := starts[end-1] + sizes[end-1] - offset
	return offset, extent
}

// measureGrid reports the natural size of a grid container's content.
func (p *pass) measureGrid(node Node, c Constraints, innerW, innerH int) (Size, error) {
	flow, err := p.flowChildren(node)
	if err != nil {
		return Size{}, err
	}
	plan, err := p.planGrid(c, flow, innerW, innerH)
	if err != nil {
		return Size{}, err
	}

	var size Size
	for i, s := range plan.colSizes {
		size.Width += s
		if i > 0 {
			size.Width += c.Gap
		}
	}
	for i, s := range plan.rowSizes {
		size.Height += s
		if i > 0 {
			size.Height += c.Gap
		}
	}
	return size, nil
}

// placeGrid positions grid children into their spanned cells. Children
// fill their cell area minus margin; unplaced children get no rect.
func (p *pass) placeGrid(node Node, c Constraints, flow []Node, content Rect) error {
	plan, err := p.planGrid(c, flow, content.Width, content.Height)
	if err != nil {
		return err
	}
	for _, cell := range plan.cells {
		x, w := plan.span(plan.colStarts, plan.colSizes, cell.col, cell.colEnd)
		y, h := plan.span(plan.rowStarts, plan.rowSizes, cell.row, cell.rowEnd)
		slot := NewRect(content.X+x, content.Y+y, w, h)
		if err := p.placeNode(cell.node, slot.Inset(cell.margin)); err != nil {
			return err
		}
	}
	return nil
}
