package layout

// placeAbsolute positions an absolutely positioned node against its
// parent's content rect. Absolute nodes never consume in-flow space; their
// offsets anchor them to the content edges, and setting both opposing
// offsets with an auto size stretches the node between them.
func (p *pass) placeAbsolute(node Node, content Rect) error {
	c := node.Constraints()
	avail := Size{Width: content.Width, Height: content.Height}

	intrinsicSize, err := p.measure(node, content.Width, content.Height, Horizontal)
	if err != nil {
		return err
	}

	x, width, err := p.absoluteAxis(node, absoluteAxisInput{
		avail:     avail,
		extent:    content.Width,
		start:     c.Offsets.Left,
		end:       c.Offsets.Right,
		size:      c.Width,
		sizeProp:  propWidth,
		min:       c.MinWidth,
		max:       c.MaxWidth,
		minProp:   propMinWidth,
		maxProp:   propMaxWidth,
		intrinsic: intrinsicSize.Width,
	})
	if err != nil {
		return err
	}
	y, height, err := p.absoluteAxis(node, absoluteAxisInput{
		avail:     avail,
		extent:    content.Height,
		start:     c.Offsets.Top,
		end:       c.Offsets.Bottom,
		size:      c.Height,
		sizeProp:  propHeight,
		min:       c.MinHeight,
		max:       c.MaxHeight,
		minProp:   propMinHeight,
		maxProp:   propMaxHeight,
		intrinsic: intrinsicSize.Height,
	})
	if err != nil {
		return err
	}

	return p.placeNode(node, NewRect(content.X+x, content.Y+y, width, height))
}

type absoluteAxisInput struct {
	avail     Size
	extent    int
	start     *int
	end       *int
	size      Value
	sizeProp  propID
	min, max  Value
	minProp   propID
	maxProp   propID
	intrinsic int
}

// absoluteAxis resolves one axis of an absolute placement: size first
// (explicit, stretched between opposing offsets, or intrinsic), then the
// anchor position.
func (p *pass) absoluteAxis(node Node, in absoluteAxisInput) (int, int, error) {
	size, sizeSet, err := p.resolveOptional(node, in.sizeProp, in.size, in.avail)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case sizeSet:
	case in.start != nil && in.end != nil:
		size = in.extent - *in.start - *in.end
	default:
		size = in.intrinsic
	}
	size, err = p.clampAxis(node, size, in.min, in.max, in.minProp, in.maxProp, in.avail)
	if err != nil {
		return 0, 0, err
	}
	if size < 0 {
		size = 0
	}

	pos := 0
	switch {
	case in.start != nil:
		pos = *in.start
	case in.end != nil:
		pos = in.extent - *in.end - size
	}
	return pos, size, nil
}
