package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/flexcell/flexcell/internal/debug"
)

// Engine computes layout passes over node trees. An Engine is not safe for
// concurrent use; it deliberately faults on re-entrant calls so a measurer
// that calls back into layout fails loudly instead of corrupting state.
type Engine struct {
	measureFn MeasureFunc

	prevSig    uint64
	prevSigOK  bool
	prevResult *Result

	stats  Stats
	inPass bool
}

// Stats counts the work an Engine has done since creation. Useful for
// asserting that caching and pass-skipping actually engage.
type Stats struct {
	FullPasses         int
	SkippedPasses      int
	MeasureCalls       int
	CacheHits          int
	CacheMisses        int
	WrapFeedbackPasses int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMeasurer sets the content measurer used for leaf nodes.
func WithMeasurer(fn MeasureFunc) Option {
	return func(e *Engine) {
		if fn != nil {
			e.measureFn = fn
		}
	}
}

// NewEngine returns an Engine ready for layout passes. Without a measurer
// option, leaf content is measured by rune count per line.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{measureFn: basicMeasure}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Stats returns a snapshot of the engine's counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Invalidate drops the cached previous result so the next Layout call runs
// a full pass even if nothing changed.
func (e *Engine) Invalidate() {
	e.prevSigOK = false
	e.prevResult = nil
}

// Layout computes the geometry of every node in the tree within a viewport
// of the given dimensions. When the tree and viewport are unchanged since
// the previous call, the previous result is returned without recomputation.
func (e *Engine) Layout(root Node, viewportW, viewportH int) (*Result, error) {
	if e.inPass {
		return nil, ErrReentrantPass
	}
	e.inPass = true
	defer func() { e.inPass = false }()

	if viewportW < 0 {
		viewportW = 0
	}
	if viewportH < 0 {
		viewportH = 0
	}
	if viewportW > maxCellValue {
		viewportW = maxCellValue
	}
	if viewportH > maxCellValue {
		viewportH = maxCellValue
	}

	result := &Result{
		Rects:    make(map[Node]Rect),
		Overflow: make(map[Node]Overflow),
	}
	if root == nil {
		return result, nil
	}

	if err := validateTree(root); err != nil {
		e.dropCached()
		return nil, err
	}

	sig, sigOK := treeSignature(root, viewportW, viewportH)
	if sigOK && e.prevSigOK && sig == e.prevSig && e.prevResult != nil {
		e.stats.SkippedPasses++
		debug.Logf("layout: skipped pass, signature unchanged (%#x)", sig)
		return e.prevResult, nil
	}

	g, err := buildGraph(root)
	if err != nil {
		e.dropCached()
		return nil, err
	}
	if err := g.checkCycles(); err != nil {
		e.dropCached()
		return nil, err
	}

	p := &pass{
		eng:      e,
		viewport: Size{Width: viewportW, Height: viewportH},
		cache:    newMeasureCache(),
		graph:    g,
		hidden:   make(map[Node]bool),
		basis:    make(map[Node]Size),
		rects:    result.Rects,
		overflow: result.Overflow,
	}
	if err := p.run(root); err != nil {
		e.dropCached()
		return nil, err
	}

	e.stats.FullPasses++
	e.stats.CacheHits += p.cache.hits
	e.stats.CacheMisses += p.cache.misses
	debug.Logf("layout: full pass %dx%d, %d rects, %d measure cache hits / %d misses",
		viewportW, viewportH, len(result.Rects), p.cache.hits, p.cache.misses)

	if sigOK {
		e.prevSig = sig
		e.prevSigOK = true
		e.prevResult = result
	} else {
		e.dropCached()
	}
	return result, nil
}

func (e *Engine) dropCached() {
	e.prevSigOK = false
	e.prevResult = nil
}

// basicMeasure is the fallback measurer: rune count per line, no wrapping
// beyond the width bound.
func basicMeasure(node Node, maxWidth int) Size {
	content := node.Content()
	if content == "" {
		return Size{}
	}
	var size Size
	for _, line := range strings.Split(content, "\n") {
		width := utf8.RuneCountInString(line)
		if width > maxWidth {
			width = maxWidth
		}
		if width > size.Width {
			size.Width = width
		}
		size.Height++
	}
	return size
}
