// Package treespec loads layout trees from YAML descriptions, so trees
// used by the CLI and golden tests are data instead of code.
//
// Size values accept a number (fixed cells), "N%" (percent), "auto", or
// any other string, which is parsed as a constraint expression. Grid
// tracks accept a number, "auto", or "Nfr".
package treespec

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/flexcell/flexcell"
)

// NodeSpec is the YAML shape of one tree node.
type NodeSpec struct {
	Kind    string `yaml:"kind"`
	ID      string `yaml:"id"`
	Content string `yaml:"content"`

	Width     string `yaml:"width"`
	Height    string `yaml:"height"`
	MinWidth  string `yaml:"min_width"`
	MinHeight string `yaml:"min_height"`
	MaxWidth  string `yaml:"max_width"`
	MaxHeight string `yaml:"max_height"`
	Display   string `yaml:"display"`

	Direction string   `yaml:"direction"`
	Justify   string   `yaml:"justify"`
	Align     string   `yaml:"align"`
	AlignSelf string   `yaml:"align_self"`
	Wrap      bool     `yaml:"wrap"`
	Gap       int      `yaml:"gap"`
	Grow      float64  `yaml:"grow"`
	Shrink    *float64 `yaml:"shrink"`
	Basis     string   `yaml:"basis"`
	Aspect    float64  `yaml:"aspect"`

	Padding *int `yaml:"padding"`
	Margin  *int `yaml:"margin"`
	Border  bool `yaml:"border"`

	Columns []string `yaml:"columns"`
	Rows    []string `yaml:"rows"`
	Column  int      `yaml:"column"`
	Row     int      `yaml:"row"`
	ColSpan int      `yaml:"col_span"`
	RowSpan int      `yaml:"row_span"`

	Absolute bool `yaml:"absolute"`
	Top      *int `yaml:"top"`
	Right    *int `yaml:"right"`
	Bottom   *int `yaml:"bottom"`
	Left     *int `yaml:"left"`

	ScrollX int `yaml:"scroll_x"`
	ScrollY int `yaml:"scroll_y"`

	Children []NodeSpec `yaml:"children"`
}

// LoadFile reads a YAML tree description from a file.
func LoadFile(path string) (flexcell.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Load reads a YAML tree description from r and builds the node tree.
func Load(r io.Reader) (flexcell.Node, error) {
	var spec NodeSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("treespec: %w", err)
	}
	return Build(spec)
}

// Build converts a NodeSpec into a tree rooted at a BasicNode.
func Build(spec NodeSpec) (flexcell.Node, error) {
	kind, err := parseKind(spec.Kind)
	if err != nil {
		return nil, err
	}

	node := flexcell.NewNode(kind, spec.ID)
	node.SetContent(spec.Content)

	c := flexcell.DefaultConstraints()
	if err := applyConstraints(&c, spec); err != nil {
		return nil, fmt.Errorf("treespec: node %q: %w", spec.ID, err)
	}
	node.With(c)

	for _, childSpec := range spec.Children {
		child, err := Build(childSpec)
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}
	return node, nil
}

func applyConstraints(c *flexcell.Constraints, spec NodeSpec) error {
	var err error
	set := func(dst *flexcell.Value, field, src string) {
		if err != nil || src == "" {
			return
		}
		v, verr := parseValue(src)
		if verr != nil {
			err = fmt.Errorf("%s: %w", field, verr)
			return
		}
		*dst = v
	}
	set(&c.Width, "width", spec.Width)
	set(&c.Height, "height", spec.Height)
	set(&c.MinWidth, "min_width", spec.MinWidth)
	set(&c.MinHeight, "min_height", spec.MinHeight)
	set(&c.MaxWidth, "max_width", spec.MaxWidth)
	set(&c.MaxHeight, "max_height", spec.MaxHeight)
	set(&c.Display, "display", spec.Display)
	set(&c.FlexBasis, "basis", spec.Basis)
	if err != nil {
		return err
	}

	if c.Direction, err = parseDirection(spec.Direction); err != nil {
		return err
	}
	if c.Justify, err = parseJustify(spec.Justify); err != nil {
		return err
	}
	if c.Align, err = parseAlign(spec.Align, flexcell.AlignStretch); err != nil {
		return err
	}
	if spec.AlignSelf != "" {
		self, aerr := parseAlign(spec.AlignSelf, flexcell.AlignStart)
		if aerr != nil {
			return aerr
		}
		c.AlignSelf = &self
	}

	c.Wrap = spec.Wrap
	c.Gap = spec.Gap
	c.FlexGrow = spec.Grow
	if spec.Shrink != nil {
		c.FlexShrink = *spec.Shrink
	}
	c.AspectRatio = spec.Aspect
	c.Border = spec.Border
	if spec.Padding != nil {
		c.Padding = flexcell.Sides(*spec.Padding)
	}
	if spec.Margin != nil {
		c.Margin = flexcell.Sides(*spec.Margin)
	}

	if c.Columns, err = parseTracks(spec.Columns); err != nil {
		return err
	}
	if c.Rows, err = parseTracks(spec.Rows); err != nil {
		return err
	}
	c.GridColumn = spec.Column
	c.GridRow = spec.Row
	c.ColSpan = spec.ColSpan
	c.RowSpan = spec.RowSpan

	if spec.Absolute {
		c.Position = flexcell.PositionAbsolute
	}
	c.Offsets = flexcell.Inset{
		Top: spec.Top, Right: spec.Right, Bottom: spec.Bottom, Left: spec.Left,
	}
	c.ScrollX = spec.ScrollX
	c.ScrollY = spec.ScrollY
	return nil
}

// parseValue interprets a size string: number, "N%", "auto", or an
// expression source.
func parseValue(s string) (flexcell.Value, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "auto" {
		return flexcell.Auto(), nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return flexcell.Fixed(n), nil
	}
	if strings.HasSuffix(s, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err == nil {
			return flexcell.Percent(pct), nil
		}
	}
	return flexcell.Expr(s)
}

func parseTracks(specs []string) ([]flexcell.Track, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	tracks := make([]flexcell.Track, 0, len(specs))
	for _, s := range specs {
		s = strings.TrimSpace(s)
		switch {
		case s == "auto":
			tracks = append(tracks, flexcell.AutoTrack())
		case strings.HasSuffix(s, "fr"):
			weight, err := strconv.ParseFloat(strings.TrimSuffix(s, "fr"), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid track %q", s)
			}
			tracks = append(tracks, flexcell.FrTrack(weight))
		default:
			cells, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("invalid track %q", s)
			}
			tracks = append(tracks, flexcell.FixedTrack(cells))
		}
	}
	return tracks, nil
}

func parseKind(s string) (flexcell.Kind, error) {
	switch s {
	case "", "box":
		return flexcell.KindBox, nil
	case "text":
		return flexcell.KindText, nil
	case "button":
		return flexcell.KindButton, nil
	case "input":
		return flexcell.KindInput, nil
	case "spacer":
		return flexcell.KindSpacer, nil
	default:
		return 0, fmt.Errorf("treespec: unknown kind %q", s)
	}
}

func parseDirection(s string) (flexcell.Direction, error) {
	switch s {
	case "", "row":
		return flexcell.Row, nil
	case "column", "col":
		return flexcell.Column, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

func parseJustify(s string) (flexcell.Justify, error) {
	switch s {
	case "", "start":
		return flexcell.JustifyStart, nil
	case "end":
		return flexcell.JustifyEnd, nil
	case "center":
		return flexcell.JustifyCenter, nil
	case "space-between":
		return flexcell.JustifySpaceBetween, nil
	case "space-around":
		return flexcell.JustifySpaceAround, nil
	case "space-evenly":
		return flexcell.JustifySpaceEvenly, nil
	default:
		return 0, fmt.Errorf("unknown justify %q", s)
	}
}

func parseAlign(s string, fallback flexcell.Align) (flexcell.Align, error) {
	switch s {
	case "":
		return fallback, nil
	case "start":
		return flexcell.AlignStart, nil
	case "end":
		return flexcell.AlignEnd, nil
	case "center":
		return flexcell.AlignCenter, nil
	case "stretch":
		return flexcell.AlignStretch, nil
	default:
		return 0, fmt.Errorf("unknown align %q", s)
	}
}
