// Package treefile loads layout trees from TOML documents.
//
// A tree file describes nodes declaratively: size strings use the same
// grammar as flexbox.ParseValue ("auto", "fill", "120", "50%"), and nested
// [[children]] tables build the hierarchy.
package treefile

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	flexbox "github.com/ineffably/moxijs-sub006"
)

// NodeSpec is the TOML shape of one node.
type NodeSpec struct {
	ID string `toml:"id"`

	Direction  string `toml:"direction"` // "row" (default) or "column"
	Wrap       bool   `toml:"wrap"`
	Justify    string `toml:"justify"`
	AlignItems string `toml:"align_items"`

	Width     string `toml:"width"`
	Height    string `toml:"height"`
	MinWidth  string `toml:"min_width"`
	MinHeight string `toml:"min_height"`
	MaxWidth  string `toml:"max_width"`
	MaxHeight string `toml:"max_height"`

	Grow   float64  `toml:"grow"`
	Shrink *float64 `toml:"shrink"` // nil keeps the default of 1
	Basis  string   `toml:"basis"`
	Order  int      `toml:"order"`

	Gap     string  `toml:"gap"`
	Padding float64 `toml:"padding"`
	Margin  float64 `toml:"margin"`

	Children []NodeSpec `toml:"children"`
}

// Load reads a TOML tree file and builds the node tree it describes.
func Load(path string) (*flexbox.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	root, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return root, nil
}

// Parse builds the node tree described by a TOML document.
func Parse(data []byte) (*flexbox.Node, error) {
	var spec NodeSpec
	if err := toml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to decode tree: %w", err)
	}
	return Build(spec)
}

// Build converts a NodeSpec into a node tree.
func Build(spec NodeSpec) (*flexbox.Node, error) {
	style := flexbox.DefaultStyle()

	switch spec.Direction {
	case "", "row":
		style.Direction = flexbox.Row
	case "column":
		style.Direction = flexbox.Column
	default:
		return nil, fmt.Errorf("node %q: unknown direction %q", spec.ID, spec.Direction)
	}

	if spec.Wrap {
		style.Wrap = flexbox.WrapLines
	}

	justify, err := parseJustify(spec.Justify)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", spec.ID, err)
	}
	style.JustifyContent = justify

	align, err := parseAlign(spec.AlignItems)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", spec.ID, err)
	}
	style.AlignItems = align

	values := map[string]struct {
		in  string
		out *flexbox.Value
	}{
		"width":      {spec.Width, &style.Width},
		"height":     {spec.Height, &style.Height},
		"min_width":  {spec.MinWidth, &style.MinWidth},
		"min_height": {spec.MinHeight, &style.MinHeight},
		"max_width":  {spec.MaxWidth, &style.MaxWidth},
		"max_height": {spec.MaxHeight, &style.MaxHeight},
		"basis":      {spec.Basis, &style.FlexBasis},
		"gap":        {spec.Gap, &style.Gap},
	}
	for field, v := range values {
		parsed, err := flexbox.ParseValue(v.in)
		if err != nil {
			return nil, fmt.Errorf("node %q: %s: %w", spec.ID, field, err)
		}
		*v.out = parsed
	}

	style.FlexGrow = spec.Grow
	if spec.Shrink != nil {
		style.FlexShrink = *spec.Shrink
	}
	style.Order = spec.Order
	style.Padding = flexbox.EdgeAll(spec.Padding)
	style.Margin = flexbox.EdgeAll(spec.Margin)

	node := flexbox.NewNode(style)
	node.ID = spec.ID

	for _, childSpec := range spec.Children {
		child, err := Build(childSpec)
		if err != nil {
			return nil, err
		}
		node.AddChild(child)
	}
	return node, nil
}

func parseJustify(s string) (flexbox.Justify, error) {
	switch s {
	case "", "start":
		return flexbox.JustifyStart, nil
	case "end":
		return flexbox.JustifyEnd, nil
	case "center":
		return flexbox.JustifyCenter, nil
	case "space-between":
		return flexbox.JustifySpaceBetween, nil
	case "space-around":
		return flexbox.JustifySpaceAround, nil
	case "space-evenly":
		return flexbox.JustifySpaceEvenly, nil
	default:
		return 0, fmt.Errorf("unknown justify %q", s)
	}
}

func parseAlign(s string) (flexbox.Align, error) {
	switch s {
	case "", "stretch":
		return flexbox.AlignStretch, nil
	case "start":
		return flexbox.AlignStart, nil
	case "end":
		return flexbox.AlignEnd, nil
	case "center":
		return flexbox.AlignCenter, nil
	default:
		return 0, fmt.Errorf("unknown align %q", s)
	}
}
