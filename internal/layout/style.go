package layout

// Display controls whether a node participates in layout at all.
type Display uint8

const (
	DisplayFlex Display = iota // Normal flex layout
	DisplayNone                // Excluded from layout; subtree skipped
)

// Position controls how a node is placed within its parent.
type Position uint8

const (
	PositionRelative Position = iota // Placed by the parent's flex flow
	PositionAbsolute                 // Placed against the parent's content box
)

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Wrap specifies whether children may break into multiple flex lines.
type Wrap uint8

const (
	NoWrap    Wrap = iota // Single line; items overflow rather than wrap
	WrapLines             // Items wrap into new lines when out of space
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Half-size space at edges, full between
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch auto-sized items to fill cross axis
)

// AlignContent specifies how flex lines are distributed on the cross axis
// of a wrapping container.
type AlignContent uint8

const (
	AlignContentStretch AlignContent = iota // Lines grow to fill leftover space
	AlignContentStart
	AlignContentEnd
	AlignContentCenter
	AlignContentSpaceBetween
	AlignContentSpaceAround
	AlignContentSpaceEvenly
)

// Style contains all layout properties for a node.
type Style struct {
	Display  Display
	Position Position

	// Absolute offsets, used only when Position is PositionAbsolute.
	// Auto means unset; Left/Top win over Right/Bottom when both are set.
	Top, Right, Bottom, Left Value

	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Flex container properties
	Direction      Direction
	Wrap           Wrap
	JustifyContent Justify
	AlignItems     Align
	AlignContent   AlignContent

	// Gap is the space between children on both axes. RowGap/ColumnGap
	// override it per axis when set (auto falls back to Gap).
	Gap       Value
	RowGap    Value
	ColumnGap Value

	// Flex item properties
	FlexGrow   float64 // How much to grow relative to siblings
	FlexShrink float64 // How much to shrink relative to siblings (default 1)
	FlexBasis  Value   // Hypothetical main size before grow/shrink
	AlignSelf  *Align  // Override parent's AlignItems (nil = inherit)
	Order      int     // Relative ordering among siblings (stable)
	ZIndex     int     // Paint order hint; not used by layout

	// Spacing
	Padding Edges
	Margin  Edges
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Display:        DisplayFlex,
		Position:       PositionRelative,
		Width:          Auto(),
		Height:         Auto(),
		MinWidth:       Auto(), // No minimum
		MinHeight:      Auto(),
		MaxWidth:       Auto(), // No maximum
		MaxHeight:      Auto(),
		Direction:      Row,
		Wrap:           NoWrap,
		JustifyContent: JustifyStart,
		AlignItems:     AlignStretch,
		AlignContent:   AlignContentStretch,
		Gap:            Auto(),
		RowGap:         Auto(),
		ColumnGap:      Auto(),
		FlexGrow:       0,
		FlexShrink:     1.0,
		FlexBasis:      Auto(),
	}
}
