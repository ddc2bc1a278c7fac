package layout

import "testing"

func TestCompute_FixedRoot(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Width = Fixed(100)
	root.Style.Height = Fixed(50)

	Compute(root, 200, 200)

	c := root.Computed()
	if c.X != 0 || c.Y != 0 {
		t.Errorf("root origin = (%v, %v), want (0, 0)", c.X, c.Y)
	}
	if c.Width != 100 || c.Height != 50 {
		t.Errorf("root size = %vx%v, want 100x50", c.Width, c.Height)
	}
}

func TestCompute_AutoRootFitsContent(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Direction = Row

	child1 := NewNode(DefaultStyle())
	child1.Style.Width = Fixed(30)
	child1.Style.Height = Fixed(40)

	child2 := NewNode(DefaultStyle())
	child2.Style.Width = Fixed(20)
	child2.Style.Height = Fixed(25)

	root.AddChild(child1, child2)
	Compute(root, 200, 200)

	// Auto dimensions fit content: width is the item sum, height the
	// tallest item.
	c := root.Computed()
	if c.Width != 50 {
		t.Errorf("root width = %v, want 50", c.Width)
	}
	if c.Height != 40 {
		t.Errorf("root height = %v, want 40", c.Height)
	}
}

func TestCompute_PaddingShrinksContentBox(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Width = Fixed(100)
	root.Style.Height = Fixed(80)
	root.Style.Padding = EdgeTRBL(5, 10, 15, 20)

	child := NewNode(DefaultStyle())
	child.Style.Width = Fill()
	child.Style.Height = Fill()
	root.AddChild(child)

	Compute(root, 200, 200)

	c := root.Computed()
	if c.ContentX != 20 || c.ContentY != 5 {
		t.Errorf("content origin = (%v, %v), want (20, 5)", c.ContentX, c.ContentY)
	}
	if c.ContentWidth != 70 || c.ContentHeight != 60 {
		t.Errorf("content size = %vx%v, want 70x60", c.ContentWidth, c.ContentHeight)
	}

	// The child fills the content box; its coordinates are relative to the
	// content origin, so it sits at (0, 0).
	cc := child.Computed()
	if cc.X != 0 || cc.Y != 0 {
		t.Errorf("child origin = (%v, %v), want (0, 0)", cc.X, cc.Y)
	}
	if cc.Width != 70 || cc.Height != 60 {
		t.Errorf("child size = %vx%v, want 70x60", cc.Width, cc.Height)
	}
}

func TestCompute_PercentAgainstParentContent(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Width = Fixed(200)
	root.Style.Height = Fixed(100)
	root.Style.Padding = EdgeAll(10)

	child := NewNode(DefaultStyle())
	child.Style.Width = Percent(50)
	child.Style.Height = Percent(25)
	root.AddChild(child)

	Compute(root, 300, 300)

	// Percentages resolve against the parent's content box (180x80).
	c := child.Computed()
	if c.Width != 90 {
		t.Errorf("child width = %v, want 90", c.Width)
	}
	if c.Height != 20 {
		t.Errorf("child height = %v, want 20", c.Height)
	}
}

func TestCompute_ColumnDirection(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Width = Fixed(100)
	root.Style.Height = Fixed(100)
	root.Style.Direction = Column

	child1 := NewNode(DefaultStyle())
	child1.Style.Width = Fixed(100)
	child1.Style.Height = Fixed(30)

	child2 := NewNode(DefaultStyle())
	child2.Style.Width = Fixed(100)
	child2.Style.Height = Fixed(20)

	root.AddChild(child1, child2)
	Compute(root, 100, 100)

	if y := child1.Computed().Y; y != 0 {
		t.Errorf("child1.Y = %v, want 0", y)
	}
	if y := child2.Computed().Y; y != 30 {
		t.Errorf("child2.Y = %v, want 30", y)
	}
}

func TestCompute_DisplayNoneChildExcluded(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Width = Fixed(100)
	root.Style.Height = Fixed(50)

	hidden := NewNode(DefaultStyle())
	hidden.Style.Display = DisplayNone
	hidden.Style.Width = Fixed(40)

	visible := NewNode(DefaultStyle())
	visible.Style.FlexGrow = 1

	root.AddChild(hidden, visible)
	Compute(root, 100, 100)

	if hidden.Computed() != nil {
		t.Errorf("display:none child has computed layout")
	}
	// The hidden sibling takes no space.
	c := visible.Computed()
	if c.X != 0 || c.Width != 100 {
		t.Errorf("visible child = x=%v w=%v, want x=0 w=100", c.X, c.Width)
	}
}

func TestCompute_DisplayNoneRoot(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Display = DisplayNone
	child := NewNode(DefaultStyle())
	root.AddChild(child)

	Compute(root, 100, 100)

	if root.Computed() != nil || child.Computed() != nil {
		t.Errorf("display:none tree produced computed layouts")
	}
	if root.IsDirty() || child.IsDirty() {
		t.Errorf("display:none tree still dirty after compute")
	}
}

func TestCompute_Idempotent(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Width = Fixed(120)
	root.Style.Height = Fixed(60)
	root.Style.Gap = Fixed(10)

	a := NewNode(DefaultStyle())
	a.Style.FlexGrow = 1
	b := NewNode(DefaultStyle())
	b.Style.FlexGrow = 2
	root.AddChild(a, b)

	Compute(root, 200, 200)
	first := *a.Computed()

	Compute(root, 200, 200)
	if *a.Computed() != first {
		t.Errorf("second compute changed layout: %+v vs %+v", *a.Computed(), first)
	}
}

func TestCompute_GapAxisOverride(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Width = Fixed(100)
	root.Style.Height = Fixed(50)
	root.Style.Gap = Fixed(4)
	root.Style.ColumnGap = Fixed(10) // Overrides Gap on the row main axis

	a := NewNode(DefaultStyle())
	a.Style.Width = Fixed(20)
	b := NewNode(DefaultStyle())
	b.Style.Width = Fixed(20)
	root.AddChild(a, b)

	Compute(root, 100, 100)

	if x := b.Computed().X; x != 30 {
		t.Errorf("b.X = %v, want 30 (20 + 10 column gap)", x)
	}
}

func TestCompute_NilRoot(t *testing.T) {
	Compute(nil, 100, 100) // Must not panic
}
