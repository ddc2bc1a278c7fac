package layout

import "testing"

func TestRect_EdgesAndArea(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %v, want 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %v, want 60", r.Bottom())
	}
	if r.Area() != 1200 {
		t.Errorf("Area() = %v, want 1200", r.Area())
	}
	if r.IsEmpty() {
		t.Errorf("IsEmpty() = true, want false")
	}
	if !NewRect(0, 0, 0, 10).IsEmpty() {
		t.Errorf("zero-width rect IsEmpty() = false, want true")
	}
}

func TestRect_Contains(t *testing.T) {
	type tc struct {
		x, y     float64
		expected bool
	}

	r := NewRect(10, 10, 20, 20)
	tests := map[string]tc{
		"interior":             {x: 15, y: 15, expected: true},
		"top-left corner":      {x: 10, y: 10, expected: true},
		"right edge exclusive": {x: 30, y: 15, expected: false},
		"below":                {x: 15, y: 35, expected: false},
		"left of":              {x: 5, y: 15, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRect_ContainsRect(t *testing.T) {
	outer := NewRect(0, 0, 100, 100)

	if !outer.ContainsRect(NewRect(10, 10, 50, 50)) {
		t.Errorf("inner rect not contained")
	}
	if outer.ContainsRect(NewRect(90, 90, 20, 20)) {
		t.Errorf("overflowing rect reported as contained")
	}
	if !outer.ContainsRect(Rect{}) {
		t.Errorf("empty rect should always be contained")
	}
}

func TestRect_InsetOutset(t *testing.T) {
	r := NewRect(10, 10, 100, 80)

	inset := r.Inset(EdgeTRBL(5, 10, 15, 20))
	want := NewRect(30, 15, 70, 60)
	if inset != want {
		t.Errorf("Inset = %+v, want %+v", inset, want)
	}

	// Outset with the same edges restores the original.
	if got := inset.Outset(EdgeTRBL(5, 10, 15, 20)); got != r {
		t.Errorf("Outset = %+v, want %+v", got, r)
	}
}

func TestRect_Translate(t *testing.T) {
	r := NewRect(10, 20, 30, 40).Translate(-10, 5)
	want := NewRect(0, 25, 30, 40)
	if r != want {
		t.Errorf("Translate = %+v, want %+v", r, want)
	}
}

func TestEdges_Constructors(t *testing.T) {
	if e := EdgeAll(4); e != (Edges{Top: 4, Right: 4, Bottom: 4, Left: 4}) {
		t.Errorf("EdgeAll(4) = %+v", e)
	}
	if e := EdgeSymmetric(2, 6); e != (Edges{Top: 2, Right: 6, Bottom: 2, Left: 6}) {
		t.Errorf("EdgeSymmetric(2, 6) = %+v", e)
	}
	e := EdgeTRBL(1, 2, 3, 4)
	if e.Horizontal() != 6 {
		t.Errorf("Horizontal() = %v, want 6", e.Horizontal())
	}
	if e.Vertical() != 4 {
		t.Errorf("Vertical() = %v, want 4", e.Vertical())
	}
	if e.IsZero() {
		t.Errorf("IsZero() = true, want false")
	}
	if !(Edges{}).IsZero() {
		t.Errorf("zero Edges IsZero() = false, want true")
	}
}

func TestPoint_InRect(t *testing.T) {
	p := Point{X: 3, Y: 4}.Add(Point{X: 2, Y: 1})
	if p != (Point{X: 5, Y: 5}) {
		t.Errorf("Add = %+v, want {5 5}", p)
	}
	if !p.In(NewRect(0, 0, 10, 10)) {
		t.Errorf("point %+v not in rect", p)
	}
	if p.Sub(Point{X: 5, Y: 5}) != (Point{}) {
		t.Errorf("Sub did not return origin")
	}
}
