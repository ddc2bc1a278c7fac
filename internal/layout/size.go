package layout

// Size represents a width/height pair in pixels.
type Size struct {
	Width, Height float64
}

// IsZero returns true if both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}
