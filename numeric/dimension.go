package numeric

// Dimension tags a coordinate type with its compile-time coordinate count. Implementations are
// zero-size types so that two values of different dimension have different Go types.
type Dimension interface {
	Dim() int
}

// D1 tags one-dimensional values.
type D1 struct{}

// Dim returns 1.
func (D1) Dim() int { return 1 }

// D2 tags two-dimensional values.
type D2 struct{}

// Dim returns 2.
func (D2) Dim() int { return 2 }

// D3 tags three-dimensional values.
type D3 struct{}

// Dim returns 3.
func (D3) Dim() int { return 3 }

// D4 tags four-dimensional values.
type D4 struct{}

// Dim returns 4.
func (D4) Dim() int { return 4 }

// DimOf returns the dimension carried by the tag type D.
func DimOf[D Dimension]() int {
	var d D
	return d.Dim()
}
