package interpolate

// Array is a dense n-dimensional array of float64s in row-major order. It
// is the shape all training values, query batches, and results take.
//
// An Array with an empty shape is a scalar with a single element.
type Array struct {
	Shape []int
	Data  []float64
}

// NewArray creates an Array with the given shape around data. The length of
// data must equal the product of the extents in shape.
func NewArray(shape []int, data []float64) (*Array, error) {
	if size := sizeOf(shape); size != len(data) {
		return nil, configErrorf(
			"shape %d requires %d elements, but %d were given",
			shape, size, len(data),
		)
	}
	for i, d := range shape {
		if d <= 0 {
			return nil, configErrorf(
				"extent %d of shape %d is not positive", i, shape,
			)
		}
	}
	return &Array{Shape: shape, Data: data}, nil
}

// Point creates the 1D Array representing a single query point with the
// given coordinates.
func Point(coords ...float64) *Array {
	return &Array{Shape: []int{len(coords)}, Data: coords}
}

// Size returns the number of elements in the array.
func (a *Array) Size() int { return sizeOf(a.Shape) }

// clone deep-copies the array.
func (a *Array) clone() *Array {
	shape := make([]int, len(a.Shape))
	data := make([]float64, len(a.Data))
	copy(shape, a.Shape)
	copy(data, a.Data)
	return &Array{Shape: shape, Data: data}
}

// equal reports element-wise numeric equality, shape included.
func (a *Array) equal(b *Array) bool {
	if len(a.Shape) != len(b.Shape) {
		return false
	}
	for i := range a.Shape {
		if a.Shape[i] != b.Shape[i] {
			return false
		}
	}
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			return false
		}
	}
	return true
}

func sizeOf(shape []int) int {
	size := 1
	for _, d := range shape {
		size *= d
	}
	return size
}
