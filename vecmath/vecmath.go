// Package vecmath provides stateless helpers over flat float32 slices
// holding vectors and matrices.
//
// Matrices are stored column-major, the layout glUniformMatrix expects with
// transpose disabled. Functions that take a stride treat it as the row width
// of a square matrix.
package vecmath

// Identity2 returns a 2x2 identity matrix.
func Identity2() []float32 {
	return Identity(2)
}

// Identity3 returns a 3x3 identity matrix.
func Identity3() []float32 {
	return Identity(3)
}

// Identity4 returns a 4x4 identity matrix.
func Identity4() []float32 {
	return Identity(4)
}

// Identity returns an n x n identity matrix.
func Identity(n int) []float32 {
	m := make([]float32, n*n)
	for i := 0; i < n; i++ {
		m[i*n+i] = 1
	}
	return m
}

// Add returns a + b element-wise. The result has the length of the shorter input.
func Add(a, b []float32) []float32 {
	return zip(a, b, func(x, y float32) float32 { return x + y })
}

// Sub returns a - b element-wise.
func Sub(a, b []float32) []float32 {
	return zip(a, b, func(x, y float32) float32 { return x - y })
}

// Mul returns a * b element-wise.
func Mul(a, b []float32) []float32 {
	return zip(a, b, func(x, y float32) float32 { return x * y })
}

// Div returns a / b element-wise. Division by zero follows IEEE 754.
func Div(a, b []float32) []float32 {
	return zip(a, b, func(x, y float32) float32 { return x / y })
}

// AddScalar returns v + s for every element.
func AddScalar(v []float32, s float32) []float32 {
	return each(v, func(x float32) float32 { return x + s })
}

// SubScalar returns v - s for every element.
func SubScalar(v []float32, s float32) []float32 {
	return each(v, func(x float32) float32 { return x - s })
}

// MulScalar returns v * s for every element.
func MulScalar(v []float32, s float32) []float32 {
	return each(v, func(x float32) float32 { return x * s })
}

// DivScalar returns v / s for every element.
func DivScalar(v []float32, s float32) []float32 {
	return each(v, func(x float32) float32 { return x / s })
}

// Dot returns the dot product of a and b over the shorter length.
func Dot(a, b []float32) float32 {
	n := min(len(a), len(b))
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// Cross returns the cross product of two 3-component vectors.
func Cross(a, b []float32) []float32 {
	_ = a[2]
	_ = b[2]
	return []float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func zip(a, b []float32, op func(x, y float32) float32) []float32 {
	n := min(len(a), len(b))
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = op(a[i], b[i])
	}
	return out
}

func each(v []float32, op func(x float32) float32) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = op(x)
	}
	return out
}
