package vecmath

// MatMul multiplies a by b using stride as both the row width and the
// number of terms summed per element:
//
//	out[i*stride+j] = sum(k < stride) a[i*stride+k] * b[k*stride+j]
//
// The result has len(a) elements. For square matrices this is exact. For
// non-square shapes the single stride does not describe both operands and
// the result is unspecified.
func MatMul(a, b []float32, stride int) []float32 {
	out := make([]float32, len(a))
	if stride <= 0 {
		return out
	}
	rows := len(a) / stride
	for i := 0; i < rows; i++ {
		for j := 0; j < stride; j++ {
			var sum float32
			for k := 0; k < stride; k++ {
				bi := k*stride + j
				if bi >= len(b) {
					break
				}
				sum += a[i*stride+k] * b[bi]
			}
			out[i*stride+j] = sum
		}
	}
	return out
}

// Scale multiplies the diagonal of the square matrix m in place by v.
// Components beyond the matrix size are ignored.
func Scale(m []float32, stride int, v ...float32) {
	for i, s := range v {
		if i >= stride {
			break
		}
		m[i*stride+i] *= s
	}
}

// Translate adds v to the translation column of the column-major square
// matrix m in place (indices 12, 13, 14 of a 4x4).
func Translate(m []float32, stride int, v ...float32) {
	last := (stride - 1) * stride
	for i, t := range v {
		if i >= stride-1 {
			break
		}
		m[last+i] += t
	}
}

// Ortho returns a column-major orthographic projection:
//
//	2/(r-l)        0              0              0
//	0              2/(t-b)        0              0
//	0              0              -2/(f-n)       0
//	-(r+l)/(r-l)   -(t+b)/(t-b)   -(f+n)/(f-n)   1
//
// listed by column.
func Ortho(left, right, bottom, top, near, far float32) []float32 {
	m := make([]float32, 16)
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = -2 / (far - near)
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[14] = -(far + near) / (far - near)
	m[15] = 1
	return m
}

// Transform multiplies the column-major 4x4 matrix m by the point (x, y, z, 1)
// and returns the resulting x, y, z.
func Transform(m []float32, x, y, z float32) (float32, float32, float32) {
	_ = m[15]
	w := m[3]*x + m[7]*y + m[11]*z + m[15]
	ox := m[0]*x + m[4]*y + m[8]*z + m[12]
	oy := m[1]*x + m[5]*y + m[9]*z + m[13]
	oz := m[2]*x + m[6]*y + m[10]*z + m[14]
	if w != 0 && w != 1 {
		return ox / w, oy / w, oz / w
	}
	return ox, oy, oz
}
