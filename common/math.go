package common

import (
	"github.com/chewxy/math32"
)

// IdentityMat4 returns a 4x4 identity matrix in row-major order.
//
// Returns:
//   - [16]float32: the identity matrix
func IdentityMat4() [16]float32 {
	var m [16]float32
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// TransposeMat4 converts a column-major 4x4 matrix into row-major order.
// The conversion is an exact element permutation: output row i is
// (m[i], m[4+i], m[8+i], m[12+i]).
//
// Parameters:
//   - m: source matrix in column-major order
//
// Returns:
//   - [16]float32: the same matrix in row-major order
func TransposeMat4(m [16]float32) [16]float32 {
	var out [16]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i*4+j] = m[j*4+i]
		}
	}
	return out
}

// ComposeTRS builds a row-major 4x4 transform from translation, rotation and
// scale components. The result is equivalent to the column-major product
// T * R * S converted with TransposeMat4. The quaternion is normalized before
// use; a zero-length quaternion is treated as the identity rotation.
//
// Parameters:
//   - t: translation (x, y, z)
//   - r: rotation quaternion (x, y, z, w)
//   - s: scale (x, y, z)
//
// Returns:
//   - [16]float32: the composed transform in row-major order
func ComposeTRS(t [3]float32, r [4]float32, s [3]float32) [16]float32 {
	x, y, z, w := r[0], r[1], r[2], r[3]
	if n := math32.Sqrt(x*x + y*y + z*z + w*w); n > 0 {
		x, y, z, w = x/n, y/n, z/n, w/n
	} else {
		x, y, z, w = 0, 0, 0, 1
	}

	// Rotation matrix entries, column-vector convention.
	r00 := 1 - 2*(y*y+z*z)
	r01 := 2 * (x*y - w*z)
	r02 := 2 * (x*z + w*y)
	r10 := 2 * (x*y + w*z)
	r11 := 1 - 2*(x*x+z*z)
	r12 := 2 * (y*z - w*x)
	r20 := 2 * (x*z - w*y)
	r21 := 2 * (y*z + w*x)
	r22 := 1 - 2*(x*x+y*y)

	var out [16]float32
	out[0], out[1], out[2], out[3] = r00*s[0], r01*s[1], r02*s[2], t[0]
	out[4], out[5], out[6], out[7] = r10*s[0], r11*s[1], r12*s[2], t[1]
	out[8], out[9], out[10], out[11] = r20*s[0], r21*s[1], r22*s[2], t[2]
	out[12], out[13], out[14], out[15] = 0, 0, 0, 1
	return out
}

// Add3 returns the component-wise sum a + b.
func Add3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub3 returns the component-wise difference a - b.
func Sub3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale3 returns v scaled by k.
func Scale3(v [3]float32, k float32) [3]float32 {
	return [3]float32{v[0] * k, v[1] * k, v[2] * k}
}

// Cross3 returns the cross product a x b.
func Cross3(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Length3 returns the euclidean length of v.
func Length3(v [3]float32) float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize3 returns v scaled to unit length. A zero-length vector is
// returned unchanged rather than divided into NaN components.
func Normalize3(v [3]float32) [3]float32 {
	n := Length3(v)
	if n == 0 {
		return v
	}
	return Scale3(v, 1/n)
}
