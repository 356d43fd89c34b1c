package facefilter

// Footprint is the state of one elliptical filter request over a
// triangular face.
//
// The ellipse is the region Q(U, V) < 1 of the quadratic form
//
//	Q(U, V) = A*U*U + (B*U + C*V)*V
//
// where U = x - u and V = vi - v are the offsets of a texel from the
// ellipse centre (u, v) in grid coordinates.
//
// Rows [V1, V2) are scanned. Within row vi the scanned columns are the
// half-open interval [x1, x2) with
//
//	x1 = max(U1, RowLen - vi - W2)
//	x2 = min(U2, RowLen - vi - W1)
//
// which clips the ellipse's bounding box against the hypotenuse of the
// triangle (the w = RowLen - x - vi axis).
//
// All bounds must be pre-clipped by the caller so that every non-empty row
// interval lies within [0, RowLen). A Footprint is populated once per request,
// consumed by exactly one call to Accumulate or AccumulateConstant, and then
// discarded. Weight must be zero before that call; afterwards it holds the
// sum of the Gaussian weights of every included texel.
type Footprint struct {
	// A, B, C are the coefficients of the quadratic form.
	A, B, C float64

	// U, V locate the ellipse centre in grid coordinates.
	U, V float64

	// U1, U2 bound the scanned columns.
	U1, U2 int

	// V1, V2 bound the scanned rows (half-open).
	V1, V2 int

	// W1, W2 bound the diagonal coordinate.
	W1, W2 int

	// RowLen is the number of texel columns in one grid row.
	RowLen int

	// Weight accumulates the weights of included texels.
	Weight float64
}

// Span returns the half-open column interval [x1, x2) scanned in row vi.
// The interval is empty when x1 >= x2.
func (fp *Footprint) Span(vi int) (x1, x2 int) {
	xw := fp.RowLen - vi
	return max(fp.U1, xw-fp.W2), min(fp.U2, xw-fp.W1)
}

// Quadratic evaluates Q directly at texel (x, vi).
func (fp *Footprint) Quadratic(x, vi int) float64 {
	u := float64(x) - fp.U
	v := float64(vi) - fp.V
	return fp.A*u*u + (fp.B*u+fp.C*v)*v
}

// Empty reports whether the footprint scans no rows.
func (fp *Footprint) Empty() bool {
	return fp.V1 >= fp.V2
}

// Texels returns the number of texel positions the footprint scans,
// included or not.
func (fp *Footprint) Texels() int {
	n := 0
	for vi := fp.V1; vi < fp.V2; vi++ {
		if x1, x2 := fp.Span(vi); x2 > x1 {
			n += x2 - x1
		}
	}
	return n
}

// row returns the span of row vi together with Q and its first forward
// difference along the row, both evaluated at x1. The second difference is
// 2*A for every row and is not returned.
func (fp *Footprint) row(vi int) (x1, x2 int, q, dq float64) {
	x1, x2 = fp.Span(vi)
	u := float64(x1) - fp.U
	v := float64(vi) - fp.V
	dq = fp.A*(2*u+1) + fp.B*v
	q = fp.A*u*u + (fp.B*u+fp.C*v)*v
	return x1, x2, q, dq
}
