package facefilter

import "math"

// DefaultKernelWidth is the Gaussian kernel width used when none is
// configured. At Q = 1, the ellipse boundary, the weight has fallen to
// exp(-0.5 * 3.5²) ≈ 0.0022.
const DefaultKernelWidth = 3.5

// Filter evaluates the Gaussian falloff of the elliptical filter.
//
// The falloff is exp(scale * Q) with scale = -0.5 * width², fixed when the
// Filter is created. A Filter holds no other state and is safe for
// concurrent use.
type Filter struct {
	width float64
	scale float64
}

// NewFilter creates a Filter.
//
// Example:
//
//	f := facefilter.NewFilter(facefilter.WithKernelWidth(2.5))
//	f.Accumulate(&fp, result, texels)
func NewFilter(opts ...FilterOption) *Filter {
	o := filterOptions{kernelWidth: DefaultKernelWidth}
	for _, opt := range opts {
		opt(&o)
	}

	w := o.kernelWidth
	if !(w > 0) || math.IsInf(w, 0) {
		Logger().Warn("facefilter: invalid kernel width, using default",
			"width", w, "default", DefaultKernelWidth)
		w = DefaultKernelWidth
	}

	return &Filter{
		width: w,
		scale: -0.5 * w * w,
	}
}

// defaultFilter serves the package-level Accumulate functions.
var defaultFilter = NewFilter()

// KernelWidth returns the Gaussian kernel width.
func (f *Filter) KernelWidth() float64 {
	return f.width
}

// Weight returns the Gaussian weight of a texel at quadratic distance q.
func (f *Filter) Weight(q float64) float64 {
	return math.Exp(f.scale * q)
}
