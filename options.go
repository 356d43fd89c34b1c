package facefilter

// FilterOption configures a Filter during creation.
type FilterOption func(*filterOptions)

type filterOptions struct {
	kernelWidth float64
}

// WithKernelWidth sets the Gaussian kernel width.
// Non-positive and non-finite widths fall back to DefaultKernelWidth.
func WithKernelWidth(w float64) FilterOption {
	return func(o *filterOptions) {
		o.kernelWidth = w
	}
}
