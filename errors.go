package facefilter

import "errors"

// Sentinel errors for facefilter. The kernel itself never returns errors;
// these are reported by the constructors and configuration that sit in
// front of it.
var (
	// ErrInvalidChannels is returned when a texel view has fewer than one channel.
	ErrInvalidChannels = errors.New("facefilter: channel count must be at least 1")

	// ErrInvalidStride is returned when the stored channel count is less than
	// the filtered channel count.
	ErrInvalidStride = errors.New("facefilter: texel stride smaller than channel count")

	// ErrDataTooSmall is returned when a texel buffer is empty or does not hold
	// a whole number of texels.
	ErrDataTooSmall = errors.New("facefilter: texel data too small")

	// ErrInvalidType is returned for an unknown data type name.
	ErrInvalidType = errors.New("facefilter: invalid data type")

	// ErrInvalidConfig is returned when a configuration fails to decode or validate.
	ErrInvalidConfig = errors.New("facefilter: invalid config")

	// ErrClosed is returned by Batch.Run after Close.
	ErrClosed = errors.New("facefilter: batch closed")
)
