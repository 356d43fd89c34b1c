package facefilter

import (
	"fmt"

	"github.com/x448/float16"
)

// Texels is a read-only view over one externally owned texel buffer.
//
// A view carries the backing slice for exactly one storage representation,
// the number of channels that are filtered (NChan) and the number of
// channels physically stored per texel (NTxChan). Texel (x, y) of a grid
// with row length n starts at element (y*n + x) * NTxChan.
//
// Views are small and passed by value. The filter never writes through a
// view, so one view may be shared by any number of concurrent filter calls.
type Texels struct {
	typ     DataType
	nChan   int
	nTxChan int

	u8  []uint8
	u16 []uint16
	f16 []float16.Float16
	f32 []float32
}

// Uint8Texels returns a view over 8-bit texel data.
func Uint8Texels(data []uint8, nChan, nTxChan int) (Texels, error) {
	if err := checkTexels(len(data), nChan, nTxChan); err != nil {
		return Texels{}, err
	}
	return Texels{typ: Uint8, nChan: nChan, nTxChan: nTxChan, u8: data}, nil
}

// Uint16Texels returns a view over 16-bit integer texel data.
func Uint16Texels(data []uint16, nChan, nTxChan int) (Texels, error) {
	if err := checkTexels(len(data), nChan, nTxChan); err != nil {
		return Texels{}, err
	}
	return Texels{typ: Uint16, nChan: nChan, nTxChan: nTxChan, u16: data}, nil
}

// HalfTexels returns a view over half-precision texel data.
func HalfTexels(data []float16.Float16, nChan, nTxChan int) (Texels, error) {
	if err := checkTexels(len(data), nChan, nTxChan); err != nil {
		return Texels{}, err
	}
	return Texels{typ: Half, nChan: nChan, nTxChan: nTxChan, f16: data}, nil
}

// FloatTexels returns a view over single-precision texel data.
func FloatTexels(data []float32, nChan, nTxChan int) (Texels, error) {
	if err := checkTexels(len(data), nChan, nTxChan); err != nil {
		return Texels{}, err
	}
	return Texels{typ: Float, nChan: nChan, nTxChan: nTxChan, f32: data}, nil
}

func checkTexels(n, nChan, nTxChan int) error {
	if nChan < 1 {
		return ErrInvalidChannels
	}
	if nTxChan < nChan {
		return fmt.Errorf("%w: nTxChan=%d nChan=%d", ErrInvalidStride, nTxChan, nChan)
	}
	if n == 0 || n%nTxChan != 0 {
		return fmt.Errorf("%w: %d elements, stride %d", ErrDataTooSmall, n, nTxChan)
	}
	return nil
}

// Type returns the storage representation of the view.
func (t Texels) Type() DataType { return t.typ }

// NChan returns the number of filtered channels per texel.
func (t Texels) NChan() int { return t.nChan }

// NTxChan returns the number of stored channels per texel.
func (t Texels) NTxChan() int { return t.nTxChan }

// Layout reports whether texels are packed or carry skipped channels.
func (t Texels) Layout() Layout {
	if t.nTxChan == t.nChan {
		return Packed
	}
	return Strided
}

// Len returns the number of whole texels in the view.
func (t Texels) Len() int {
	if t.nTxChan == 0 {
		return 0
	}
	switch t.typ {
	case Uint8:
		return len(t.u8) / t.nTxChan
	case Uint16:
		return len(t.u16) / t.nTxChan
	case Half:
		return len(t.f16) / t.nTxChan
	case Float:
		return len(t.f32) / t.nTxChan
	}
	return 0
}

// Pixel returns a one-texel view of texel i.
func (t Texels) Pixel(i int) Texels {
	lo, hi := i*t.nTxChan, (i+1)*t.nTxChan
	p := t
	switch t.typ {
	case Uint8:
		p.u8 = t.u8[lo:hi:hi]
	case Uint16:
		p.u16 = t.u16[lo:hi:hi]
	case Half:
		p.f16 = t.f16[lo:hi:hi]
	case Float:
		p.f32 = t.f32[lo:hi:hi]
	}
	return p
}

// DecodePixel writes the normalized value of each filtered channel of the
// first texel in t into dst. dst must hold at least t.NChan() values.
func DecodePixel(dst []float64, t Texels) {
	dst = dst[:t.nChan]
	switch t.typ {
	case Uint8:
		for c := range dst {
			dst[c] = decodeUint8(t.u8[c])
		}
	case Uint16:
		for c := range dst {
			dst[c] = decodeUint16(t.u16[c])
		}
	case Half:
		for c := range dst {
			dst[c] = decodeHalf(t.f16[c])
		}
	case Float:
		for c := range dst {
			dst[c] = decodeFloat(t.f32[c])
		}
	}
}
