package facefilter

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/x448/float16"
)

// Test helpers shared across facefilter tests.

// circle returns an isotropic footprint of radius r centred at (u, v) on a
// triangular face with the given row length, clipped to the face.
func circle(u, v, r float64, rowLen int) Footprint {
	inv := 1 / (r * r)
	return Footprint{
		A: inv, B: 0, C: inv,
		U: u, V: v,
		U1:     max(0, int(math.Floor(u-r))),
		U2:     min(rowLen, int(math.Ceil(u+r))+1),
		V1:     max(0, int(math.Floor(v-r))),
		V2:     min(rowLen, int(math.Ceil(v+r))+1),
		W1:     0,
		W2:     rowLen,
		RowLen: rowLen,
	}
}

// skewed returns an anisotropic footprint with a non-zero cross term.
func skewed(rowLen int) Footprint {
	return Footprint{
		A: 0.09, B: 0.07, C: 0.21,
		U: 4.3, V: 3.6,
		U1: 0, U2: rowLen,
		V1: 0, V2: rowLen,
		W1: 0, W2: rowLen,
		RowLen: rowLen,
	}
}

// fill returns n float32 values all equal to v.
func fill(n int, v float32) []float32 {
	data := make([]float32, n)
	for i := range data {
		data[i] = v
	}
	return data
}

// pattern returns n 8-bit values with a deterministic spread over [0, 255].
func pattern(n int) []uint8 {
	data := make([]uint8, n)
	for i := range data {
		data[i] = uint8((i*37 + 11) % 256)
	}
	return data
}

func mustFloatTexels(t testing.TB, data []float32, nChan, nTxChan int) Texels {
	t.Helper()
	tx, err := FloatTexels(data, nChan, nTxChan)
	if err != nil {
		t.Fatalf("FloatTexels() = %v", err)
	}
	return tx
}

// encodeAll stores the same 8-bit pattern in every data type, scaled so that
// each representation decodes to (nearly) the same value.
func encodeAll(t testing.TB, src []uint8, nChan, nTxChan int) map[DataType]Texels {
	t.Helper()

	u16 := make([]uint16, len(src))
	f16 := make([]float16.Float16, len(src))
	f32 := make([]float32, len(src))
	for i, v := range src {
		u16[i] = uint16(v) * 257
		f := float32(v) / 255
		f16[i] = float16.Fromfloat32(f)
		f32[i] = f
	}

	views := make(map[DataType]Texels, 4)
	var err error
	if views[Uint8], err = Uint8Texels(src, nChan, nTxChan); err != nil {
		t.Fatalf("Uint8Texels() = %v", err)
	}
	if views[Uint16], err = Uint16Texels(u16, nChan, nTxChan); err != nil {
		t.Fatalf("Uint16Texels() = %v", err)
	}
	if views[Half], err = HalfTexels(f16, nChan, nTxChan); err != nil {
		t.Fatalf("HalfTexels() = %v", err)
	}
	if views[Float], err = FloatTexels(f32, nChan, nTxChan); err != nil {
		t.Fatalf("FloatTexels() = %v", err)
	}
	return views
}

// approxEqual compares two floats with a relative-or-absolute tolerance.
func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// dump formats a footprint for failure messages.
func dump(fp Footprint) string {
	return spew.Sdump(fp)
}
