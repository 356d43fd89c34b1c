package facefilter

import "github.com/x448/float16"

// texel is the set of stored channel representations.
type texel interface {
	uint8 | uint16 | float16.Float16 | float32
}

const (
	inv255   = 1.0 / 255
	inv65535 = 1.0 / 65535
)

func decodeUint8(v uint8) float64          { return float64(v) * inv255 }
func decodeUint16(v uint16) float64        { return float64(v) * inv65535 }
func decodeHalf(v float16.Float16) float64 { return float64(v.Float32()) }
func decodeFloat(v float32) float64        { return float64(v) }

// apply selects the scan loop for nChan once per call. The loops below
// differ only in how many channels they accumulate per texel; Q is
// evaluated by forward differences along each row (Heckbert 1989).
func apply[T texel](f *Filter, fp *Footprint, result []float64, data []T, nChan, stride int, dec func(T) float64) {
	switch nChan {
	case 1:
		scan1(f, fp, result, data, stride, dec)
	case 2:
		scan2(f, fp, result, data, stride, dec)
	case 3:
		scan3(f, fp, result, data, stride, dec)
	case 4:
		scan4(f, fp, result, data, stride, dec)
	default:
		scanN(f, fp, result[:nChan], data, stride, dec)
	}
}

func scan1[T texel](f *Filter, fp *Footprint, result []float64, data []T, stride int, dec func(T) float64) {
	r := result[:1]
	ddq := 2 * fp.A
	for vi := fp.V1; vi < fp.V2; vi++ {
		x1, x2, q, dq := fp.row(vi)
		p := (vi*fp.RowLen + x1) * stride
		for x := x1; x < x2; x, p = x+1, p+stride {
			if q < 1 {
				w := f.Weight(q)
				fp.Weight += w
				r[0] += w * dec(data[p])
			}
			q += dq
			dq += ddq
		}
	}
}

func scan2[T texel](f *Filter, fp *Footprint, result []float64, data []T, stride int, dec func(T) float64) {
	r := result[:2]
	ddq := 2 * fp.A
	for vi := fp.V1; vi < fp.V2; vi++ {
		x1, x2, q, dq := fp.row(vi)
		p := (vi*fp.RowLen + x1) * stride
		for x := x1; x < x2; x, p = x+1, p+stride {
			if q < 1 {
				w := f.Weight(q)
				fp.Weight += w
				px := data[p : p+2]
				r[0] += w * dec(px[0])
				r[1] += w * dec(px[1])
			}
			q += dq
			dq += ddq
		}
	}
}

func scan3[T texel](f *Filter, fp *Footprint, result []float64, data []T, stride int, dec func(T) float64) {
	r := result[:3]
	ddq := 2 * fp.A
	for vi := fp.V1; vi < fp.V2; vi++ {
		x1, x2, q, dq := fp.row(vi)
		p := (vi*fp.RowLen + x1) * stride
		for x := x1; x < x2; x, p = x+1, p+stride {
			if q < 1 {
				w := f.Weight(q)
				fp.Weight += w
				px := data[p : p+3]
				r[0] += w * dec(px[0])
				r[1] += w * dec(px[1])
				r[2] += w * dec(px[2])
			}
			q += dq
			dq += ddq
		}
	}
}

func scan4[T texel](f *Filter, fp *Footprint, result []float64, data []T, stride int, dec func(T) float64) {
	r := result[:4]
	ddq := 2 * fp.A
	for vi := fp.V1; vi < fp.V2; vi++ {
		x1, x2, q, dq := fp.row(vi)
		p := (vi*fp.RowLen + x1) * stride
		for x := x1; x < x2; x, p = x+1, p+stride {
			if q < 1 {
				w := f.Weight(q)
				fp.Weight += w
				px := data[p : p+4]
				r[0] += w * dec(px[0])
				r[1] += w * dec(px[1])
				r[2] += w * dec(px[2])
				r[3] += w * dec(px[3])
			}
			q += dq
			dq += ddq
		}
	}
}

// scanN handles any channel count; len(result) is the channel count.
func scanN[T texel](f *Filter, fp *Footprint, result []float64, data []T, stride int, dec func(T) float64) {
	n := len(result)
	ddq := 2 * fp.A
	for vi := fp.V1; vi < fp.V2; vi++ {
		x1, x2, q, dq := fp.row(vi)
		p := (vi*fp.RowLen + x1) * stride
		for x := x1; x < x2; x, p = x+1, p+stride {
			if q < 1 {
				w := f.Weight(q)
				fp.Weight += w
				px := data[p : p+n]
				for c, v := range px {
					result[c] += w * dec(v)
				}
			}
			q += dq
			dq += ddq
		}
	}
}
