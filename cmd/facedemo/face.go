package main

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"

	// Decoders for image.Decode beyond the formats imaging registers.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/x448/float16"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/facefilter"
)

// face is one triangular face: a res×res grid whose texels with x+y < res
// are valid. Texels above the diagonal are zero and never filtered.
type face struct {
	res    int
	texels facefilter.Texels
}

// loadImage decodes the image at path.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

// squareNRGBA64 crops img to a centred square and scales it to res×res with
// 16 bits per channel. 8-bit targets go through imaging's Lanczos filter;
// wider targets keep their precision through x/image/draw.
func squareNRGBA64(img image.Image, res int, dt facefilter.DataType) *image.NRGBA64 {
	dst := image.NewNRGBA64(image.Rect(0, 0, res, res))

	if dt == facefilter.Uint8 {
		fitted := imaging.Fill(img, res, res, imaging.Center, imaging.Lanczos)
		draw.Draw(dst, dst.Bounds(), fitted, image.Point{}, draw.Src)
		return dst
	}

	b := img.Bounds()
	side := min(b.Dx(), b.Dy())
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, image.Rect(x0, y0, x0+side, y0+side), draw.Src, nil)
	return dst
}

// newFace stores the lower-left triangle of img as a face of the given
// representation. Stored channels beyond nChan are set to 1, standing in
// for data the filter does not read.
func newFace(img image.Image, res int, dt facefilter.DataType, nChan, nTxChan int) (*face, error) {
	if nTxChan < nChan {
		return nil, fmt.Errorf("-txchan %d smaller than -chan %d: %w", nTxChan, nChan, facefilter.ErrInvalidStride)
	}
	src := squareNRGBA64(img, res, dt)

	values := make([]float32, res*res*nTxChan)
	for y := range res {
		for x := range res - y {
			c := src.NRGBA64At(x, y)
			px := [4]float32{
				float32(c.R) / 0xffff,
				float32(c.G) / 0xffff,
				float32(c.B) / 0xffff,
				float32(c.A) / 0xffff,
			}
			if nChan == 1 {
				px[0] = 0.2126*px[0] + 0.7152*px[1] + 0.0722*px[2]
			}
			base := (y*res + x) * nTxChan
			for ch := range nTxChan {
				v := float32(1)
				if ch < nChan {
					v = px[ch]
				}
				values[base+ch] = v
			}
		}
	}

	texels, err := encode(values, dt, nChan, nTxChan)
	if err != nil {
		return nil, err
	}
	return &face{res: res, texels: texels}, nil
}

// encode quantizes normalized values into the storage representation dt.
func encode(values []float32, dt facefilter.DataType, nChan, nTxChan int) (facefilter.Texels, error) {
	switch dt {
	case facefilter.Uint8:
		data := make([]uint8, len(values))
		for i, v := range values {
			data[i] = uint8(math.Round(float64(v) * 255))
		}
		return facefilter.Uint8Texels(data, nChan, nTxChan)
	case facefilter.Uint16:
		data := make([]uint16, len(values))
		for i, v := range values {
			data[i] = uint16(math.Round(float64(v) * 65535))
		}
		return facefilter.Uint16Texels(data, nChan, nTxChan)
	case facefilter.Half:
		data := make([]float16.Float16, len(values))
		for i, v := range values {
			data[i] = float16.Fromfloat32(v)
		}
		return facefilter.HalfTexels(data, nChan, nTxChan)
	case facefilter.Float:
		return facefilter.FloatTexels(values, nChan, nTxChan)
	default:
		return facefilter.Texels{}, facefilter.ErrInvalidType
	}
}

// footprint returns a circular footprint of radius r centred on texel
// (x, y), clipped to the face.
func (f *face) footprint(x, y int, r float64) facefilter.Footprint {
	u, v := float64(x), float64(y)
	inv := 1 / (r * r)
	return facefilter.Footprint{
		A: inv, B: 0, C: inv,
		U: u, V: v,
		U1:     max(0, int(math.Floor(u-r))),
		U2:     min(f.res, int(math.Ceil(u+r))+1),
		V1:     max(0, int(math.Floor(v-r))),
		V2:     min(f.res, int(math.Ceil(v+r))+1),
		W1:     0,
		W2:     f.res,
		RowLen: f.res,
	}
}
