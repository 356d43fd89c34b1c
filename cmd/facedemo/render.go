package main

import (
	"context"
	"image"
	"image/color"
	"log/slog"
	"math"
	"time"

	"github.com/disintegration/imaging"

	"github.com/gogpu/facefilter"
)

// filterFile filters every texel of the face built from the image at path
// and writes the normalized result. It returns the output path.
func filterFile(batch *facefilter.Batch, path string, opts options) (string, error) {
	img, err := loadImage(path)
	if err != nil {
		return "", err
	}
	f, err := newFace(img, opts.res, opts.dt, opts.nChan, opts.nTxChan)
	if err != nil {
		return "", err
	}

	start := time.Now()
	out, err := f.filter(context.Background(), batch, opts.radius)
	if err != nil {
		return "", err
	}
	slog.Debug("filtered face",
		"input", path,
		"texels", f.res*(f.res+1)/2,
		"layout", f.texels.Layout(),
		"elapsed", time.Since(start))

	dst := outputPath(opts.outDir, path)
	if err := imaging.Save(out, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// filter runs one footprint per valid texel and returns the normalized
// values as an image; texels above the diagonal are transparent.
func (f *face) filter(ctx context.Context, batch *facefilter.Batch, radius float64) (*image.NRGBA, error) {
	nChan := f.texels.NChan()

	type texelRef struct{ x, y int }
	var (
		refs []texelRef
		fps  []facefilter.Footprint
	)
	for y := range f.res {
		for x := range f.res - y {
			refs = append(refs, texelRef{x, y})
			fps = append(fps, f.footprint(x, y, radius))
		}
	}

	results := make([]float64, len(fps)*nChan)
	reqs := make([]facefilter.Request, len(fps))
	for i := range fps {
		reqs[i] = facefilter.Request{
			Footprint: &fps[i],
			Result:    results[i*nChan : (i+1)*nChan : (i+1)*nChan],
		}
	}
	if err := batch.Run(ctx, f.texels, reqs); err != nil {
		return nil, err
	}

	out := image.NewNRGBA(image.Rect(0, 0, f.res, f.res))
	for i, r := range refs {
		w := fps[i].Weight
		var px [4]float64
		px[3] = 1
		for c := range nChan {
			if w > 0 {
				px[c] = results[i*nChan+c] / w
			}
		}
		if nChan == 1 {
			px[1], px[2] = px[0], px[0]
		}
		out.SetNRGBA(r.x, r.y, color.NRGBA{
			R: toByte(px[0]),
			G: toByte(px[1]),
			B: toByte(px[2]),
			A: toByte(px[3]),
		})
	}
	return out, nil
}

func toByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
