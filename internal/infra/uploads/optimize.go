package uploads

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	DefaultMaxDimension = 3840
	JPEGQuality         = 85

	// decoding a 10MB PNG can still expand to gigabytes of pixels
	maxPixels = 60_000_000
)

var ErrUndecodable = errors.New("invalid image")

// Bounds caps the pixel size of a stored image. Zero means DefaultMaxDimension.
// Images that already fit are never enlarged.
type Bounds struct {
	MaxWidth  int
	MaxHeight int
}

// Fit scales w x h into the bounds, keeping the aspect ratio.
func (b Bounds) Fit(w, h int) (int, int) {
	mw, mh := b.MaxWidth, b.MaxHeight
	if mw <= 0 {
		mw = DefaultMaxDimension
	}
	if mh <= 0 {
		mh = DefaultMaxDimension
	}
	if w <= mw && h <= mh {
		return w, h
	}
	ratio := math.Min(float64(mw)/float64(w), float64(mh)/float64(h))
	return max(1, int(math.Round(float64(w)*ratio))), max(1, int(math.Round(float64(h)*ratio)))
}

// optimize re-encodes the image at src into dst, downscaled into b. PNG stays
// PNG, everything else is written as JPEG.
func optimize(src, dst, mime string, b Bounds) (width, height int, err error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, 0, err
	}
	defer in.Close()

	cfg, _, err := image.DecodeConfig(in)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	if cfg.Width*cfg.Height > maxPixels {
		return 0, 0, fmt.Errorf("%w: %dx%d is too many pixels", ErrUndecodable, cfg.Width, cfg.Height)
	}
	if _, err := in.Seek(0, 0); err != nil {
		return 0, 0, err
	}
	img, _, err := image.Decode(in)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}

	r := img.Bounds()
	width, height = b.Fit(r.Dx(), r.Dy())
	if width != r.Dx() || height != r.Dy() {
		scaled := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, r, draw.Src, nil)
		img = scaled
	}

	out, err := os.Create(dst)
	if err != nil {
		return 0, 0, err
	}
	if mime == "image/png" {
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(out, img)
	} else {
		err = jpeg.Encode(out, img, &jpeg.Options{Quality: JPEGQuality})
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return width, height, err
}
