// Package imagefilter converts JPG ingredient art to PNG with the light
// background made transparent.
package imagefilter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/recipegen/internal/ctxlog"
	"github.com/specialistvlad/recipegen/internal/fsutil"
	"golang.org/x/image/draw"
)

// DefaultThreshold is the channel value a pixel's R, G and B must all exceed
// to count as background.
const DefaultThreshold = 240

// DefaultDir is the ingredient art directory relative to the project root.
const DefaultDir = "resources/assets/ingredients"

// ErrNoImages is returned when the directory holds no JPG files.
var ErrNoImages = errors.New("no JPG files found")

var transparent = color.NRGBA{R: 255, G: 255, B: 255, A: 0}

// Options controls how each image is converted.
type Options struct {
	// Threshold is the channel value above which a pixel is background.
	Threshold uint8
	// MaxSize caps the longer side of the output in pixels. Zero keeps the
	// source size.
	MaxSize int
}

// DefaultOptions returns the options matching the ingredient art pipeline.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold}
}

// Fit scales src down so neither side exceeds maxSize, keeping the aspect
// ratio. Images that already fit, or a maxSize of zero, are returned as is.
func Fit(src image.Image, maxSize int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return src
	}
	if w >= h {
		w, h = maxSize, max(1, h*maxSize/w)
	} else {
		w, h = max(1, w*maxSize/h), maxSize
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// RemoveBackground returns a copy of src where every pixel whose R, G and B
// channels all exceed threshold is transparent white.
func RemoveBackground(src image.Image, threshold uint8) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := dst.NRGBAAt(x, y)
			if c.R > threshold && c.G > threshold && c.B > threshold {
				dst.SetNRGBA(x, y, transparent)
			}
		}
	}
	return dst
}

// Result summarizes a directory run.
type Result struct {
	Processed int
	Total     int
	Failed    map[string]error
}

// ProcessDir converts every JPG in dir to a PNG next to it. A failing image
// is recorded in Result.Failed and does not stop the others.
func ProcessDir(ctx context.Context, dir string, opts Options) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(dir, ".jpg", ".jpeg")
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, dir)
	}
	logger.Info("Processing images.", "dir", dir, "count", len(files), "max_size", opts.MaxSize)

	res := &Result{Total: len(files), Failed: make(map[string]error)}
	for _, in := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		out := PNGPath(in)
		if err := ProcessFile(in, out, opts); err != nil {
			logger.Error("Image failed.", "input", in, "error", err)
			res.Failed[in] = err
			continue
		}
		logger.Debug("Image processed.", "input", filepath.Base(in), "output", filepath.Base(out))
		res.Processed++
	}
	return res, nil
}

// PNGPath returns the output path for a JPG input.
func PNGPath(in string) string {
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + ".png"
}

// ProcessFile decodes the JPG at in, removes its background and writes a PNG to out.
func ProcessFile(in, out string, opts Options) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := jpeg.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", in, err)
	}
	return writePNG(out, RemoveBackground(Fit(src, opts.MaxSize), opts.Threshold))
}

// writePNG encodes img in memory and replaces path only once encoding succeeded.
func writePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return fsutil.WriteFileAtomic(path, buf.Bytes(), 0644)
}
