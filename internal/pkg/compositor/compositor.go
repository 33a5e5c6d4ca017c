// Package compositor renders design proofs: the base mockup photo with the
// design stretched over the print area.
package compositor

import (
	"bytes"
	"image"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/disintegration/imaging"
)

// Layer is the design side of a composition.
type Layer interface {
	IsPresent() bool
	Image() image.Image
}

type Compositor struct {
	bounds entity.Bounds
}

func New(bounds entity.Bounds) *Compositor {
	return &Compositor{bounds: bounds}
}

// Compose draws base, then the design over the whole print area. The
// design's edited position and size are not used: every proof fills the
// print area exactly. Without a design the result is the base photo alone.
func (c *Compositor) Compose(base image.Image, design Layer) *image.NRGBA {
	out := imaging.Clone(base)
	if design == nil || !design.IsPresent() {
		return out
	}
	img := design.Image()
	if img == nil || img.Bounds().Empty() {
		return out
	}

	fitted := imaging.Resize(img, c.bounds.Width, c.bounds.Height, imaging.Lanczos)
	return imaging.Overlay(out, fitted, image.Pt(c.bounds.Left, c.bounds.Top), 1.0)
}

// EncodePNG serializes a proof.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
