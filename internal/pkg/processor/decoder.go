package processor

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/storage"
	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	_ "golang.org/x/image/webp"
)

const (
	// MaxDesignSide bounds the longest edge kept in memory for an uploaded design.
	MaxDesignSide = 2000
	// MaxDesignPixels bounds the declared area of an upload before any pixel
	// is decoded.
	MaxDesignPixels = 25_000_000
)

type ImageDecoder interface {
	Decode(r io.Reader) (image.Image, error)
	LoadMockup(path string) (image.Image, error)
}

type imageDecoder struct {
	storage   storage.FileStorage
	maxSide   int
	maxPixels int64

	mu      sync.RWMutex
	mockups map[string]image.Image
}

func NewImageDecoder(storage storage.FileStorage) ImageDecoder {
	return &imageDecoder{
		storage:   storage,
		maxSide:   MaxDesignSide,
		maxPixels: MaxDesignPixels,
		mockups:   make(map[string]image.Image),
	}
}

// Decode reads an uploaded design. The header is checked against the pixel
// budget first, then JPEG orientation tags are applied and oversized images
// are scaled down; animated GIFs keep their first frame.
func (d *imageDecoder) Decode(r io.Reader) (image.Image, error) {
	var header bytes.Buffer
	cfg, _, err := image.DecodeConfig(io.TeeReader(r, &header))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrUndecodableImage, err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > d.maxPixels {
		return nil, fmt.Errorf("%w: %dx%d", entity.ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, err := imaging.Decode(io.MultiReader(&header, r), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrUndecodableImage, err)
	}
	b := img.Bounds()
	if b.Dx() > d.maxSide || b.Dy() > d.maxSide {
		logrus.WithFields(logrus.Fields{
			"width":  b.Dx(),
			"height": b.Dy(),
		}).Debug("Scaling down oversized design")
		img = imaging.Fit(img, d.maxSide, d.maxSide, imaging.Lanczos)
	}
	return img, nil
}

// LoadMockup returns a decoded base product photo. Mockups never change at
// runtime, so they are decoded once.
func (d *imageDecoder) LoadMockup(path string) (image.Image, error) {
	d.mu.RLock()
	img, ok := d.mockups[path]
	d.mu.RUnlock()
	if ok {
		return img, nil
	}

	reader, err := d.storage.Get(path)
	if err != nil {
		return nil, fmt.Errorf("open mockup %s: %w", path, err)
	}
	defer reader.Close()

	img, err = imaging.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("decode mockup %s: %w", path, err)
	}

	d.mu.Lock()
	d.mockups[path] = img
	d.mu.Unlock()
	return img, nil
}
