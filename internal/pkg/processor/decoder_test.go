package processor

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"strings"
	"testing"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillImageWithColor заполняет изображение одним цветом
func fillImageWithColor(img *image.RGBA, color color.RGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.Set(x, y, color)
		}
	}
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillImageWithColor(img, color.RGBA{R: 100, G: 150, B: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	decoder := NewImageDecoder(storage.NewFileStorage(t.TempDir()))

	tests := []struct {
		name       string
		data       []byte
		wantWidth  int
		wantHeight int
	}{
		{
			name:       "small png kept as is",
			data:       encodePNG(t, 120, 80),
			wantWidth:  120,
			wantHeight: 80,
		},
		{
			name:       "oversized png scaled down",
			data:       encodePNG(t, 4000, 1000),
			wantWidth:  2000,
			wantHeight: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := decoder.Decode(bytes.NewReader(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.wantWidth, img.Bounds().Dx())
			assert.Equal(t, tt.wantHeight, img.Bounds().Dy())
		})
	}
}

func TestDecodeGIFFirstFrame(t *testing.T) {
	palette := color.Palette{color.Black, color.White}
	anim := &gif.GIF{
		Image: []*image.Paletted{
			image.NewPaletted(image.Rect(0, 0, 30, 20), palette),
			image.NewPaletted(image.Rect(0, 0, 30, 20), palette),
		},
		Delay: []int{10, 10},
	}
	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, anim))

	img, err := NewImageDecoder(storage.NewFileStorage(t.TempDir())).Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 30, img.Bounds().Dx())
}

func TestDecodeRejectsGarbage(t *testing.T) {
	decoder := NewImageDecoder(storage.NewFileStorage(t.TempDir()))

	_, err := decoder.Decode(strings.NewReader("definitely not an image"))
	assert.ErrorIs(t, err, entity.ErrUndecodableImage)
}

func TestDecodeRejectsOversizedHeader(t *testing.T) {
	decoder := &imageDecoder{
		storage:   storage.NewFileStorage(t.TempDir()),
		maxSide:   MaxDesignSide,
		maxPixels: 100 * 100,
		mockups:   make(map[string]image.Image),
	}

	_, err := decoder.Decode(bytes.NewReader(encodePNG(t, 200, 120)))
	assert.ErrorIs(t, err, entity.ErrImageTooLarge)

	img, err := decoder.Decode(bytes.NewReader(encodePNG(t, 100, 100)))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
}

func TestDecodeRejectsTruncatedImage(t *testing.T) {
	decoder := NewImageDecoder(storage.NewFileStorage(t.TempDir()))
	data := encodePNG(t, 50, 50)

	_, err := decoder.Decode(bytes.NewReader(data[:len(data)/2]))
	assert.ErrorIs(t, err, entity.ErrUndecodableImage)
}

func TestLoadMockup(t *testing.T) {
	fs := storage.NewFileStorage(t.TempDir())
	require.NoError(t, fs.Save("mockups/tshirt/black/front.png", bytes.NewReader(encodePNG(t, 400, 500))))
	decoder := NewImageDecoder(fs)

	img, err := decoder.LoadMockup("mockups/tshirt/black/front.png")
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())

	// cached copy survives removal of the file
	require.NoError(t, fs.Delete("mockups/tshirt/black/front.png"))
	again, err := decoder.LoadMockup("mockups/tshirt/black/front.png")
	require.NoError(t, err)
	assert.Same(t, img, again)

	_, err = decoder.LoadMockup("mockups/missing.png")
	assert.Error(t, err)
}
