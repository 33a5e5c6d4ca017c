package placement

import (
	"image"
	"image/color"
	"testing"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solidImage creates a filled test image.
func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func newTestPlacement(side entity.Side) *Placement {
	return New(side, entity.DefaultBounds, entity.DefaultMinSize)
}

func TestSetImageResetsState(t *testing.T) {
	p := newTestPlacement(entity.SideFront)
	require.False(t, p.IsPresent())

	p.SetImage(solidImage(10, 10, color.RGBA{R: 255, A: 255}))
	require.True(t, p.IsPresent())

	p.position = entity.Point{X: 40, Y: 10}
	p.translation = entity.Point{X: 3, Y: 4}
	p.size = entity.Size{Width: 60, Height: 60}
	gen := p.Generation()

	p.SetImage(solidImage(10, 10, color.RGBA{G: 255, A: 255}))

	assert.Equal(t, entity.Point{}, p.Position())
	assert.Equal(t, entity.Point{}, p.Translation())
	assert.Equal(t, entity.Size{Width: 150, Height: 150}, p.Size())
	assert.NotEqual(t, gen, p.Generation())
}

func TestSetImageNilIsNoop(t *testing.T) {
	p := newTestPlacement(entity.SideFront)
	img := solidImage(10, 10, color.RGBA{B: 255, A: 255})
	p.SetImage(img)
	p.position = entity.Point{X: 7, Y: 8}

	p.SetImage(nil)

	assert.True(t, p.IsPresent())
	assert.Equal(t, entity.Point{X: 7, Y: 8}, p.Position())
}

func TestClear(t *testing.T) {
	p := newTestPlacement(entity.SideBack)
	p.SetImage(solidImage(10, 10, color.RGBA{A: 255}))
	p.position = entity.Point{X: 5, Y: 5}

	p.Clear()

	assert.False(t, p.IsPresent())
	assert.Nil(t, p.Image())
	assert.Equal(t, entity.Point{}, p.Position())
}

func TestEffectiveCombinesPositionAndTranslation(t *testing.T) {
	p := newTestPlacement(entity.SideFront)
	p.position = entity.Point{X: 10, Y: 20}
	p.translation = entity.Point{X: -4, Y: 6}

	assert.Equal(t, entity.Point{X: 6, Y: 26}, p.Effective())
}

func TestUploadTickets(t *testing.T) {
	first := solidImage(10, 10, color.RGBA{R: 255, A: 255})
	second := solidImage(10, 10, color.RGBA{G: 255, A: 255})

	tests := []struct {
		name    string
		run     func(p *Placement) []bool
		want    []bool
		present bool
		image   image.Image
	}{
		{
			name: "completions in issue order both apply",
			run: func(p *Placement) []bool {
				t1 := p.BeginUpload()
				t2 := p.BeginUpload()
				return []bool{p.CompleteUpload(t1, first), p.CompleteUpload(t2, second)}
			},
			want:    []bool{true, true},
			present: true,
			image:   second,
		},
		{
			name: "stale completion after newer one is dropped",
			run: func(p *Placement) []bool {
				t1 := p.BeginUpload()
				t2 := p.BeginUpload()
				return []bool{p.CompleteUpload(t2, second), p.CompleteUpload(t1, first)}
			},
			want:    []bool{true, false},
			present: true,
			image:   second,
		},
		{
			name: "failed newer upload does not shadow older one",
			run: func(p *Placement) []bool {
				t1 := p.BeginUpload()
				t2 := p.BeginUpload()
				return []bool{p.CompleteUpload(t2, nil), p.CompleteUpload(t1, first)}
			},
			want:    []bool{false, true},
			present: true,
			image:   first,
		},
		{
			name: "upload started after clear still applies",
			run: func(p *Placement) []bool {
				t1 := p.BeginUpload()
				p.Clear()
				t2 := p.BeginUpload()
				return []bool{p.CompleteUpload(t1, first), p.CompleteUpload(t2, second)}
			},
			want:    []bool{false, true},
			present: true,
			image:   second,
		},
		{
			name: "clear invalidates pending upload",
			run: func(p *Placement) []bool {
				t1 := p.BeginUpload()
				p.Clear()
				return []bool{p.CompleteUpload(t1, first)}
			},
			want:    []bool{false},
			present: false,
		},
		{
			name: "undecoded upload is ignored",
			run: func(p *Placement) []bool {
				t1 := p.BeginUpload()
				return []bool{p.CompleteUpload(t1, nil)}
			},
			want:    []bool{false},
			present: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlacement(entity.SideFront)
			assert.Equal(t, tt.want, tt.run(p))
			assert.Equal(t, tt.present, p.IsPresent())
			if tt.present {
				assert.Same(t, tt.image, p.Image())
			}
		})
	}
}

func TestSidesAreIndependent(t *testing.T) {
	front := newTestPlacement(entity.SideFront)
	back := newTestPlacement(entity.SideBack)

	back.SetImage(solidImage(10, 10, color.RGBA{B: 255, A: 255}))
	back.position = entity.Point{X: 12, Y: 34}
	back.size = entity.Size{Width: 80, Height: 90}
	backImg := back.Image()
	backGen := back.Generation()

	front.SetImage(solidImage(10, 10, color.RGBA{R: 255, A: 255}))
	front.SetImage(solidImage(20, 20, color.RGBA{G: 255, A: 255}))

	assert.Same(t, backImg, back.Image())
	assert.Equal(t, entity.Point{X: 12, Y: 34}, back.Position())
	assert.Equal(t, entity.Size{Width: 80, Height: 90}, back.Size())
	assert.Equal(t, backGen, back.Generation())
}
