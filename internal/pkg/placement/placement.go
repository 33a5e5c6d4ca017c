// Package placement holds the per-side design state and the gesture and
// alignment logic that mutates it inside the print area.
package placement

import (
	"image"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
)

// Ticket identifies one upload started with BeginUpload.
type Ticket uint64

// Placement is the design state of one garment side. Positions are relative
// to the top-left corner of the print area.
type Placement struct {
	side    entity.Side
	bounds  entity.Bounds
	minSize int

	img         image.Image
	position    entity.Point
	translation entity.Point
	size        entity.Size

	// generation changes whenever the held image is replaced or dropped;
	// gestures started on an older generation are stale.
	generation uint64
	// issued is the last ticket handed out; applied is the floor a
	// completion must beat. Clear raises the floor to issued.
	issued  Ticket
	applied Ticket
}

func New(side entity.Side, bounds entity.Bounds, minSize int) *Placement {
	if minSize <= 0 {
		minSize = entity.DefaultMinSize
	}
	return &Placement{
		side:    side,
		bounds:  bounds,
		minSize: minSize,
		size:    entity.Size{Width: bounds.Width, Height: bounds.Height},
	}
}

// SetImage replaces the held image and resets position, size and any live
// transform. A nil image is ignored.
func (p *Placement) SetImage(img image.Image) {
	if img == nil {
		return
	}
	p.img = img
	p.reset()
}

// Clear drops the image and invalidates pending uploads.
func (p *Placement) Clear() {
	p.img = nil
	p.applied = p.issued
	p.reset()
}

func (p *Placement) reset() {
	p.position = entity.Point{}
	p.translation = entity.Point{}
	p.size = entity.Size{Width: p.bounds.Width, Height: p.bounds.Height}
	p.generation++
}

// BeginUpload marks the start of an asynchronous decode.
func (p *Placement) BeginUpload() Ticket {
	p.issued++
	return p.issued
}

// CompleteUpload installs img unless a newer upload was already applied or
// the side was cleared after t was issued. A failed upload never completes,
// so it cannot shadow an older one still decoding. It reports whether the
// image was applied.
func (p *Placement) CompleteUpload(t Ticket, img image.Image) bool {
	if t <= p.applied || img == nil {
		return false
	}
	p.SetImage(img)
	p.applied = t
	return true
}

func (p *Placement) IsPresent() bool { return p.img != nil }

func (p *Placement) Image() image.Image { return p.img }

func (p *Placement) Side() entity.Side { return p.side }

func (p *Placement) Bounds() entity.Bounds { return p.bounds }

func (p *Placement) Position() entity.Point { return p.position }

func (p *Placement) Translation() entity.Point { return p.translation }

func (p *Placement) Size() entity.Size { return p.size }

func (p *Placement) Generation() uint64 { return p.generation }

// Effective resolves the committed position and the live translation into
// a single offset.
func (p *Placement) Effective() entity.Point {
	return p.position.Add(p.translation)
}

// View returns the wire form of the placement.
func (p *Placement) View(phase Phase) entity.PlacementView {
	return entity.PlacementView{
		Side:        p.side,
		Present:     p.IsPresent(),
		Position:    p.position,
		Translation: p.translation,
		Size:        p.size,
		Phase:       phase.String(),
	}
}
