package placement

import "github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"

// Align runs the alignment action bound to d. Top and bottom both center
// vertically; left and right both center horizontally.
func Align(p *Placement, d entity.Direction) (bool, error) {
	switch d {
	case entity.AlignTop, entity.AlignBottom:
		return CenterVertically(p), nil
	case entity.AlignLeft, entity.AlignRight:
		return CenterHorizontally(p), nil
	}
	return false, entity.ErrUnknownDirection
}

func CenterHorizontally(p *Placement) bool {
	if !p.IsPresent() {
		return false
	}
	p.position.X = (p.bounds.Width - p.size.Width) / 2
	p.translation = entity.Point{}
	return true
}

func CenterVertically(p *Placement) bool {
	if !p.IsPresent() {
		return false
	}
	p.position.Y = (p.bounds.Height - p.size.Height) / 2
	p.translation = entity.Point{}
	return true
}
