package placement

import "github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampPosition keeps a rectangle of the given size fully inside the bounds box.
func clampPosition(pos entity.Point, size entity.Size, b entity.Bounds) entity.Point {
	return entity.Point{
		X: clamp(pos.X, 0, b.Width-size.Width),
		Y: clamp(pos.Y, 0, b.Height-size.Height),
	}
}

func clampSize(size entity.Size, min int, b entity.Bounds) entity.Size {
	return entity.Size{
		Width:  clamp(size.Width, min, b.Width),
		Height: clamp(size.Height, min, b.Height),
	}
}
