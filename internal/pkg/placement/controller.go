package placement

import "github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"

type Phase int

const (
	Idle Phase = iota
	Dragging
	Resizing
)

func (ph Phase) String() string {
	switch ph {
	case Dragging:
		return "dragging"
	case Resizing:
		return "resizing"
	default:
		return "idle"
	}
}

// Controller turns pointer gestures into placement updates. Pointer
// coordinates are page coordinates; origin is where the print area's
// top-left corner sits on the page.
//
// Drags are clamped to the print area only when they end. Resizes are
// clamped on every move.
type Controller struct {
	p      *Placement
	origin entity.Point

	phase    Phase
	gen      uint64
	grab     entity.Point
	start    entity.Point
	baseline entity.Size
}

func NewController(p *Placement, origin entity.Point) *Controller {
	return &Controller{p: p, origin: origin}
}

func (c *Controller) Phase() Phase { return c.phase }

func (c *Controller) Placement() *Placement { return c.p }

// StartDrag records where inside the image the pointer grabbed it, so the
// image follows the pointer without jumping.
func (c *Controller) StartDrag(pointer entity.Point) bool {
	if c.phase != Idle || !c.p.IsPresent() {
		return false
	}
	topLeft := c.origin.Add(c.p.Effective())
	c.grab = pointer.Sub(topLeft)
	c.gen = c.p.Generation()
	c.phase = Dragging
	return true
}

func (c *Controller) StartResize(pointer entity.Point) bool {
	if c.phase != Idle || !c.p.IsPresent() {
		return false
	}
	c.start = pointer
	c.baseline = c.p.Size()
	c.gen = c.p.Generation()
	c.phase = Resizing
	return true
}

func (c *Controller) Move(pointer entity.Point) bool {
	if !c.active() {
		return false
	}
	switch c.phase {
	case Dragging:
		topLeft := pointer.Sub(c.origin).Sub(c.grab)
		c.p.translation = topLeft.Sub(c.p.position)
	case Resizing:
		delta := pointer.Sub(c.start)
		c.p.size = clampSize(entity.Size{
			Width:  c.baseline.Width + delta.X,
			Height: c.baseline.Height + delta.Y,
		}, c.p.minSize, c.p.bounds)
	}
	return true
}

// End commits the gesture. A drag commits its clamped live offset; a
// resize drops any live translation so only the committed position counts.
func (c *Controller) End() bool {
	if !c.active() {
		return false
	}
	switch c.phase {
	case Dragging:
		c.p.position = clampPosition(c.p.Effective(), c.p.size, c.p.bounds)
	case Resizing:
		c.p.position = clampPosition(c.p.position, c.p.size, c.p.bounds)
	}
	c.p.translation = entity.Point{}
	c.phase = Idle
	return true
}

// Cancel abandons the gesture and restores the state it started from.
func (c *Controller) Cancel() {
	if c.active() {
		if c.phase == Resizing {
			c.p.size = c.baseline
		}
		c.p.translation = entity.Point{}
	}
	c.phase = Idle
}

// Handle dispatches a wire gesture event.
func (c *Controller) Handle(ev entity.GestureEvent) bool {
	pointer := entity.Point{X: ev.X, Y: ev.Y}
	switch ev.Kind {
	case entity.GestureDragStart:
		return c.StartDrag(pointer)
	case entity.GestureResizeStart:
		return c.StartResize(pointer)
	case entity.GestureMove:
		return c.Move(pointer)
	case entity.GestureEnd:
		return c.End()
	case entity.GestureCancel:
		c.Cancel()
		return true
	}
	return false
}

// active reports whether a gesture is in flight on the current image.
// A gesture whose image was replaced or cleared is dropped.
func (c *Controller) active() bool {
	if c.phase == Idle {
		return false
	}
	if c.gen != c.p.Generation() || !c.p.IsPresent() {
		c.phase = Idle
		return false
	}
	return true
}
