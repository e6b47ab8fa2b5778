package lava

import "fmt"

// Driver owns a fixed, ordered set of lamps sharing one surface. The host
// calls Tick once per refresh; later lamps are drawn on top of earlier ones.
type Driver struct {
	lamps  []*Lamp
	frames int
}

// NewDriver returns a driver advancing lamps in the given order.
func NewDriver(lamps ...*Lamp) *Driver {
	return &Driver{lamps: append([]*Lamp(nil), lamps...)}
}

// Lamps returns the owned lamps in drawing order.
func (d *Driver) Lamps() []*Lamp {
	return append([]*Lamp(nil), d.lamps...)
}

// Frames returns the number of completed ticks.
func (d *Driver) Frames() int { return d.frames }

// Tick clears s and advances every lamp by one frame.
func (d *Driver) Tick(s Surface) error {
	s.Clear()
	for i, l := range d.lamps {
		if err := l.AdvanceFrame(s); err != nil {
			return fmt.Errorf("lamp %d: %w", i, err)
		}
	}
	d.frames++
	return nil
}
