package game

// Cycler is the turn pointer: a player index walked forward or backward
// around the table.
type Cycler struct {
	size      int
	current   int
	clockwise bool
}

func NewCycler(size int) *Cycler {
	return &Cycler{size: size, clockwise: true}
}

func RestoreCycler(size, current int, clockwise bool) *Cycler {
	return &Cycler{size: size, current: current, clockwise: clockwise}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Clockwise() bool {
	return c.clockwise
}

func (c *Cycler) step() int {
	if c.clockwise {
		return 1
	}
	return -1
}

// Next advances the pointer one seat in the current direction and returns
// the new index.
func (c *Cycler) Next() int {
	c.current = (c.current + c.step() + c.size) % c.size
	return c.current
}

// Peek returns the index Next would move to, without moving.
func (c *Cycler) Peek() int {
	return (c.current + c.step() + c.size) % c.size
}

func (c *Cycler) Reverse() {
	c.clockwise = !c.clockwise
}
