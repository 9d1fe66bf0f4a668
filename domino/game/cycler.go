package game

// Cycler maps a running turn count onto seats, starting from the opener.
type Cycler struct {
	count   int
	first   int
	turn    int
	started bool
}

func NewCycler(count int) *Cycler {
	return &Cycler{count: count}
}

func (c *Cycler) Start(first int) {
	c.first = first
	c.turn = 0
	c.started = true
}

func (c *Cycler) Started() bool {
	return c.started
}

// First is only meaningful once Started.
func (c *Cycler) First() int {
	return c.first
}

func (c *Cycler) Turn() int {
	return c.turn
}

func (c *Cycler) Current() int {
	return (c.first + c.turn) % c.count
}

func (c *Cycler) Next() int {
	c.turn++
	return c.Current()
}

// ForEach visits seats in play order from the current one.
func (c *Cycler) ForEach(function func(seat int)) {
	for offset := 0; offset < c.count; offset++ {
		function((c.Current() + offset) % c.count)
	}
}
