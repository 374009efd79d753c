package ripple

// Completion — одноразовый сигнал окончания анимации. Resolve и Abandon
// срабатывают не более одного раза, повторные вызовы ничего не делают.
type Completion struct {
	done      chan struct{}
	settled   bool
	abandoned bool
}

func NewCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

// Resolve marks the animation as finished. Returns true only on the first call
// and only if the completion was not abandoned.
func (c *Completion) Resolve() bool {
	if c.settled {
		return false
	}
	c.settled = true
	close(c.done)
	return true
}

// Abandon closes the completion without reporting it as finished.
func (c *Completion) Abandon() {
	if c.settled {
		return
	}
	c.settled = true
	c.abandoned = true
	close(c.done)
}

// Done закрывается при Resolve или Abandon.
func (c *Completion) Done() <-chan struct{} { return c.done }

func (c *Completion) Abandoned() bool { return c.abandoned }

func (c *Completion) Settled() bool { return c.settled }
