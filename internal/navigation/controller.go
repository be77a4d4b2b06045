package navigation

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("invalid transition")

type navOptions struct {
	popUpTo   Screen
	inclusive bool
	hasPopUp  bool
}

type Option func(*navOptions)

// PopUpTo pops the back stack down to the newest entry for s before the
// destination is pushed. With inclusive set, that entry is popped too.
func PopUpTo(s Screen, inclusive bool) Option {
	return func(o *navOptions) {
		o.popUpTo = s
		o.inclusive = inclusive
		o.hasPopUp = true
	}
}

// Controller tracks the active screen and the back stack. The top of the
// stack is always the active screen. It is not safe for concurrent use;
// the UI loop is its only caller.
type Controller struct {
	stack []Screen
}

func New() *Controller {
	return &Controller{stack: []Screen{ScreenSplash}}
}

func (c *Controller) Current() Screen {
	return c.stack[len(c.stack)-1]
}

// History returns a copy of the back stack, oldest first.
func (c *Controller) History() []Screen {
	out := make([]Screen, len(c.stack))
	copy(out, c.stack)
	return out
}

func (c *Controller) Contains(s Screen) bool {
	for _, e := range c.stack {
		if e == s {
			return true
		}
	}
	return false
}

func (c *Controller) CanGoBack() bool {
	return len(c.stack) > 1
}

// Back pops the active screen. It reports false when nothing is left to
// return to.
func (c *Controller) Back() bool {
	if !c.CanGoBack() {
		return false
	}
	c.stack = c.stack[:len(c.stack)-1]
	return true
}

// Navigate moves from the active screen to to. Only edges of the fixed
// topology are accepted; anything else leaves the state untouched.
func (c *Controller) Navigate(to Screen, opts ...Option) error {
	from := c.Current()
	next, ok := Next(from)
	if !ok || next != to {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	var o navOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.hasPopUp {
		c.popUpTo(o.popUpTo, o.inclusive)
	}
	c.stack = append(c.stack, to)
	return nil
}

func (c *Controller) popUpTo(s Screen, inclusive bool) {
	for i := len(c.stack) - 1; i >= 0; i-- {
		if c.stack[i] != s {
			continue
		}
		if inclusive {
			c.stack = c.stack[:i]
		} else {
			c.stack = c.stack[:i+1]
		}
		return
	}
}

// SplashElapsed replaces Splash with Connection.
func (c *Controller) SplashElapsed() error {
	return c.Navigate(ScreenConnection, PopUpTo(ScreenSplash, true))
}

// Connected pushes Loading on top of Connection.
func (c *Controller) Connected() error {
	return c.Navigate(ScreenLoading)
}

// LoadingComplete replaces Loading with Dashboard.
func (c *Controller) LoadingComplete() error {
	return c.Navigate(ScreenDashboard, PopUpTo(ScreenLoading, true))
}
