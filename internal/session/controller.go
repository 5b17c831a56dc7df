package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"codeberg.org/snonux/linguist/internal/logging"
)

// Controller owns the session state. All transitions run on the goroutine
// executing Run; commands run on their own goroutines and post their
// completion back through Dispatch.
type Controller struct {
	exec   *Executor
	logger *log.Logger

	msgs chan Msg
	done chan struct{}

	mu    sync.RWMutex
	state State

	subMu       sync.Mutex
	subscribers []func(State)

	wg sync.WaitGroup
}

// NewController creates a controller starting from initial
func NewController(initial State, exec *Executor, logger *log.Logger) *Controller {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Controller{
		exec:   exec,
		logger: logger,
		msgs:   make(chan Msg, 64),
		done:   make(chan struct{}),
		state:  initial.Clone(),
	}
}

// Subscribe registers fn to receive a snapshot after every transition.
// fn runs on the controller goroutine and must not block.
func (c *Controller) Subscribe(fn func(State)) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// State returns a snapshot of the current state
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Clone()
}

// Dispatch queues msg for the controller. It is safe to call from any
// goroutine and returns immediately once the controller has stopped.
func (c *Controller) Dispatch(msg Msg) {
	select {
	case c.msgs <- msg:
	case <-c.done:
	}
}

// Run processes messages until ctx is cancelled, then waits for running commands
func (c *Controller) Run(ctx context.Context) {
	defer func() {
		close(c.done)
		c.wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-c.msgs:
			c.apply(ctx, msg)
		}
	}
}

func (c *Controller) apply(ctx context.Context, msg Msg) {
	c.mu.Lock()
	next, cmds := Reduce(c.state, msg)
	c.state = next
	c.mu.Unlock()

	c.logger.Debug("Applied message", "msg", fmt.Sprintf("%T", msg), "commands", len(cmds))

	c.subMu.Lock()
	subs := append([]func(State){}, c.subscribers...)
	c.subMu.Unlock()
	for _, fn := range subs {
		fn(next.Clone())
	}

	for _, cmd := range cmds {
		c.wg.Add(1)
		go func(cmd Command) {
			defer c.wg.Done()
			if reply := c.exec.Execute(ctx, cmd); reply != nil {
				c.Dispatch(reply)
			}
		}(cmd)
	}
}

// RunSync applies msgs to s and executes the resulting commands inline,
// feeding each completion back in order until no work is left. The
// command line front-end uses it for one-shot translations.
func RunSync(ctx context.Context, exec *Executor, s State, msgs ...Msg) State {
	queue := append([]Msg(nil), msgs...)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]

		var cmds []Command
		s, cmds = Reduce(s, msg)
		for _, cmd := range cmds {
			if reply := exec.Execute(ctx, cmd); reply != nil {
				queue = append(queue, reply)
			}
		}
	}
	return s
}
