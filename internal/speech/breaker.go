package speech

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sony/gobreaker"

	"codeberg.org/snonux/linguist/internal/language"
)

// breakerTrips is the number of consecutive failures that open the breaker
const breakerTrips = 3

// Breaker guards a Transcriber with a circuit breaker. Once open, calls
// fail immediately with gobreaker.ErrOpenState until the cool-down ends.
type Breaker struct {
	inner Transcriber
	cb    *gobreaker.CircuitBreaker
}

// NewBreaker wraps inner in a circuit breaker
func NewBreaker(inner Transcriber, logger *log.Logger) *Breaker {
	if logger == nil {
		logger = log.Default()
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        inner.Name(),
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerTrips
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Transcriber circuit breaker changed state", "transcriber", name, "from", from.String(), "to", to.String())
		},
	})

	return &Breaker{inner: inner, cb: cb}
}

// Transcribe implements Transcriber
func (b *Breaker) Transcribe(ctx context.Context, wavPath string, lang language.Code) (string, error) {
	text, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.Transcribe(ctx, wavPath, lang)
	})
	if err != nil {
		return "", err
	}
	return text.(string), nil
}

// Name returns the wrapped transcriber name
func (b *Breaker) Name() string {
	return b.inner.Name()
}

// IsAvailable delegates to the wrapped transcriber
func (b *Breaker) IsAvailable() error {
	return b.inner.IsAvailable()
}

// State returns the breaker state
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}
