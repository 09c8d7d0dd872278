package lookup

import (
	"context"
	"strings"
	"sync"
	"time"

	errors "github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/google/uuid"

	"github.com/Laisky/weather-widget/library/log"
	"github.com/Laisky/weather-widget/library/weather"
)

// Provider fetches current conditions for a city name.
// *weather.Client implements it.
type Provider interface {
	Current(ctx context.Context, city string) (*weather.Observation, error)
}

// Ticket identifies one lookup issued by Begin.
type Ticket struct {
	// Seq increases with every lookup; the highest Seq is the current one.
	Seq uint64
	// ID correlates log lines of one lookup.
	ID    string
	Query string
}

// Outcome is what a lookup produced.
type Outcome struct {
	Result *weather.Observation
	Err    error
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger overrides the controller logger.
func WithLogger(logger logSDK.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMessages sets the display strings used for failures.
func WithMessages(messages Messages) Option {
	return func(c *Controller) {
		c.messages = messages
	}
}

// WithLastSettledWins disables stale-outcome filtering: whichever lookup
// settles last overwrites the state, even if a newer lookup was issued.
func WithLastSettledWins() Option {
	return func(c *Controller) {
		c.discardStale = false
	}
}

// Controller mediates between the query text and the provider.
// It is safe for concurrent use.
type Controller struct {
	provider     Provider
	logger       logSDK.Logger
	messages     Messages
	discardStale bool

	mu    sync.Mutex
	query string
	state State
	seq   uint64
}

// NewController constructs a controller in the idle state.
func NewController(provider Provider, opts ...Option) (*Controller, error) {
	if provider == nil {
		return nil, errors.New("weather provider is required")
	}

	c := &Controller{
		provider:     provider,
		logger:       log.Logger.Named("lookup"),
		messages:     MessagesZhTW,
		discardStale: true,
		state:        IdleState(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c, nil
}

// Messages returns the display strings of the controller.
func (c *Controller) Messages() Messages {
	return c.messages
}

// UpdateQuery replaces the query text. It never triggers a lookup.
func (c *Controller) UpdateQuery(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = text
}

// Query returns the current query text.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// State returns the current lookup state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// View returns the view derived from the current state.
func (c *Controller) View() View {
	return c.State().View()
}

// Search runs one lookup for the current query and returns the state it settled to.
// A blank query is a no-op that returns the unchanged state.
func (c *Controller) Search(ctx context.Context) State {
	ticket, ok := c.Begin()
	if !ok {
		return c.State()
	}

	c.Settle(ticket, c.Fetch(ctx, ticket))
	return c.State()
}

// Begin starts a lookup: it moves the state to loading, dropping any previous
// result or error, and issues a ticket. It reports false, leaving the state
// untouched, when the query is blank.
func (c *Controller) Begin() (Ticket, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	query := strings.TrimSpace(c.query)
	if query == "" {
		return Ticket{}, false
	}

	c.seq++
	c.state = LoadingState()
	ticket := Ticket{
		Seq:   c.seq,
		ID:    uuid.NewString(),
		Query: query,
	}

	c.logger.Debug("lookup started",
		zap.String("lookup_id", ticket.ID),
		zap.Uint64("seq", ticket.Seq),
		zap.String("query", query))
	return ticket, true
}

// Fetch calls the provider for the ticket's query. It never panics:
// a panicking provider is reported as an unknown failure.
func (c *Controller) Fetch(ctx context.Context, ticket Ticket) (out Outcome) {
	startAt := time.Now()
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{Err: weather.NewLookupError(weather.KindUnknown, 0,
				errors.Errorf("weather provider panic: %v", r))}
		}

		c.logger.Debug("lookup fetched",
			zap.String("lookup_id", ticket.ID),
			zap.Bool("ok", out.Err == nil),
			zap.Duration("cost", time.Since(startAt)))
	}()

	result, err := c.provider.Current(ctx, ticket.Query)
	if err != nil {
		return Outcome{Err: err}
	}
	if result == nil {
		return Outcome{Err: weather.NewLookupError(weather.KindMalformed, 0,
			errors.New("weather provider returned no observation"))}
	}

	return Outcome{Result: result}
}

// Settle applies an outcome and clears the loading state.
// Outcomes of superseded tickets are discarded and Settle reports false,
// unless the controller was built WithLastSettledWins.
func (c *Controller) Settle(ticket Ticket, out Outcome) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	logger := c.logger.With(
		zap.String("lookup_id", ticket.ID),
		zap.Uint64("seq", ticket.Seq),
		zap.String("query", ticket.Query))

	if c.discardStale && ticket.Seq != c.seq {
		logger.Debug("discard stale lookup outcome", zap.Uint64("current_seq", c.seq))
		return false
	}

	if out.Err != nil || out.Result == nil {
		err := out.Err
		if err == nil {
			err = weather.NewLookupError(weather.KindMalformed, 0,
				errors.New("weather provider returned no observation"))
		}
		kind := weather.KindOf(err)
		logger.Warn("lookup failed", zap.String("kind", string(kind)), zap.Error(err))
		c.state = FailedState(kind, c.messages.Describe(kind))
		return true
	}

	logger.Info("lookup succeeded",
		zap.String("location", out.Result.Location),
		zap.Float64("temperature_c", out.Result.TemperatureC))
	c.state = SucceededState(out.Result)
	return true
}
