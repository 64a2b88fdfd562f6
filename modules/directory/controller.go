package directory

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/dmitrymomot/userdir/pkg/debounce"
	"github.com/dmitrymomot/userdir/pkg/logger"
	"github.com/dmitrymomot/userdir/pkg/statemachine"
)

// ErrorMessage is shown when a fetch fails.
const ErrorMessage = "Failed to load data. Try again or check your connection."

// DefaultSearchDebounce is the quiet period applied to search input.
const DefaultSearchDebounce = 180 * time.Millisecond

// State is the fetch lifecycle state.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
)

type lifecycleEvent string

const (
	fetchStarted lifecycleEvent = "fetch_started"
	fetchSettled lifecycleEvent = "fetch_settled"
)

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithSearchDebounce sets the search quiet period. Non-positive values keep
// DefaultSearchDebounce.
func WithSearchDebounce(d time.Duration) ControllerOption {
	return func(c *Controller) {
		if d > 0 {
			c.searchWait = d
		}
	}
}

// Controller owns the full and filtered collections and drives the Screen.
// All methods are safe for concurrent use.
type Controller struct {
	fetcher    Fetcher
	screen     *Screen
	renderer   *Renderer
	log        *slog.Logger
	searchWait time.Duration
	search     *debounce.Debouncer[Criteria]

	// lifeMu pairs the in-flight count with the lifecycle transition it drives.
	lifeMu    sync.Mutex
	inFlight  int
	lifecycle *statemachine.Machine[State, lifecycleEvent]

	mu       sync.Mutex
	users    []User
	filtered []User
	loaded   bool
	baseCtx  context.Context

	background conc.WaitGroup
}

// NewController creates a Controller in StateIdle with empty collections.
func NewController(fetcher Fetcher, screen *Screen, opts ...ControllerOption) *Controller {
	c := &Controller{
		fetcher:    fetcher,
		screen:     screen,
		renderer:   NewRenderer(screen),
		log:        slog.Default(),
		searchWait: DefaultSearchDebounce,
		baseCtx:    context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.Component("directory"))

	c.search = debounce.New(c.searchWait, c.filter,
		debounce.WithPanicHandler(func(err error) {
			c.log.Error("search panicked", logger.Error(err))
		}),
	)

	c.lifecycle = statemachine.New[State, lifecycleEvent](StateIdle)
	c.lifecycle.Add(StateIdle, fetchStarted, StateLoading,
		statemachine.WithAction(func(context.Context, State, State, any) error {
			c.screen.ShowSpinner(true)
			return nil
		}))
	c.lifecycle.Add(StateLoading, fetchSettled, StateIdle,
		statemachine.WithGuard[State](func(_ context.Context, remaining any) bool {
			return remaining.(int) == 0
		}),
		statemachine.WithAction(func(context.Context, State, State, any) error {
			c.screen.ShowSpinner(false)
			return nil
		}))

	return c
}

// Start records ctx as the parent of background fetches and triggers the
// initial load.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	c.baseCtx = ctx
	c.mu.Unlock()
	c.Refresh()
}

// Refresh fetches a new batch in the background. Current criteria are
// ignored: a successful fetch always shows the full new set.
func (c *Controller) Refresh() {
	c.mu.Lock()
	ctx := c.baseCtx
	c.mu.Unlock()

	c.background.Go(func() {
		_ = c.Fetch(ctx)
	})
}

// Fetch loads a batch and updates the Screen. On failure the previous full
// collection is kept, the cards are cleared and the error message shown.
// The spinner is hidden once no fetch remains in flight.
func (c *Controller) Fetch(ctx context.Context) error {
	c.screen.ShowMessage("", false)
	c.begin(ctx)
	defer c.settle(ctx)

	start := time.Now()
	users, err := c.fetcher.FetchUsers(ctx)
	if err != nil {
		c.log.ErrorContext(ctx, "fetch failed", logger.Error(err), logger.Duration(time.Since(start)))

		c.mu.Lock()
		c.screen.ShowMessage(ErrorMessage, true)
		c.screen.ClearCards()
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.users = users
	c.filtered = slices.Clone(users)
	c.loaded = true
	c.renderer.Render(c.filtered)
	c.mu.Unlock()

	c.log.InfoContext(ctx, "users loaded", logger.Count(len(users)), logger.Duration(time.Since(start)))
	return nil
}

// Search schedules ApplyFilters after the debounce window; only the most
// recent criteria of a burst are applied.
func (c *Controller) Search(criteria Criteria) {
	c.search.Call(criteria)
}

// ApplyFilters filters the full collection and renders the result
// immediately. A pending search is dropped: criteria always carry both
// inputs, so this call supersedes it.
func (c *Controller) ApplyFilters(criteria Criteria) {
	c.search.Cancel()
	c.filter(criteria)
}

func (c *Controller) filter(criteria Criteria) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filtered = Filter(c.users, criteria)
	c.renderer.Render(c.filtered)
}

// Users returns a copy of the full collection.
func (c *Controller) Users() []User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.users)
}

// Filtered returns a copy of the filtered collection.
func (c *Controller) Filtered() []User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.filtered)
}

// Lookup finds a user in the full collection by ID.
func (c *Controller) Lookup(id string) (User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := slices.IndexFunc(c.users, func(u User) bool { return u.ID == id })
	if i < 0 {
		return User{}, false
	}
	return c.users[i], true
}

func (c *Controller) State() State {
	return c.lifecycle.Current()
}

// Ready reports ErrNotLoaded until a fetch has succeeded.
func (c *Controller) Ready(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return ErrNotLoaded
	}
	return nil
}

// Close drops a pending search and waits for background fetches. Cancel the
// context given to Start first to abort them.
func (c *Controller) Close() {
	c.search.Cancel()
	c.background.Wait()
}

func (c *Controller) begin(ctx context.Context) {
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()
	c.inFlight++
	c.advance(ctx, fetchStarted)
}

func (c *Controller) settle(ctx context.Context) {
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()
	c.inFlight--
	c.advance(ctx, fetchSettled)
}

// advance fires ev when the lifecycle accepts it: a second fetch start while
// Loading, or a settle with fetches still in flight, leaves the state as is.
// Callers hold lifeMu.
func (c *Controller) advance(ctx context.Context, ev lifecycleEvent) {
	if !c.lifecycle.CanFire(ctx, ev, c.inFlight) {
		return
	}
	if err := c.lifecycle.Fire(ctx, ev, c.inFlight); err != nil {
		c.log.WarnContext(ctx, "lifecycle transition failed", logger.Error(err))
	}
}
