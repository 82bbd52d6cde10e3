package viewer

import (
	"context"
	"sync"

	"github.com/msvens/pfolio/internal/api"
	"go.uber.org/zap"
)

// Loader fetches photos and their neighbors. query.Service satisfies it
type Loader interface {
	Photo(ctx context.Context, id string) (*api.Photo, error)
	Next(ctx context.Context, id, collection string) (*api.Photo, error)
	Previous(ctx context.Context, id, collection string) (*api.Photo, error)
}

// History receives address changes the controller initiates. Popstate
// style navigation goes the other way, through OnPopState
type History interface {
	Push(url string)
}

type State struct {
	Current      *api.Photo
	Collection   string
	NextId       string
	PrevId       string
	LightboxOpen bool
	Zoomed       bool
}

// Controller drives photo navigation. All transitions are serialized
// and stamped with a generation counter so a slow fetch can never
// overwrite the state of a newer navigation
type Controller struct {
	loader  Loader
	history History
	l       *zap.SugaredLogger

	mu    sync.Mutex
	gen   uint64
	state State
}

func NewController(loader Loader, history History, l *zap.SugaredLogger) *Controller {
	return &Controller{loader: loader, history: history, l: l}
}

// Init loads the photo named by loc and resolves its neighbors. A
// missing photo leaves the controller empty and returns nil
func (c *Controller) Init(ctx context.Context, loc Location) error {
	c.mu.Lock()
	c.gen++
	stamp := c.gen
	c.mu.Unlock()
	return c.load(ctx, stamp, loc.PhotoId, loc.Collection, loc.Fullscreen)
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Next advances to the following photo. At the end of the list it is a
// no-op, there is no wrap around
func (c *Controller) Next(ctx context.Context) error {
	return c.step(ctx, func(s State) string { return s.NextId })
}

func (c *Controller) Previous(ctx context.Context) error {
	return c.step(ctx, func(s State) string { return s.PrevId })
}

func (c *Controller) step(ctx context.Context, pick func(State) string) error {
	c.mu.Lock()
	id := pick(c.state)
	if id == "" {
		c.mu.Unlock()
		return nil
	}
	c.gen++
	stamp := c.gen
	collection := c.state.Collection
	fullscreen := c.state.LightboxOpen
	c.mu.Unlock()

	if err := c.load(ctx, stamp, id, collection, fullscreen); err != nil {
		c.l.Errorw("navigation failed", "photo", id, zap.Error(err))
		return err
	}
	c.mu.Lock()
	pushed := c.gen == stamp
	c.mu.Unlock()
	if pushed && c.history != nil {
		c.history.Push(PhotoURL(id, collection, fullscreen))
	}
	return nil
}

// load fetches the photo and its neighbors, then commits only if no
// newer navigation started while it was in flight
func (c *Controller) load(ctx context.Context, stamp uint64, id, collection string, fullscreen bool) error {
	photo, err := c.loader.Photo(ctx, id)
	if err != nil {
		return err
	}
	if photo == nil {
		c.commit(stamp, State{Collection: collection, LightboxOpen: fullscreen})
		return nil
	}
	next, err := c.loader.Next(ctx, id, collection)
	if err != nil {
		return err
	}
	prev, err := c.loader.Previous(ctx, id, collection)
	if err != nil {
		return err
	}
	s := State{Current: photo, Collection: collection, LightboxOpen: fullscreen}
	if next != nil {
		s.NextId = next.Id
	}
	if prev != nil {
		s.PrevId = prev.Id
	}
	c.commit(stamp, s)
	return nil
}

func (c *Controller) commit(stamp uint64, s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != stamp {
		c.l.Debugw("stale navigation dropped", "stamp", stamp, "gen", c.gen)
		return
	}
	c.state = s
}

// OnPopState resyncs from the address bar after back or forward. The
// url always wins: lightbox and collection come from it even when the
// photo itself did not change, and nothing is pushed back to history
func (c *Controller) OnPopState(ctx context.Context, loc Location) error {
	c.mu.Lock()
	sameId := c.state.Current != nil && c.state.Current.Id == loc.PhotoId
	if sameId {
		c.gen++
		c.state.Collection = loc.Collection
		c.state.LightboxOpen = loc.Fullscreen
		if !loc.Fullscreen {
			c.state.Zoomed = false
		}
		c.mu.Unlock()
		return nil
	}
	c.gen++
	stamp := c.gen
	c.mu.Unlock()
	return c.load(ctx, stamp, loc.PhotoId, loc.Collection, loc.Fullscreen)
}

func (c *Controller) OpenLightbox() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Current == nil || c.state.LightboxOpen {
		return
	}
	// stamping invalidates any navigation still in flight
	c.gen++
	c.state.LightboxOpen = true
	if c.history != nil {
		c.history.Push(PhotoURL(c.state.Current.Id, c.state.Collection, true))
	}
}

// CloseLightbox also resets zoom, a reopened lightbox starts unzoomed
func (c *Controller) CloseLightbox() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.LightboxOpen {
		return
	}
	c.gen++
	c.state.LightboxOpen = false
	c.state.Zoomed = false
	if c.history != nil && c.state.Current != nil {
		c.history.Push(PhotoURL(c.state.Current.Id, c.state.Collection, false))
	}
}

func (c *Controller) ToggleZoom() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.LightboxOpen {
		return
	}
	c.gen++
	c.state.Zoomed = !c.state.Zoomed
}

// HandleKey maps keyboard shortcuts. Keys only act while the lightbox
// is open so typing elsewhere on the page never navigates
func (c *Controller) HandleKey(ctx context.Context, key string) error {
	c.mu.Lock()
	open := c.state.LightboxOpen
	c.mu.Unlock()
	if !open {
		return nil
	}
	switch key {
	case "Escape":
		c.CloseLightbox()
	case "ArrowRight":
		return c.Next(ctx)
	case "ArrowLeft":
		return c.Previous(ctx)
	case "z", "Z":
		c.ToggleZoom()
	}
	return nil
}
