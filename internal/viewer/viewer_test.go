package viewer

import (
	"context"
	"errors"
	"testing"

	"github.com/msvens/pfolio/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLoader struct {
	photos []api.Photo
	fail   map[string]bool
	onNext func(id string)
}

func (f *fakeLoader) find(id string) int {
	for i := range f.photos {
		if f.photos[i].Id == id {
			return i
		}
	}
	return -1
}

func (f *fakeLoader) Photo(ctx context.Context, id string) (*api.Photo, error) {
	if f.fail[id] {
		return nil, errors.New("backend unavailable")
	}
	if i := f.find(id); i >= 0 {
		p := f.photos[i]
		return &p, nil
	}
	return nil, nil
}

func (f *fakeLoader) Next(ctx context.Context, id, collection string) (*api.Photo, error) {
	if f.onNext != nil {
		f.onNext(id)
	}
	if i := f.find(id); i >= 0 && i < len(f.photos)-1 {
		p := f.photos[i+1]
		return &p, nil
	}
	return nil, nil
}

func (f *fakeLoader) Previous(ctx context.Context, id, collection string) (*api.Photo, error) {
	if i := f.find(id); i > 0 {
		p := f.photos[i-1]
		return &p, nil
	}
	return nil, nil
}

type fakeHistory struct {
	pushed []string
}

func (f *fakeHistory) Push(url string) {
	f.pushed = append(f.pushed, url)
}

func gallery() *fakeLoader {
	return &fakeLoader{photos: []api.Photo{{Id: "p1"}, {Id: "p2"}, {Id: "p3"}}}
}

func testController(t *testing.T, loader *fakeLoader) (*Controller, *fakeHistory) {
	t.Helper()
	h := &fakeHistory{}
	return NewController(loader, h, zap.NewNop().Sugar()), h
}

func TestInitResolvesNeighbors(t *testing.T) {
	c, _ := testController(t, gallery())
	require.NoError(t, c.Init(context.Background(), Location{PhotoId: "p2"}))
	s := c.State()
	require.NotNil(t, s.Current)
	assert.Equal(t, "p2", s.Current.Id)
	assert.Equal(t, "p3", s.NextId)
	assert.Equal(t, "p1", s.PrevId)
}

func TestInitAtBoundaries(t *testing.T) {
	c, _ := testController(t, gallery())
	ctx := context.Background()

	require.NoError(t, c.Init(ctx, Location{PhotoId: "p1"}))
	assert.Empty(t, c.State().PrevId)

	require.NoError(t, c.Init(ctx, Location{PhotoId: "p3"}))
	assert.Empty(t, c.State().NextId)
}

func TestNextPushesHistory(t *testing.T) {
	c, h := testController(t, gallery())
	ctx := context.Background()
	require.NoError(t, c.Init(ctx, Location{PhotoId: "p1", Collection: "iceland", Fullscreen: true}))
	require.NoError(t, c.Next(ctx))

	s := c.State()
	assert.Equal(t, "p2", s.Current.Id)
	assert.True(t, s.LightboxOpen, "fullscreen survives navigation")
	assert.Equal(t, "iceland", s.Collection)
	require.Len(t, h.pushed, 1)
	assert.Equal(t, "/photo/p2?collection=iceland&view=fullscreen", h.pushed[0])
}

func TestNextAtEndIsNoop(t *testing.T) {
	c, h := testController(t, gallery())
	ctx := context.Background()
	require.NoError(t, c.Init(ctx, Location{PhotoId: "p3"}))
	require.NoError(t, c.Next(ctx))
	assert.Equal(t, "p3", c.State().Current.Id)
	assert.Empty(t, h.pushed)
}

func TestStaleNavigationDropped(t *testing.T) {
	// a newer navigation starts while the first fetch is still
	// resolving neighbors, the first commit must lose
	loader := gallery()
	c, _ := testController(t, loader)
	ctx := context.Background()

	fired := false
	loader.onNext = func(id string) {
		if id == "p1" && !fired {
			fired = true
			loader.onNext = nil
			require.NoError(t, c.Init(ctx, Location{PhotoId: "p3"}))
		}
	}
	require.NoError(t, c.Init(ctx, Location{PhotoId: "p1"}))
	assert.True(t, fired)
	assert.Equal(t, "p3", c.State().Current.Id, "older fetch must not overwrite newer state")
}

func TestLightboxToggleWinsOverInflightNavigation(t *testing.T) {
	// closing the lightbox while a navigation is still fetching must
	// not be undone when the stale fetch tries to commit
	loader := gallery()
	c, h := testController(t, loader)
	ctx := context.Background()
	require.NoError(t, c.Init(ctx, Location{PhotoId: "p1", Fullscreen: true}))

	closed := false
	loader.onNext = func(id string) {
		if id == "p2" && !closed {
			closed = true
			c.CloseLightbox()
		}
	}
	require.NoError(t, c.Next(ctx))

	s := c.State()
	assert.True(t, closed)
	assert.False(t, s.LightboxOpen, "stale navigation must not restore the lightbox")
	assert.Equal(t, "p1", s.Current.Id)
	assert.Equal(t, []string{"/photo/p1"}, h.pushed, "only the close is pushed")
}

func TestLoadErrorLeavesStateUnchanged(t *testing.T) {
	loader := gallery()
	loader.fail = map[string]bool{"p2": true}
	c, _ := testController(t, loader)
	ctx := context.Background()
	require.NoError(t, c.Init(ctx, Location{PhotoId: "p1"}))

	require.Error(t, c.Next(ctx))
	assert.Equal(t, "p1", c.State().Current.Id)
}

func TestPopStateResyncsFromURL(t *testing.T) {
	c, h := testController(t, gallery())
	ctx := context.Background()
	require.NoError(t, c.Init(ctx, Location{PhotoId: "p1"}))
	c.OpenLightbox()
	c.ToggleZoom()
	h.pushed = nil

	// same photo, the url dropped fullscreen
	require.NoError(t, c.OnPopState(ctx, Location{PhotoId: "p1", Collection: "iceland"}))
	s := c.State()
	assert.Equal(t, "p1", s.Current.Id)
	assert.False(t, s.LightboxOpen)
	assert.False(t, s.Zoomed)
	assert.Equal(t, "iceland", s.Collection)
	assert.Empty(t, h.pushed, "popstate never pushes")

	// different photo, a refetch is needed
	require.NoError(t, c.OnPopState(ctx, Location{PhotoId: "p3", Fullscreen: true}))
	s = c.State()
	assert.Equal(t, "p3", s.Current.Id)
	assert.True(t, s.LightboxOpen)
	assert.Empty(t, h.pushed)
}

func TestLightboxLifecycle(t *testing.T) {
	c, h := testController(t, gallery())
	require.NoError(t, c.Init(context.Background(), Location{PhotoId: "p1"}))

	c.OpenLightbox()
	assert.True(t, c.State().LightboxOpen)
	c.ToggleZoom()
	assert.True(t, c.State().Zoomed)

	c.CloseLightbox()
	s := c.State()
	assert.False(t, s.LightboxOpen)
	assert.False(t, s.Zoomed, "closing resets zoom")
	assert.Equal(t, []string{"/photo/p1?view=fullscreen", "/photo/p1"}, h.pushed)
}

func TestKeysIgnoredWhileClosed(t *testing.T) {
	c, _ := testController(t, gallery())
	ctx := context.Background()
	require.NoError(t, c.Init(ctx, Location{PhotoId: "p1"}))

	require.NoError(t, c.HandleKey(ctx, "ArrowRight"))
	assert.Equal(t, "p1", c.State().Current.Id)
	require.NoError(t, c.HandleKey(ctx, "z"))
	assert.False(t, c.State().Zoomed)
}

func TestKeysWhileOpen(t *testing.T) {
	c, _ := testController(t, gallery())
	ctx := context.Background()
	require.NoError(t, c.Init(ctx, Location{PhotoId: "p1", Fullscreen: true}))

	require.NoError(t, c.HandleKey(ctx, "ArrowRight"))
	assert.Equal(t, "p2", c.State().Current.Id)
	require.NoError(t, c.HandleKey(ctx, "ArrowLeft"))
	assert.Equal(t, "p1", c.State().Current.Id)

	require.NoError(t, c.HandleKey(ctx, "Z"))
	assert.True(t, c.State().Zoomed)

	require.NoError(t, c.HandleKey(ctx, "Escape"))
	assert.False(t, c.State().LightboxOpen)
}

func TestPhotoURLRoundTrip(t *testing.T) {
	tests := []Location{
		{PhotoId: "p1"},
		{PhotoId: "p1", Collection: "iceland"},
		{PhotoId: "p1", Fullscreen: true},
		{PhotoId: "p 2", Collection: "black & white", Fullscreen: true},
	}
	for _, loc := range tests {
		got := ParseURL(PhotoURL(loc.PhotoId, loc.Collection, loc.Fullscreen))
		assert.Equal(t, loc, got)
	}
}

func TestParseURLNonPhoto(t *testing.T) {
	assert.Equal(t, Location{}, ParseURL("/collections/iceland"))
	assert.Equal(t, Location{}, ParseURL("/photo/"))
	assert.Equal(t, Location{}, ParseURL("/photo/p1/extra"))
}
