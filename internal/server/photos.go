package server

import (
	"net/http"
	"strings"

	"github.com/msvens/pfolio/internal/api"
	"github.com/msvens/pfolio/internal/query"
	"github.com/msvens/pfolio/internal/viewer"
	"go.uber.org/zap"
)

type galleryPage struct {
	Photos   []api.Photo
	Featured bool
	Tags     string
}

func (s *pserver) handleHome(r *http.Request) (string, interface{}, error) {
	f := query.Filter{
		Scope: api.ScopePublic,
		Limit: QPInt(r, "limit", 0),
	}
	if QPBool(r, "featured", false) {
		t := true
		f.Featured = &t
	}
	tags := r.URL.Query().Get("tag")
	if tags != "" {
		f.Tags = strings.Split(tags, ",")
	}
	if search := r.URL.Query().Get("search"); search != "" {
		f.Search = search
	}
	photos, err := s.q.Photos(r.Context(), f)
	if err != nil {
		return "", nil, err
	}
	return "gallery.html", galleryPage{Photos: photos, Featured: f.Featured != nil, Tags: tags}, nil
}

func (s *pserver) handleAbout(r *http.Request) (string, interface{}, error) {
	return "about.html", nil, nil
}

type photoPage struct {
	Photo      *api.Photo
	Collection string
	Fullscreen bool
	NextURL    string
	PrevURL    string
	BackURL    string
}

// handlePhoto renders the photo view. Navigation urls are resolved
// server side so the template only emits plain links
func (s *pserver) handlePhoto(r *http.Request) (string, interface{}, error) {
	loc := viewer.Location{
		PhotoId:    Var(r, "id"),
		Collection: r.URL.Query().Get("collection"),
		Fullscreen: r.URL.Query().Get("view") == "fullscreen",
	}
	ctx := r.Context()
	photo, err := s.q.Photo(ctx, loc.PhotoId)
	if err != nil {
		return "", nil, err
	}
	if photo == nil {
		return "", nil, s.notFound("photo not found")
	}
	page := photoPage{Photo: photo, Collection: loc.Collection, Fullscreen: loc.Fullscreen}
	if next, err := s.q.Next(ctx, loc.PhotoId, loc.Collection); err != nil {
		s.l.Errorw("could not resolve next photo", "photo", loc.PhotoId, zap.Error(err))
	} else if next != nil {
		page.NextURL = viewer.PhotoURL(next.Id, loc.Collection, loc.Fullscreen)
	}
	if prev, err := s.q.Previous(ctx, loc.PhotoId, loc.Collection); err != nil {
		s.l.Errorw("could not resolve previous photo", "photo", loc.PhotoId, zap.Error(err))
	} else if prev != nil {
		page.PrevURL = viewer.PhotoURL(prev.Id, loc.Collection, loc.Fullscreen)
	}
	if loc.Collection != "" {
		page.BackURL = "/collections/" + loc.Collection
	} else {
		page.BackURL = "/"
	}
	return "photo.html", page, nil
}

func (s *pserver) handleHealth(w http.ResponseWriter, r *http.Request) {
	setJson(w)
	if err := s.c.Health(r.Context()); err != nil {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"status":"backend unreachable"}`))
		return
	}
	w.Write([]byte(`{"status":"ok"}`))
}
