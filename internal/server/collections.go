package server

import (
	"net/http"

	"github.com/msvens/pfolio/internal/api"
)

type collectionsPage struct {
	Collections []api.Collection
}

type collectionPage struct {
	Collection *api.Collection
}

func (s *pserver) handleCollections(r *http.Request) (string, interface{}, error) {
	collections, err := s.q.Collections(r.Context(), api.ScopePublic)
	if err != nil {
		return "", nil, err
	}
	return "collections.html", collectionsPage{Collections: collections}, nil
}

// handleCollection lists a collection's photos. Collection scope also
// shows COLLECTION_ONLY photos, this is the one place they surface
func (s *pserver) handleCollection(r *http.Request) (string, interface{}, error) {
	slug := Var(r, "slug")
	collection, err := s.q.Collection(r.Context(), slug, api.ScopeCollection)
	if err != nil {
		return "", nil, err
	}
	if collection == nil {
		return "", nil, s.notFound("collection not found")
	}
	return "collection.html", collectionPage{Collection: collection}, nil
}
