package viewer

import (
	"net/url"
	"strings"
)

// Location is the part of the viewer state that lives in the address
// bar. The url is the source of truth on history navigation
type Location struct {
	PhotoId    string
	Collection string
	Fullscreen bool
}

// PhotoURL builds the canonical address for a photo page, for example
// /photo/p1?collection=iceland&view=fullscreen
func PhotoURL(id, collection string, fullscreen bool) string {
	u := "/photo/" + url.PathEscape(id)
	q := url.Values{}
	if collection != "" {
		q.Set("collection", collection)
	}
	if fullscreen {
		q.Set("view", "fullscreen")
	}
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// ParseURL inverts PhotoURL. Any non photo address yields an empty
// Location, not an error
func ParseURL(raw string) Location {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}
	}
	if !strings.HasPrefix(u.Path, "/photo/") {
		return Location{}
	}
	id, err := url.PathUnescape(strings.TrimPrefix(u.Path, "/photo/"))
	if err != nil || id == "" || strings.Contains(id, "/") {
		return Location{}
	}
	q := u.Query()
	return Location{
		PhotoId:    id,
		Collection: q.Get("collection"),
		Fullscreen: q.Get("view") == "fullscreen",
	}
}
