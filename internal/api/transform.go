package api

import (
	"bytes"
	"encoding/json"
)

// The backend never reports image dimensions so layout code gets a
// fixed ratio until the image itself has loaded
const DefaultAspectRatio = 1.5

// Shape of a variant tags/collections field
type Shape int

const (
	Absent Shape = iota
	Flat
	Junction
)

// TagShape sniffs the first element of a raw tags array. Arrays are
// assumed homogeneous: a mixed flat/junction array is not a shape the
// backend has ever produced
func TagShape(raw json.RawMessage) Shape {
	elems, ok := arrayElems(raw)
	if !ok || len(elems) == 0 {
		return Absent
	}
	if bytes.HasPrefix(bytes.TrimSpace(elems[0]), []byte(`"`)) {
		return Flat
	}
	return Junction
}

// RefShape sniffs a raw collections array: either flat summary objects
// or junction records carrying an embedded collection
func RefShape(raw json.RawMessage) Shape {
	elems, ok := arrayElems(raw)
	if !ok || len(elems) == 0 {
		return Absent
	}
	var probe rawCollectionLink
	if err := json.Unmarshal(elems[0], &probe); err != nil {
		return Absent
	}
	if probe.Collection != nil {
		return Junction
	}
	return Flat
}

func arrayElems(raw json.RawMessage) ([]json.RawMessage, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, false
	}
	return elems, true
}

func transformTags(raw json.RawMessage) []string {
	switch TagShape(raw) {
	case Flat:
		var tags []string
		if err := json.Unmarshal(raw, &tags); err != nil {
			return []string{}
		}
		return tags
	case Junction:
		var links []rawTagLink
		if err := json.Unmarshal(raw, &links); err != nil {
			return []string{}
		}
		tags := make([]string, 0, len(links))
		for _, l := range links {
			tags = append(tags, l.Tag)
		}
		return tags
	default:
		return []string{}
	}
}

func transformRefs(raw json.RawMessage) []CollectionRef {
	switch RefShape(raw) {
	case Flat:
		var refs []CollectionRef
		if err := json.Unmarshal(raw, &refs); err != nil {
			return []CollectionRef{}
		}
		return refs
	case Junction:
		var links []rawCollectionLink
		if err := json.Unmarshal(raw, &links); err != nil {
			return []CollectionRef{}
		}
		refs := make([]CollectionRef, 0, len(links))
		for _, l := range links {
			var ref CollectionRef
			if l.Collection == nil {
				continue
			}
			if err := json.Unmarshal(*l.Collection, &ref); err != nil {
				continue
			}
			refs = append(refs, ref)
		}
		return refs
	default:
		return []CollectionRef{}
	}
}

// transformExif accepts camera metadata either directly under metadata
// or wrapped one level under metadata.exif (older backend revisions)
func transformExif(raw json.RawMessage) *Exif {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	var wrapped struct {
		Exif *json.RawMessage `json:"exif"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Exif != nil {
		raw = *wrapped.Exif
	}
	var exif Exif
	if err := json.Unmarshal(raw, &exif); err != nil {
		return nil
	}
	if exif == (Exif{}) {
		return nil
	}
	return &exif
}

// TransformPhoto maps one backend photo record, in any of its observed
// shapes, to the canonical model. Pure and deterministic: it never
// errors, shape mismatches degrade to empty values
func TransformPhoto(raw RawPhoto) Photo {
	visibility := raw.Visibility
	if visibility == "" {
		visibility = Public
	}
	return Photo{
		Id: raw.Id,
		Src: ImgSrc{
			Thumbnail: raw.UrlSmall,
			Medium:    raw.UrlMedium,
			Full:      raw.UrlLarge,
		},
		AspectRatio: DefaultAspectRatio,
		Title:       raw.Title,
		Description: raw.Description,
		Location:    raw.Location,
		Tags:        transformTags(raw.Tags),
		Collections: transformRefs(raw.Collections),
		Featured:    raw.Featured,
		Visibility:  visibility,
		CapturedAt:  raw.CapturedAt,
		CreatedAt:   raw.CreatedAt,
		Exif:        transformExif(raw.Metadata),
	}
}

func TransformPhotos(raws []RawPhoto) []Photo {
	photos := make([]Photo, len(raws))
	for i, raw := range raws {
		photos[i] = TransformPhoto(raw)
	}
	return photos
}

// TransformCollection renames backend fields and computes photoCount:
// explicit server count first, embedded photos length second, zero last
func TransformCollection(raw RawCollection) Collection {
	count := 0
	if raw.Count != nil {
		count = raw.Count.Photos
	} else if raw.Photos != nil {
		count = len(raw.Photos)
	}
	var photos []Photo
	if raw.Photos != nil {
		photos = TransformPhotos(raw.Photos)
	}
	return Collection{
		Id:           raw.Id,
		Slug:         raw.Slug,
		Title:        raw.Name,
		Description:  raw.Description,
		CoverPhotoId: raw.CoverPhotoId,
		PhotoCount:   count,
		Photos:       photos,
	}
}

func TransformCollections(raws []RawCollection) []Collection {
	collections := make([]Collection, len(raws))
	for i, raw := range raws {
		collections[i] = TransformCollection(raw)
	}
	return collections
}
