package query

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/msvens/pfolio/internal/api"
	"github.com/msvens/pfolio/internal/client"
	"go.uber.org/zap"
)

// Service provides scope aware read and admin operations without
// leaking transport or auth concerns into page code
type Service struct {
	c *client.Client
	l *zap.SugaredLogger
}

func New(c *client.Client, l *zap.SugaredLogger) *Service {
	return &Service{c: c, l: l}
}

type Filter struct {
	Featured   *bool
	Collection string
	Tags       []string
	Scope      api.Scope
	Limit      int
	Search     string
}

const defaultLimit = 100

// Photos lists photos in server order. The scope invariant holds even
// if the backend over-returns: ineligible visibility tiers are dropped
func (s *Service) Photos(ctx context.Context, f Filter) ([]api.Photo, error) {
	scope := f.Scope
	if scope == "" {
		scope = api.ScopePublic
	}
	q := url.Values{}
	if f.Featured != nil {
		q.Set("featured", strconv.FormatBool(*f.Featured))
	}
	if f.Collection != "" {
		q.Set("collection", f.Collection)
	}
	if len(f.Tags) > 0 {
		q.Set("tag", strings.Join(f.Tags, ","))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("scope", string(scope))

	var raw []api.RawPhoto
	if err := s.c.Get(ctx, scopeMode(scope), client.PhotosPath(), q, &raw); err != nil {
		return nil, err
	}
	photos := api.TransformPhotos(raw)
	eligible := photos[:0]
	for _, p := range photos {
		if scope.Allows(p.Visibility) {
			eligible = append(eligible, p)
		}
	}
	return eligible, nil
}

// Photo returns nil, nil when the photo does not exist so callers can
// render a not found page without exception style handling
func (s *Service) Photo(ctx context.Context, id string) (*api.Photo, error) {
	return s.photo(ctx, client.Public, id)
}

func (s *Service) AdminPhoto(ctx context.Context, id string) (*api.Photo, error) {
	return s.photo(ctx, client.Admin, id)
}

func (s *Service) photo(ctx context.Context, mode client.Mode, id string) (*api.Photo, error) {
	var raw api.RawPhoto
	if err := s.c.Get(ctx, mode, client.PhotoPath(id), nil, &raw); err != nil {
		if client.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	p := api.TransformPhoto(raw)
	return &p, nil
}

func (s *Service) Collections(ctx context.Context, scope api.Scope) ([]api.Collection, error) {
	q := url.Values{}
	if scope == api.ScopeAdmin {
		q.Set("scope", string(scope))
	}
	var raw []api.RawCollection
	if err := s.c.Get(ctx, scopeMode(scope), client.CollectionsPath(), q, &raw); err != nil {
		return nil, err
	}
	return api.TransformCollections(raw), nil
}

// Collection applies the same visibility guard as Photos to the
// embedded photo list: ineligible tiers are dropped even if the
// backend embeds them. A count inferred from the embedded list is
// recomputed after filtering
func (s *Service) Collection(ctx context.Context, slug string, scope api.Scope) (*api.Collection, error) {
	if scope == "" {
		scope = api.ScopePublic
	}
	q := url.Values{}
	if scope == api.ScopeAdmin {
		q.Set("scope", string(scope))
	}
	var raw api.RawCollection
	if err := s.c.Get(ctx, scopeMode(scope), client.CollectionPath(slug), q, &raw); err != nil {
		if client.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	c := api.TransformCollection(raw)
	eligible := c.Photos[:0]
	for _, p := range c.Photos {
		if scope.Allows(p.Visibility) {
			eligible = append(eligible, p)
		}
	}
	c.Photos = eligible
	if raw.Count == nil && raw.Photos != nil {
		c.PhotoCount = len(eligible)
	}
	return &c, nil
}

// Next returns the photo after id in list order, scoped to a
// collection when slug is set, nil at the last photo. Adjacency is
// derived by refetching the ordered list, fine for gallery sized sets
func (s *Service) Next(ctx context.Context, id, collectionSlug string) (*api.Photo, error) {
	photos, err := s.neighbors(ctx, collectionSlug)
	if err != nil {
		return nil, err
	}
	for i := range photos {
		if photos[i].Id == id {
			if i == len(photos)-1 {
				return nil, nil
			}
			return &photos[i+1], nil
		}
	}
	return nil, nil
}

// Previous is the mirror of Next, nil at the first photo
func (s *Service) Previous(ctx context.Context, id, collectionSlug string) (*api.Photo, error) {
	photos, err := s.neighbors(ctx, collectionSlug)
	if err != nil {
		return nil, err
	}
	for i := range photos {
		if photos[i].Id == id {
			if i == 0 {
				return nil, nil
			}
			return &photos[i-1], nil
		}
	}
	return nil, nil
}

func (s *Service) neighbors(ctx context.Context, collectionSlug string) ([]api.Photo, error) {
	if collectionSlug != "" {
		return s.Photos(ctx, Filter{Scope: api.ScopeCollection, Collection: collectionSlug})
	}
	return s.Photos(ctx, Filter{Scope: api.ScopePublic})
}

type PhotoForm struct {
	Title       string   `schema:"title"`
	Description string   `schema:"description"`
	Location    string   `schema:"location"`
	Featured    bool     `schema:"featured"`
	CapturedAt  string   `schema:"capturedAt"`
	Tags        []string `schema:"tags"`
	Collections []string `schema:"collections"`
	Exif        *api.Exif
}

// Upload validates and sends a new photo. Validation happens before
// any network call: a file must be selected and must sniff as an
// image. When the form carries no exif it is read from the image
func (s *Service) Upload(ctx context.Context, file io.Reader, filename string, form PhotoForm) (*api.Photo, error) {
	if file == nil {
		return nil, client.BadRequestError("no image file selected")
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, client.BadRequestError("could not read image file: " + err.Error())
	}
	if len(data) == 0 {
		return nil, client.BadRequestError("no image file selected")
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, client.BadRequestError("unsupported file type " + mt.String())
	}
	if form.Exif == nil {
		exif, capturedAt := exifFromImage(data)
		form.Exif = exif
		if form.CapturedAt == "" {
			form.CapturedAt = capturedAt
		}
	}

	fields := url.Values{}
	fields.Set("title", form.Title)
	fields.Set("description", form.Description)
	fields.Set("location", form.Location)
	fields.Set("featured", strconv.FormatBool(form.Featured))
	fields.Set("capturedAt", form.CapturedAt)
	for _, tag := range form.Tags {
		fields.Add("tags[]", tag)
	}
	for _, col := range form.Collections {
		fields.Add("collections[]", col)
	}
	if form.Exif != nil {
		encoded, err := json.Marshal(form.Exif)
		if err != nil {
			return nil, client.InternalError(err.Error())
		}
		fields.Set("exif", string(encoded))
	}

	var raw api.RawPhoto
	if err = s.c.Upload(ctx, client.PhotosPath(), bytes.NewReader(data), filename, fields, &raw); err != nil {
		return nil, err
	}
	p := api.TransformPhoto(raw)
	return &p, nil
}

// PhotoUpdate is a partial update: nil fields are left out of the
// request body entirely
type PhotoUpdate struct {
	Title       *string
	Description *string
	Location    *string
	Featured    *bool
	CapturedAt  *string
	Tags        []string
	Collections []string
	Exif        *api.Exif
}

func (s *Service) UpdatePhoto(ctx context.Context, id string, u PhotoUpdate) (*api.Photo, error) {
	payload := map[string]interface{}{}
	if u.Title != nil {
		payload["title"] = *u.Title
	}
	if u.Description != nil {
		payload["description"] = *u.Description
	}
	if u.Location != nil {
		payload["location"] = *u.Location
	}
	if u.Featured != nil {
		payload["featured"] = *u.Featured
	}
	if u.CapturedAt != nil {
		payload["capturedAt"] = *u.CapturedAt
	}
	if len(u.Tags) > 0 {
		payload["tags"] = u.Tags
	}
	if len(u.Collections) > 0 {
		payload["collectionsIds"] = u.Collections
	}
	if u.Exif != nil {
		payload["exif"] = u.Exif
	}
	var raw api.RawPhoto
	if err := s.c.Put(ctx, client.Admin, client.PhotoPath(id), payload, &raw); err != nil {
		return nil, err
	}
	p := api.TransformPhoto(raw)
	return &p, nil
}

func (s *Service) DeletePhoto(ctx context.Context, id string) error {
	return s.c.Delete(ctx, client.Admin, client.PhotoPath(id))
}

type CollectionForm struct {
	Title        string `schema:"title"`
	Slug         string `schema:"slug"`
	Description  string `schema:"description"`
	CoverPhotoId string `schema:"coverPhotoId"`
}

func (s *Service) CreateCollection(ctx context.Context, form CollectionForm) (*api.Collection, error) {
	payload := map[string]interface{}{
		"slug":         form.Slug,
		"name":         form.Title,
		"description":  form.Description,
		"coverPhotoId": form.CoverPhotoId,
	}
	var raw api.RawCollection
	if err := s.c.Post(ctx, client.Admin, client.CollectionsPath(), payload, &raw); err != nil {
		return nil, err
	}
	c := api.TransformCollection(raw)
	return &c, nil
}

type CollectionUpdate struct {
	Title        *string
	Slug         *string
	Description  *string
	CoverPhotoId *string
}

func (s *Service) UpdateCollection(ctx context.Context, slug string, u CollectionUpdate) (*api.Collection, error) {
	payload := map[string]interface{}{}
	if u.Title != nil {
		payload["name"] = *u.Title
	}
	if u.Slug != nil {
		payload["slug"] = *u.Slug
	}
	if u.Description != nil {
		payload["description"] = *u.Description
	}
	if u.CoverPhotoId != nil {
		payload["coverPhotoId"] = *u.CoverPhotoId
	}
	var raw api.RawCollection
	if err := s.c.Put(ctx, client.Admin, client.CollectionPath(slug), payload, &raw); err != nil {
		return nil, err
	}
	c := api.TransformCollection(raw)
	return &c, nil
}

func (s *Service) DeleteCollection(ctx context.Context, slug string) error {
	return s.c.Delete(ctx, client.Admin, client.CollectionPath(slug))
}

func scopeMode(scope api.Scope) client.Mode {
	if scope == api.ScopeAdmin {
		return client.Admin
	}
	return client.Public
}
