package server

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/msvens/pfolio/internal/api"
	"github.com/msvens/pfolio/internal/client"
	"github.com/msvens/pfolio/internal/query"
)

type adminPhotosPage struct {
	Photos []api.Photo
	User   AuthUser
}

func (s *pserver) handleAdminPhotos(r *http.Request) (string, interface{}, error) {
	photos, err := s.q.Photos(r.Context(), query.Filter{Scope: api.ScopeAdmin})
	if err != nil {
		return "", nil, err
	}
	return "admin_photos.html", adminPhotosPage{Photos: photos}, nil
}

type uploadPage struct {
	Collections []api.Collection
}

func (s *pserver) handleUploadPage(r *http.Request) (string, interface{}, error) {
	collections, err := s.q.Collections(r.Context(), api.ScopeAdmin)
	if err != nil {
		return "", nil, err
	}
	return "admin_upload.html", uploadPage{Collections: collections}, nil
}

func (s *pserver) handleUpload(w http.ResponseWriter, r *http.Request) (string, error) {
	if err := r.ParseMultipartForm(maxFormSize); err != nil {
		return "", client.BadRequestError("could not parse form: " + err.Error())
	}
	var form query.PhotoForm
	if err := decoder.Decode(&form, r.MultipartForm.Value); err != nil {
		return "", client.BadRequestError("could not decode form: " + err.Error())
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		return "", client.BadRequestError("no image file selected")
	}
	defer file.Close()
	photo, err := s.q.Upload(r.Context(), file, header.Filename, form)
	if err != nil {
		return "", err
	}
	return "/admin/photos/" + photo.Id, nil
}

type editPhotoPage struct {
	Photo       *api.Photo
	Collections []api.Collection
}

// handleEditPhotoPage needs both the photo and the collection list for
// its membership checkboxes, the two fetches run concurrently
func (s *pserver) handleEditPhotoPage(r *http.Request) (string, interface{}, error) {
	id := Var(r, "id")
	ctx := r.Context()

	var photo *api.Photo
	var collections []api.Collection
	var photoErr, colErr error

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		photo, photoErr = s.q.AdminPhoto(ctx, id)
	}()
	go func() {
		defer wg.Done()
		collections, colErr = s.q.Collections(ctx, api.ScopeAdmin)
	}()
	wg.Wait()

	if photoErr != nil {
		return "", nil, photoErr
	}
	if colErr != nil {
		return "", nil, colErr
	}
	if photo == nil {
		return "", nil, s.notFound("photo not found")
	}
	return "admin_photo_edit.html", editPhotoPage{Photo: photo, Collections: collections}, nil
}

// handleUpdatePhoto builds a partial update from the submitted fields
// only, an absent form key never clears a backend value
func (s *pserver) handleUpdatePhoto(w http.ResponseWriter, r *http.Request) (string, error) {
	id := Var(r, "id")
	if err := r.ParseForm(); err != nil {
		return "", client.BadRequestError("could not parse form: " + err.Error())
	}
	var u query.PhotoUpdate
	if v, ok := formValue(r, "title"); ok {
		u.Title = &v
	}
	if v, ok := formValue(r, "description"); ok {
		u.Description = &v
	}
	if v, ok := formValue(r, "location"); ok {
		u.Location = &v
	}
	if v, ok := formValue(r, "capturedAt"); ok {
		u.CapturedAt = &v
	}
	if v, ok := formValue(r, "featured"); ok {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			return "", client.BadRequestError("featured must be a boolean")
		}
		u.Featured = &featured
	}
	if vals, ok := r.PostForm["tags"]; ok {
		u.Tags = vals
	}
	if vals, ok := r.PostForm["collections"]; ok {
		u.Collections = vals
	}
	if _, err := s.q.UpdatePhoto(r.Context(), id, u); err != nil {
		return "", err
	}
	return "/admin/photos/" + id, nil
}

func (s *pserver) handleDeletePhoto(w http.ResponseWriter, r *http.Request) (string, error) {
	if err := s.q.DeletePhoto(r.Context(), Var(r, "id")); err != nil {
		return "", err
	}
	return "/admin/photos", nil
}

type adminCollectionsPage struct {
	Collections []api.Collection
}

func (s *pserver) handleAdminCollections(r *http.Request) (string, interface{}, error) {
	collections, err := s.q.Collections(r.Context(), api.ScopeAdmin)
	if err != nil {
		return "", nil, err
	}
	return "admin_collections.html", adminCollectionsPage{Collections: collections}, nil
}

func (s *pserver) handleNewCollectionPage(r *http.Request) (string, interface{}, error) {
	return "admin_collection_new.html", nil, nil
}

func (s *pserver) handleCreateCollection(w http.ResponseWriter, r *http.Request) (string, error) {
	var form query.CollectionForm
	if err := decodeRequest(r, &form); err != nil {
		return "", err
	}
	collection, err := s.q.CreateCollection(r.Context(), form)
	if err != nil {
		return "", err
	}
	return "/admin/collections/" + collection.Slug, nil
}

type editCollectionPage struct {
	Collection *api.Collection
}

func (s *pserver) handleEditCollectionPage(r *http.Request) (string, interface{}, error) {
	slug := Var(r, "slug")
	collection, err := s.q.Collection(r.Context(), slug, api.ScopeAdmin)
	if err != nil {
		return "", nil, err
	}
	if collection == nil {
		return "", nil, s.notFound("collection not found")
	}
	return "admin_collection_edit.html", editCollectionPage{Collection: collection}, nil
}

func (s *pserver) handleUpdateCollection(w http.ResponseWriter, r *http.Request) (string, error) {
	slug := Var(r, "slug")
	if err := r.ParseForm(); err != nil {
		return "", client.BadRequestError("could not parse form: " + err.Error())
	}
	var u query.CollectionUpdate
	if v, ok := formValue(r, "title"); ok {
		u.Title = &v
	}
	if v, ok := formValue(r, "slug"); ok {
		u.Slug = &v
	}
	if v, ok := formValue(r, "description"); ok {
		u.Description = &v
	}
	if v, ok := formValue(r, "coverPhotoId"); ok {
		u.CoverPhotoId = &v
	}
	collection, err := s.q.UpdateCollection(r.Context(), slug, u)
	if err != nil {
		return "", err
	}
	return "/admin/collections/" + collection.Slug, nil
}

func (s *pserver) handleDeleteCollection(w http.ResponseWriter, r *http.Request) (string, error) {
	if err := s.q.DeleteCollection(r.Context(), Var(r, "slug")); err != nil {
		return "", err
	}
	return "/admin/collections", nil
}

func formValue(r *http.Request, key string) (string, bool) {
	vals, ok := r.PostForm[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}
