package server

import "github.com/gorilla/mux"

func (s *pserver) routes() {

	s.r.Use(s.requestLogMW)

	s.mGET("/").HandlerFunc(s.page(s.handleHome))
	s.mGET("/about").HandlerFunc(s.page(s.handleAbout))
	s.mGET("/photo/{id}").HandlerFunc(s.page(s.handlePhoto))
	s.mGET("/collections").HandlerFunc(s.page(s.handleCollections))
	s.mGET("/collections/{slug}").HandlerFunc(s.page(s.handleCollection))

	s.mGET("/health").HandlerFunc(s.handleHealth)

	s.mGET("/admin/login").HandlerFunc(s.page(s.handleLoginPage))
	s.mPOST("/admin/login").HandlerFunc(s.form(s.handleLogin))
	s.mPOST("/admin/logout").HandlerFunc(s.authOnly(s.form(s.handleLogout)))

	s.mGET("/admin").HandlerFunc(s.authOnly(s.page(s.handleAdminPhotos)))
	s.mGET("/admin/photos").HandlerFunc(s.authOnly(s.page(s.handleAdminPhotos)))
	s.mGET("/admin/photos/upload").HandlerFunc(s.authOnly(s.page(s.handleUploadPage)))
	s.mPOST("/admin/photos/upload").HandlerFunc(s.authOnly(s.form(s.handleUpload)))
	s.mGET("/admin/photos/{id}").HandlerFunc(s.authOnly(s.page(s.handleEditPhotoPage)))
	s.mPOST("/admin/photos/{id}").HandlerFunc(s.authOnly(s.form(s.handleUpdatePhoto)))
	s.mPOST("/admin/photos/{id}/delete").HandlerFunc(s.authOnly(s.form(s.handleDeletePhoto)))

	s.mGET("/admin/collections").HandlerFunc(s.authOnly(s.page(s.handleAdminCollections)))
	s.mGET("/admin/collections/new").HandlerFunc(s.authOnly(s.page(s.handleNewCollectionPage)))
	s.mPOST("/admin/collections/new").HandlerFunc(s.authOnly(s.form(s.handleCreateCollection)))
	s.mGET("/admin/collections/{slug}").HandlerFunc(s.authOnly(s.page(s.handleEditCollectionPage)))
	s.mPOST("/admin/collections/{slug}").HandlerFunc(s.authOnly(s.form(s.handleUpdateCollection)))
	s.mPOST("/admin/collections/{slug}/delete").HandlerFunc(s.authOnly(s.form(s.handleDeleteCollection)))
}

func (s *pserver) mGET(p string) *mux.Route {
	return s.path(p).Methods("GET")
}

func (s *pserver) mPOST(p string) *mux.Route {
	return s.path(p).Methods("POST")
}

func (s *pserver) path(path string) *mux.Route {
	if path == "/" {
		if s.prefixPath == "" || s.prefixPath == "/" {
			return s.r.Path("/")
		}
		return s.r.Path(s.prefixPath)
	}
	if s.prefixPath == "/" {
		return s.r.Path(path)
	}
	return s.r.Path(s.prefixPath + path)
}
