package server

import (
	"net/http"

	"github.com/msvens/pfolio/internal/client"
	"go.uber.org/zap"
)

type errorPage struct {
	Code    int
	Message string
}

func (s *pserver) renderError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := client.ResolveError(err)
	if apiErr.Code == http.StatusUnauthorized {
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}
	s.l.Infow("request error", "uri", r.RequestURI, zap.Error(err))
	w.WriteHeader(apiErr.Code)
	if err = s.tmpl.ExecuteTemplate(w, "error.html", errorPage{apiErr.Code, apiErr.Message}); err != nil {
		s.l.Errorw("could not render error page", zap.Error(err))
	}
}

// notFound renders the error template for pages whose subject does not
// exist, the nil, nil convention from the query layer lands here
func (s *pserver) notFound(message string) error {
	return client.NotFoundError(message)
}
