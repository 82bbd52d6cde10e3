package server

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/msvens/pfolio/internal/client"
)

type AuthUser struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
}

func (s *pserver) handleLoginPage(r *http.Request) (string, interface{}, error) {
	return "admin_login.html", nil, nil
}

// handleLogin authenticates against the backend and marks the browser
// session. The bearer token itself stays in the server side token store
func (s *pserver) handleLogin(w http.ResponseWriter, r *http.Request) (string, error) {
	type request struct {
		Username string `json:"username" schema:"username"`
		Password string `json:"password" schema:"password"`
	}
	session, err := s.store.Get(r, s.cookieName)
	if err != nil {
		return "", client.InternalError(err.Error())
	}
	var loginParams request
	if err = decodeRequest(r, &loginParams); err != nil {
		return "", err
	}
	tok, err := s.c.Login(r.Context(), loginParams.Username, loginParams.Password)
	if err != nil {
		if e := session.Save(r, w); e != nil {
			return "", client.InternalError(e.Error())
		}
		return "", err
	}
	session.Values["user"] = AuthUser{Authenticated: true, Username: tok.User.Username}
	if err = session.Save(r, w); err != nil {
		return "", client.InternalError(err.Error())
	}
	return "/admin/photos", nil
}

func (s *pserver) handleLogout(w http.ResponseWriter, r *http.Request) (string, error) {
	session, err := s.store.Get(r, s.cookieName)
	if err != nil {
		return "", client.InternalError(err.Error())
	}
	session.Values["user"] = AuthUser{}
	session.Options.MaxAge = -1
	if err = session.Save(r, w); err != nil {
		return "", client.InternalError(err.Error())
	}
	if err = s.c.Logout(); err != nil {
		return "", client.InternalError(err.Error())
	}
	return "/", nil
}

func (s *pserver) checkLogin(w http.ResponseWriter, r *http.Request) error {
	session, err := s.store.Get(r, s.cookieName)
	if err != nil {
		return client.InternalError(err.Error())
	}
	user := sessionUser(session)
	if !user.Authenticated {
		err = session.Save(r, w)
		if err != nil {
			return client.InternalError(err.Error())
		}
		return client.UnauthorizedError("user not authenticated")
	}
	return nil
}

// authOnly redirects unauthenticated browsers to the login page
func (s *pserver) authOnly(f HttpHandler) HttpHandler {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.checkLogin(w, r); err != nil {
			s.renderError(w, r, err)
			return
		}
		f(w, r)
	}
}

func sessionUser(s *sessions.Session) AuthUser {
	val := s.Values["user"]
	var user = AuthUser{}
	user, ok := val.(AuthUser)
	if !ok {
		return AuthUser{Authenticated: false}
	}
	return user
}
