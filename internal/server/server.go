package server

import (
	"context"
	"encoding/gob"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/msvens/pfolio/internal/client"
	"github.com/msvens/pfolio/internal/config"
	"github.com/msvens/pfolio/internal/query"
	"github.com/msvens/pfolio/internal/session"
	"go.uber.org/zap"
)

type pserver struct {
	c          *client.Client
	q          *query.Service
	r          *mux.Router
	l          *zap.SugaredLogger
	prefixPath string
	store      *sessions.CookieStore
	cookieName string
	tokens     *session.Store
	tmpl       *template.Template
}

func NewServer(prefixPath string) *pserver {

	s := pserver{}
	s.prefixPath = prefixPath

	//Initialize session
	authKey := []byte(config.SessionAuthcKey())
	encKey := []byte(config.SessionEncKey())
	s.cookieName = config.SessionCookieName()
	s.store = sessions.NewCookieStore(
		authKey,
		encKey,
	)
	s.store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24,
		HttpOnly: true,
	}
	gob.Register(AuthUser{})

	//setup logging
	l, _ := zap.NewDevelopment()
	s.l = l.Sugar()

	s.r = mux.NewRouter()

	var err error
	if s.tokens, err = session.NewStore(config.TokenFile()); err != nil {
		s.l.Panicw("could not open token store", zap.Error(err))
	}
	s.c = client.New(config.ApiUrl(), s.tokens, time.Duration(config.ApiTimeout())*time.Second, s.l)
	s.q = query.New(s.c, s.l)

	if s.tmpl, err = template.ParseGlob(config.TemplateGlob()); err != nil {
		s.l.Panicw("could not parse templates", zap.Error(err))
	}

	return &s
}

func StartServer() {
	config.InitConfig()

	s := NewServer(config.ServerPrefix())
	s.routes()
	defer s.l.Sync()

	if err := s.c.Health(context.Background()); err != nil {
		s.l.Errorw("backend health check", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    config.ServerAddr(),
		Handler: s.r,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.l.Fatalw("listen", zap.Error(err))
		}
	}()

	s.l.Infow("server started", "addr", config.ServerAddr())

	<-done //wait for shutdown interrupt, e.g ctrl-c

	s.l.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		s.l.Fatalw("server shutdown failed", zap.Error(err))
	}

	s.l.Info("server exited properly")
}
