package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/msvens/pfolio/internal/api"
	"github.com/msvens/pfolio/internal/session"
	"go.uber.org/zap"
)

// Mode selects how a request authenticates. Callers declare the mode
// explicitly at every call site, there is no route sniffing
type Mode int

const (
	Public Mode = iota
	Admin
)

const (
	contentType = "Content-Type"
	contentJson = "application/json"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Envelope is the standard wrapper every backend response uses
type Envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Errors     []FieldError    `json:"errors"`
	Pagination *Pagination     `json:"pagination"`
}

type Client struct {
	base  string
	hc    *http.Client
	store *session.Store
	l     *zap.SugaredLogger
}

func New(baseUrl string, store *session.Store, timeout time.Duration, l *zap.SugaredLogger) *Client {
	return &Client{
		base:  baseUrl,
		hc:    &http.Client{Timeout: timeout},
		store: store,
		l:     l,
	}
}

func (c *Client) Store() *session.Store {
	return c.store
}

func (c *Client) Get(ctx context.Context, mode Mode, path string, query url.Values, dst interface{}) error {
	return c.do(ctx, mode, http.MethodGet, path, query, nil, dst)
}

func (c *Client) Post(ctx context.Context, mode Mode, path string, body interface{}, dst interface{}) error {
	return c.do(ctx, mode, http.MethodPost, path, nil, body, dst)
}

func (c *Client) Put(ctx context.Context, mode Mode, path string, body interface{}, dst interface{}) error {
	return c.do(ctx, mode, http.MethodPut, path, nil, body, dst)
}

func (c *Client) Delete(ctx context.Context, mode Mode, path string) error {
	return c.do(ctx, mode, http.MethodDelete, path, nil, nil, nil)
}

// Login authenticates against the backend and persists the returned
// token and user record in the session store
func (c *Client) Login(ctx context.Context, username, password string) (session.Token, error) {
	body := map[string]string{"username": username, "password": password}
	var res struct {
		Token string   `json:"token"`
		User  api.User `json:"user"`
	}
	if err := c.Post(ctx, Public, loginPath, body, &res); err != nil {
		return session.Token{}, err
	}
	tok := session.Token{Token: res.Token, User: res.User}
	if err := c.store.Set(tok); err != nil {
		return session.Token{}, err
	}
	return tok, nil
}

func (c *Client) Logout() error {
	return c.store.Clear()
}

func (c *Client) Health(ctx context.Context) error {
	return c.Get(ctx, Public, healthPath, nil, nil)
}

// UserHealth checks both backend liveness and token validity
func (c *Client) UserHealth(ctx context.Context) error {
	return c.Get(ctx, Admin, userHealthPath, nil, nil)
}

func (c *Client) do(ctx context.Context, mode Mode, method, path string, query url.Values, body interface{}, dst interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return InternalError(err.Error())
		}
		reader = bytes.NewReader(data)
	}
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return InternalError(err.Error())
	}
	req.Header.Set(contentType, contentJson)
	req.Header.Set("X-Request-Id", uuid.New().String())
	if mode == Admin {
		tok, ok := c.store.Token()
		if !ok {
			return UnauthorizedError("Authentication required")
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	c.l.Debugw("request", "method", method, "path", path, "mode", mode)
	resp, err := c.hc.Do(req)
	if err != nil {
		return InternalError(err.Error())
	}
	defer resp.Body.Close()
	return unwrap(resp, dst)
}

// unwrap applies the envelope contract: a call succeeded only if the
// transport status is OK and the envelope says success. On success dst
// gets data when present, otherwise the raw body (some endpoints omit
// the data wrapper)
func unwrap(resp *http.Response, dst interface{}) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return InternalError(err.Error())
	}
	var env Envelope
	if err = json.Unmarshal(raw, &env); err != nil {
		return newError(errorCode(resp.StatusCode), "could not parse response: "+err.Error())
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "An error occurred"
		}
		return newError(errorCode(resp.StatusCode), msg)
	}
	if dst == nil {
		return nil
	}
	if env.Data != nil {
		return json.Unmarshal(env.Data, dst)
	}
	return json.Unmarshal(raw, dst)
}

func errorCode(status int) int {
	if status >= 200 && status <= 299 {
		return http.StatusInternalServerError
	}
	return status
}
