package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/mitchellh/go-homedir"
	"github.com/msvens/pfolio/internal/api"
)

// Token is the persisted authentication state: the backend bearer
// token together with the user record it was issued for
type Token struct {
	Token string   `json:"token"`
	User  api.User `json:"user"`
}

// Store keeps the single shared token on disk. Any component may read
// or replace it, last writer wins
type Store struct {
	path string
	mu   sync.RWMutex
	cur  Token
	subs []func(Token)
}

func DefaultPath() string {
	home, err := homedir.Dir()
	if err != nil {
		return filepath.Join(".pfolio", "token.json")
	}
	return filepath.Join(home, ".pfolio", "token.json")
}

// NewStore loads any previously persisted token from path. A missing
// file is not an error, it simply means logged out
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath()
	}
	s := &Store{path: path}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	defer f.Close()
	if err = json.NewDecoder(f).Decode(&s.cur); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Token, s.cur.Token != ""
}

func (s *Store) User() api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.User
}

func (s *Store) Set(tok Token) error {
	s.mu.Lock()
	if err := s.save(tok); err != nil {
		s.mu.Unlock()
		return err
	}
	s.cur = tok
	subs := s.subs
	s.mu.Unlock()
	for _, fn := range subs {
		fn(tok)
	}
	return nil
}

func (s *Store) Clear() error {
	s.mu.Lock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.mu.Unlock()
		return err
	}
	s.cur = Token{}
	subs := s.subs
	s.mu.Unlock()
	for _, fn := range subs {
		fn(Token{})
	}
	return nil
}

// Subscribe registers fn to be called after every token change
func (s *Store) Subscribe(fn func(Token)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) save(tok Token) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(tok)
}
