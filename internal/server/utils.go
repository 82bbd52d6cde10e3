package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/msvens/pfolio/internal/client"
	"go.uber.org/zap"
)

const (
	maxFormSize = 32 << 20
	contentType = "Content-Type"
	contentJson = "application/json"
)

//Defined http handlers
type HttpHandler func(http.ResponseWriter, *http.Request)
type PageHandler func(r *http.Request) (tmpl string, data interface{}, err error)
type FormHandler func(w http.ResponseWriter, r *http.Request) (redirect string, err error)

/*******************Response and Request writing and parsing********************/
var decoder = schema.NewDecoder()

// decodeRequest extracts the query string, form or json post as a go struct.
// if the content type is Json it will try to decode post data as Json otherwise
// it will use gorilla/schema to decode the PostForm
func decodeRequest(r *http.Request, dst interface{}) error {
	if strings.Contains(r.Header.Get(contentType), contentJson) {
		return decodeJson(r, dst)
	}
	err := r.ParseForm()
	if err != nil {
		return client.BadRequestError("could not parse form: " + err.Error())
	}
	err = decoder.Decode(dst, r.PostForm)
	if err != nil {
		return client.BadRequestError("could not decode form: " + err.Error())
	}
	return nil
}

func decodeJson(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError

		switch {
		case errors.As(err, &syntaxError):
			msg := fmt.Sprintf("Request body contains badly-formed JSON (at position %d)", syntaxError.Offset)
			return client.BadRequestError(msg)

		case errors.Is(err, io.ErrUnexpectedEOF):
			return client.BadRequestError("Request body contains badly-formed JSON")

		case errors.As(err, &unmarshalTypeError):
			msg := fmt.Sprintf("Request body contains an invalid value for the %q field (at position %d)", unmarshalTypeError.Field, unmarshalTypeError.Offset)
			return client.BadRequestError(msg)

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			msg := fmt.Sprintf("Request body contains unknown field %s", fieldName)
			return client.BadRequestError(msg)

		case errors.Is(err, io.EOF):
			return client.BadRequestError("Request body must not be empty")

		default:
			return client.InternalError(err.Error())
		}
	}
	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return client.BadRequestError("Request body must only contain a single JSON object")
	}
	return nil
}

func Var(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}

func QPInt(r *http.Request, param string, val int) int {
	if v, f := r.URL.Query()[param]; f {
		if i, e := strconv.Atoi(v[0]); e != nil {
			return val
		} else {
			return i
		}
	} else {
		return val
	}
}

func QPBool(r *http.Request, param string, val bool) bool {
	if v, f := r.URL.Query()[param]; f {
		if b, e := strconv.ParseBool(v[0]); e != nil {
			return val
		} else {
			return b
		}
	} else {
		return val
	}
}

func setJson(w http.ResponseWriter) {
	w.Header().Set(contentType, contentJson)
}

// page decorates a handler that resolves a template name and its view
// data. Errors render the error template with the resolved status code
func (s *pserver) page(f PageHandler) HttpHandler {
	return func(w http.ResponseWriter, r *http.Request) {
		name, data, err := f(r)
		if err != nil {
			s.renderError(w, r, err)
			return
		}
		if err = s.tmpl.ExecuteTemplate(w, name, data); err != nil {
			s.l.Errorw("could not execute template", "template", name, zap.Error(err))
		}
	}
}

// form decorates a mutating handler, a successful submit redirects
func (s *pserver) form(f FormHandler) HttpHandler {
	return func(w http.ResponseWriter, r *http.Request) {
		redirect, err := f(w, r)
		if err != nil {
			s.renderError(w, r, err)
			return
		}
		http.Redirect(w, r, redirect, http.StatusSeeOther)
	}
}

func (s *pserver) requestLogMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.l.Debugw("request", "uri", r.RequestURI, "method", r.Method)
		next.ServeHTTP(w, r)
	})
}
