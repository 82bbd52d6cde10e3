package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// Upload posts a binary file plus flattened form fields as
// multipart/form-data. Array fields arrive as repeated keys, object
// fields must already be JSON encoded by the caller. Unlike JSON
// requests an upload does not fail fast on a missing token, the token
// is attached only when present
func (c *Client) Upload(ctx context.Context, path string, file io.Reader, filename string, fields url.Values, dst interface{}) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return InternalError(err.Error())
	}
	if _, err = io.Copy(fw, file); err != nil {
		return InternalError(err.Error())
	}
	for key, vals := range fields {
		for _, val := range vals {
			if err = mw.WriteField(key, val); err != nil {
				return InternalError(err.Error())
			}
		}
	}
	if err = mw.Close(); err != nil {
		return InternalError(err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, &buf)
	if err != nil {
		return InternalError(err.Error())
	}
	req.Header.Set(contentType, mw.FormDataContentType())
	req.Header.Set("X-Request-Id", uuid.New().String())
	if tok, ok := c.store.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	c.l.Debugw("upload", "path", path, "file", filename)
	resp, err := c.hc.Do(req)
	if err != nil {
		return InternalError(err.Error())
	}
	defer resp.Body.Close()
	return unwrap(resp, dst)
}
