package client

import (
	"errors"
	"fmt"
	"net/http"
)

type ApiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("code: %d message: %s", e.Code, e.Message)
}

func newError(code int, message string) *ApiError {
	return &ApiError{Code: code, Message: message}
}

func UnauthorizedError(message string) *ApiError {
	return newError(http.StatusUnauthorized, message)
}

func NotFoundError(message string) *ApiError {
	return newError(http.StatusNotFound, message)
}

func BadRequestError(message string) *ApiError {
	return newError(http.StatusBadRequest, message)
}

func InternalError(message string) *ApiError {
	return newError(http.StatusInternalServerError, message)
}

func ResolveError(err error) *ApiError {
	var e *ApiError
	if errors.As(err, &e) {
		return e
	}
	return InternalError(err.Error())
}

func IsNotFound(err error) bool {
	var e *ApiError
	return errors.As(err, &e) && e.Code == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	var e *ApiError
	return errors.As(err, &e) && e.Code == http.StatusUnauthorized
}
