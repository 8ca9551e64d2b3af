package adapter

import "errors"

var (
	ErrBadRequest           = errors.New("bad request")
	ErrNotFound             = errors.New("not found")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMethodNotAllowed     = errors.New("method not allowed")
	ErrInternalServerError  = errors.New("internal server error")
)
