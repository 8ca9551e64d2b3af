package service

import "errors"

var (
	ErrValidationNoName    = errors.New("required field `name` is missing")
	ErrValidationNoEmail   = errors.New("required field `email` is missing")
	ErrValidationNoAddress = errors.New("required field `address` is missing")
)
