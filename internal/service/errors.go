package service

import "errors"

var (
	ErrValidation     = errors.New("validation")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrBadCredentials = errors.New("bad credentials")
	ErrNotAcceptable  = errors.New("not acceptable")
	ErrForbidden      = errors.New("forbidden")
)
