package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrExtraction         = errors.New("pdf extraction failed")
	ErrUpstream           = errors.New("upstream completion failed")
	ErrUpstreamTimeout    = errors.New("upstream completion timed out")
	ErrMalformedResponse  = errors.New("malformed upstream response")
)
