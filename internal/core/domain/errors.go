package domain

import "errors"

var ErrNoDocument = errors.New("document not found")
var ErrNotFound = errors.New("not found")
var ErrUnauthorized = errors.New("unauthorized")
var ErrForbidden = errors.New("forbidden")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmptyMessage = errors.New("message text is required")
