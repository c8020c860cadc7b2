package domain

import "errors"

var (
	ErrInvalidKeySequence = errors.New("invalid key sequence")
	ErrInvalidSchemeName  = errors.New("invalid scheme name")
	ErrSchemeNotFound     = errors.New("scheme not found")
	ErrUnknownAction      = errors.New("unknown action")
)
