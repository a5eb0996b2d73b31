package apitype

import "errors"

var (
	ErrKeyNotFound  = errors.New("key not found")
	ErrInvalidField = errors.New("invalid field")
	ErrImportFormat = errors.New("import data format error")
	ErrIO           = errors.New("io failure")
	ErrOutOfRange   = errors.New("index out of range")
)
