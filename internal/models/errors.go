package models

import "errors"

// ErrAlreadyExists is returned by the store when a unique constraint rejects a row.
var ErrAlreadyExists = errors.New("record already exists")
