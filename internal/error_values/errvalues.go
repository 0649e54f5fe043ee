package errorvalues

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrPersistence   = errors.New("persistence error")
	ErrEntryNotFound = errors.New("mood entry doesn't exist")
	ErrEntryExists   = errors.New("mood entry for this person, date and type already exists")
	ErrKeyNotFound   = errors.New("key doesn't exist")
	ErrUnknownStore  = errors.New("unknown store backend")
)
