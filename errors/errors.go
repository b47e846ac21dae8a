package errors

import "fmt"

var (
	ErrEventNotFound   = fmt.Errorf("event not found")
	ErrEmptyRoster     = fmt.Errorf("no active signups")
	ErrMalformedRecord = fmt.Errorf("malformed signup record")
)
