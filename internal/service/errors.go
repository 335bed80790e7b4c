package service

import "errors"

var (
	// ErrLikelyWrongPassword is returned when every processed card failed
	// the padding check. Isolated padding failures point at corrupt rows;
	// a total failure rate points at a wrong master password or a wrong
	// format version.
	ErrLikelyWrongPassword = errors.New("all cards failed padding check: master password or format version is likely wrong")
)
