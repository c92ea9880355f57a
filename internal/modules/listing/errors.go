package listing

import "errors"

var (
	ErrNotMounted = errors.New("listing view not mounted")
	ErrDiscarded  = errors.New("listing result discarded after unmount")
	ErrNoSuchCard = errors.New("no such card")
)
