package directory

import "errors"

var (
	// ErrNotLoaded is returned by Controller.Ready until a fetch succeeds.
	ErrNotLoaded = errors.New("directory: no data loaded yet")
	// ErrUserNotFound is returned for IDs absent from the full collection.
	ErrUserNotFound = errors.New("directory: user not found")
)
