package containers

import "errors"

// ErrEmpty is returned by Pop/Dequeue when the container holds no elements.
// It is never returned for a would-block condition — C8's bounded queue
// suspends the caller instead of reporting it.
var ErrEmpty = errors.New("containers: empty")
