package env

import "errors"

// ErrInvalidState is returned by Step when the environment has no running
// episode: either Reset was never called, or the previous episode ended
// (terminated or truncated) and no Reset happened since. This is an error
// rather than a no-op so that a driver stepping a dead episode fails
// immediately instead of silently reading stale observations.
var ErrInvalidState = errors.New("env: no running episode, call Reset first")
