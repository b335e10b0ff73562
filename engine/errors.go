package engine

import "errors"

// ErrNoPlayer is returned when no entity carries both Player and Position
var ErrNoPlayer = errors.New("world has no player entity")
