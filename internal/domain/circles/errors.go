package circles

import "errors"

var ErrCircleNotFound = errors.New("memory circle not found")
