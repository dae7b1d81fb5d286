package albums

import "errors"

var (
	ErrAlbumNotFound = errors.New("album not found")
	ErrEmptyUpdate   = errors.New("no fields to update")
)
