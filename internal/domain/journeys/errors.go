package journeys

import "errors"

var (
	ErrJourneyNotFound = errors.New("journey not found")
	ErrEmptyUpdate     = errors.New("no fields to update")
)
