package journals

import "errors"

var ErrJournalNotFound = errors.New("journal not found")
