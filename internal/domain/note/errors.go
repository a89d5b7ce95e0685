package note

import "errors"

var ErrNoteNotFound = errors.New("no note for this date")
