package services

import "errors"

// ErrSuperseded means a newer search was issued while this one was in
// flight; its result must not be shown.
var ErrSuperseded = errors.New("search superseded by a newer query")
