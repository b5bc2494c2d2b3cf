package web

import "errors"

var ErrPanic = errors.New("handler panicked")
