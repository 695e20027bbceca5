package web

import "errors"

// ErrTemplateParse indicates the embedded page template is invalid.
var ErrTemplateParse = errors.New("failed to parse page template")

// ErrStaticFS indicates the embedded static directory could not be opened.
var ErrStaticFS = errors.New("failed to open embedded static files")
