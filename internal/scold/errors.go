package scold

import "errors"

// Sentinel errors for request validation and prompt composition.

// ErrUnknownCharacter indicates the requested persona is not part of the catalog.
var ErrUnknownCharacter = errors.New("unknown character")

// ErrUnknownMood indicates the requested mood has no description.
var ErrUnknownMood = errors.New("unknown mood")

// ErrIncompleteRequest indicates character, task or deadline is missing.
// The specific missing field is appended where this is returned.
var ErrIncompleteRequest = errors.New("request is missing a required field")
