package ui

import "errors"

// Sentinel errors for the form state and the gateway client.

// ErrIncomplete indicates submit was attempted before character, task and deadline were all set.
var ErrIncomplete = errors.New("character, task and deadline are required")

// ErrInFlight indicates submit was attempted while a request is still outstanding.
var ErrInFlight = errors.New("a scolding request is already in flight")

// ErrUnknownCharacter indicates a persona outside the catalog was selected.
var ErrUnknownCharacter = errors.New("unknown character")

// ErrUnknownMood indicates a mood outside the catalog was selected.
var ErrUnknownMood = errors.New("unknown mood")

// ErrServerURLMissing indicates the gateway URL is not configured.
var ErrServerURLMissing = errors.New("scold server URL is not configured")

// ErrServerURLParse indicates an error occurred while parsing the gateway URL.
var ErrServerURLParse = errors.New("failed to parse scold server URL")

// ErrRequestMarshal indicates an error occurred while marshaling the request body.
var ErrRequestMarshal = errors.New("failed to marshal request body")

// ErrRequestCreate indicates an error occurred while creating the HTTP request.
var ErrRequestCreate = errors.New("failed to create HTTP request")

// ErrRequestExecute indicates an error occurred while executing the HTTP request.
var ErrRequestExecute = errors.New("failed to execute HTTP request")

// ErrResponseDecode indicates an error occurred while decoding the response body.
var ErrResponseDecode = errors.New("failed to decode response body")

// ErrServerError indicates the gateway answered with a non-200 status and an error message.
// The message from the server is wrapped.
var ErrServerError = errors.New("scold server returned an error")

// ErrServerErrorUnparseable indicates the gateway answered with a non-200 status
// but the body could not be parsed or was empty.
var ErrServerErrorUnparseable = errors.New("scold server returned an unparseable error")
