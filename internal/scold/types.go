package scold

import (
	"fmt"
	"strings"
)

// Character identifies one of the scolding personas.
type Character string

const (
	CharacterFriend    Character = "friend"
	CharacterPrincipal Character = "principal"
	CharacterGrandma   Character = "grandma"
)

// Mood is the user's self-reported state towards the task.
type Mood string

const (
	MoodOkay   Mood = "okay"
	MoodLazy   Mood = "lazy"
	MoodDoomed Mood = "doomed"
)

// Known condition codes. Conditions travel as plain strings so that
// unrecognized codes can be passed through to the prompt untouched.
const (
	ConditionDDay        = "d-day"
	ConditionIncomplete  = "incomplete"
	ConditionBelowTarget = "below-target"
)

// Request is the body accepted by POST /api/scold.
type Request struct {
	Character  Character `json:"character" yaml:"character"`
	Task       string    `json:"task" yaml:"task"`
	Deadline   string    `json:"deadline" yaml:"deadline"`
	Mood       Mood      `json:"mood" yaml:"mood"`
	Conditions []string  `json:"conditions" yaml:"conditions"`
}

// Response is the body returned by POST /api/scold. Exactly one field is set.
type Response struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Validate reports whether the request carries everything needed to ask for a scolding.
func (r Request) Validate() error {
	switch {
	case strings.TrimSpace(string(r.Character)) == "":
		return fmt.Errorf("%w: character", ErrIncompleteRequest)
	case strings.TrimSpace(r.Task) == "":
		return fmt.Errorf("%w: task", ErrIncompleteRequest)
	case strings.TrimSpace(r.Deadline) == "":
		return fmt.Errorf("%w: deadline", ErrIncompleteRequest)
	}
	return nil
}
