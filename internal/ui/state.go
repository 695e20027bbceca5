// Package ui is the client side of scoldme used by `scold ask`: the form
// state record, its gateway client and the lipgloss/huh widgets.
package ui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/karolswdev/scoldme/internal/scold"
)

// Sender delivers a scolding request to the gateway.
type Sender interface {
	Scold(ctx context.Context, req scold.Request) (string, error)
}

// State is the form's interaction state. It changes only through its event
// methods and is not safe for concurrent use.
type State struct {
	Character  scold.Character
	Task       string
	Deadline   string
	Mood       scold.Mood
	Conditions []string
	Loading    bool
	Message    string
	LastError  error
}

// NewState returns the initial form state: nothing selected, mood "okay".
func NewState() *State {
	return &State{
		Mood:       scold.MoodOkay,
		Conditions: []string{},
	}
}

// SelectCharacter picks the persona.
func (s *State) SelectCharacter(c scold.Character) error {
	if _, err := scold.LookupPersona(c); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownCharacter, string(c))
	}
	s.Character = c
	return nil
}

func (s *State) SetTask(task string) { s.Task = task }

func (s *State) SetDeadline(deadline string) { s.Deadline = deadline }

// SetMood picks the mood.
func (s *State) SetMood(m scold.Mood) error {
	if _, err := scold.DescribeMood(m); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownMood, string(m))
	}
	s.Mood = m
	return nil
}

// ToggleCondition adds or removes a condition code. Order of selection is kept.
func (s *State) ToggleCondition(code string, checked bool) {
	idx := slices.Index(s.Conditions, code)
	switch {
	case checked && idx < 0:
		s.Conditions = append(s.Conditions, code)
	case !checked && idx >= 0:
		s.Conditions = slices.Delete(s.Conditions, idx, idx+1)
	}
}

// Complete reports whether character, task and deadline are all filled in.
func (s *State) Complete() bool {
	return s.Character != "" && strings.TrimSpace(s.Task) != "" && strings.TrimSpace(s.Deadline) != ""
}

// CanSubmit mirrors the submit button: enabled only when complete and idle.
func (s *State) CanSubmit() bool {
	return s.Complete() && !s.Loading
}

// Request snapshots the state as the JSON body the gateway accepts.
func (s *State) Request() scold.Request {
	conditions := make([]string, len(s.Conditions))
	copy(conditions, s.Conditions)
	return scold.Request{
		Character:  s.Character,
		Task:       s.Task,
		Deadline:   s.Deadline,
		Mood:       s.Mood,
		Conditions: conditions,
	}
}

// Submit moves the state into loading and returns the request to send.
// An incomplete or in-flight form is refused without touching the state.
func (s *State) Submit() (scold.Request, error) {
	if s.Loading {
		return scold.Request{}, ErrInFlight
	}
	if !s.Complete() {
		return scold.Request{}, ErrIncomplete
	}
	s.Loading = true
	s.Message = ""
	s.LastError = nil
	return s.Request(), nil
}

// Receive records a generated message and ends loading.
func (s *State) Receive(message string) {
	s.Loading = false
	s.Message = message
	s.LastError = nil
}

// Fail records a failed request and ends loading.
func (s *State) Fail(err error) {
	s.Loading = false
	s.LastError = err
}

// Send runs one full submit cycle against sender. Nothing is sent when Submit refuses.
func (s *State) Send(ctx context.Context, sender Sender) error {
	req, err := s.Submit()
	if err != nil {
		return err
	}
	message, err := sender.Scold(ctx, req)
	if err != nil {
		s.Fail(err)
		return err
	}
	s.Receive(message)
	return nil
}
