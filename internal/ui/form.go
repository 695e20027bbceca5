package ui

import (
	"errors"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/karolswdev/scoldme/internal/scold"
)

// FormValues is what the huh form binds to. Apply turns it into state events.
type FormValues struct {
	Character  string
	Task       string
	Deadline   string
	Mood       string
	Conditions []string
}

// ValuesFromState seeds the form with the current state.
func ValuesFromState(s *State) *FormValues {
	conditions := make([]string, len(s.Conditions))
	copy(conditions, s.Conditions)
	return &FormValues{
		Character:  string(s.Character),
		Task:       s.Task,
		Deadline:   s.Deadline,
		Mood:       string(s.Mood),
		Conditions: conditions,
	}
}

// Apply replays the form values onto s as discrete events. Conditions keep
// the order they were given in, unknown codes included.
func (v *FormValues) Apply(s *State) error {
	if v.Character != "" {
		if err := s.SelectCharacter(scold.Character(v.Character)); err != nil {
			return err
		}
	}
	s.SetTask(v.Task)
	s.SetDeadline(v.Deadline)
	if v.Mood != "" {
		if err := s.SetMood(scold.Mood(v.Mood)); err != nil {
			return err
		}
	}
	for _, c := range slices.Clone(s.Conditions) {
		if !slices.Contains(v.Conditions, c) {
			s.ToggleCondition(c, false)
		}
	}
	for _, c := range v.Conditions {
		s.ToggleCondition(c, true)
	}
	return nil
}

// scoldTheme is the huh theme using the same palette as the widgets.
func scoldTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(ColorAccent)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorRose)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(ColorAccent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(ColorAccent)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(ColorDim)

	return t
}

// errRequiredField is shown inline by huh when a required field is left blank.
var errRequiredField = errors.New("필수 입력 항목입니다")

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errRequiredField
	}
	return nil
}

// NewForm builds the terminal form over v: persona, task, deadline, mood, conditions.
// The persona select always holds a value; an empty v.Character becomes the first persona.
func NewForm(v *FormValues) *huh.Form {
	personaOpts := make([]huh.Option[string], 0, 3)
	for _, p := range scold.Personas() {
		personaOpts = append(personaOpts, huh.NewOption(p.Emoji+" "+p.Title+" · "+p.Description, string(p.Character)))
	}
	moodOpts := make([]huh.Option[string], 0, 3)
	for _, m := range scold.Moods() {
		moodOpts = append(moodOpts, huh.NewOption(m.Label, string(m.Mood)))
	}
	condOpts := make([]huh.Option[string], 0, 3)
	for _, c := range scold.Conditions() {
		condOpts = append(condOpts, huh.NewOption(c.Label, c.Code))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("누구한테 혼나고 싶으세요?").
				Options(personaOpts...).
				Value(&v.Character),
		),
		huh.NewGroup(
			huh.NewText().
				Title("지금 미루고 있는 일").
				Placeholder("예: 프로젝트 제안서 작성").
				Value(&v.Task).
				Validate(required),
			huh.NewInput().
				Title("마감일 또는 목표 시간").
				Placeholder("예: 내일 오후 3시").
				Value(&v.Deadline).
				Validate(required),
			huh.NewSelect[string]().
				Title("현재 상태").
				Options(moodOpts...).
				Value(&v.Mood),
			huh.NewMultiSelect[string]().
				Title("추가 조건").
				Options(condOpts...).
				Value(&v.Conditions),
		),
	).WithTheme(scoldTheme()).WithShowHelp(false)
}
