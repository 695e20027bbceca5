package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/karolswdev/scoldme/internal/scold"
)

// Warm palette matching the web page (orange/rose accents).
var (
	ColorAccent = lipgloss.Color("#f97316")
	ColorRose   = lipgloss.Color("#f43f5e")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
)

var (
	StyleTitle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	StyleDim   = lipgloss.NewStyle().Foreground(ColorDim)
	StyleBody  = lipgloss.NewStyle().Foreground(ColorFg)
	StyleError = lipgloss.NewStyle().Foreground(ColorRose).Bold(true)
)

const cardWidth = 26

// resultTitle heads the result panel.
const resultTitle = "잔소리 시작!"

// RenderPersonaCard draws one persona card. A selected card gets a thick accent border.
func RenderPersonaCard(p scold.Persona, selected bool) string {
	style := lipgloss.NewStyle().
		Width(cardWidth).
		Align(lipgloss.Center).
		Padding(0, 1)
	if selected {
		style = style.Border(lipgloss.ThickBorder()).BorderForeground(ColorAccent)
	} else {
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(ColorDim)
	}

	content := p.Emoji + "\n" + StyleTitle.Render(p.Title) + "\n" + StyleDim.Render(p.Description)
	return style.Render(content)
}

// RenderPersonaCards lays out the whole catalog side by side, highlighting selected.
func RenderPersonaCards(selected scold.Character) string {
	cards := make([]string, 0, 3)
	for _, p := range scold.Personas() {
		cards = append(cards, RenderPersonaCard(p, p.Character == selected))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// RenderResult draws the result panel: the persona's emoji, a heading and the
// message with its line breaks intact.
func RenderResult(message string, character scold.Character) string {
	icon := ""
	if p, err := scold.LookupPersona(character); err == nil {
		icon = p.Emoji + " "
	}

	lines := strings.Split(strings.ReplaceAll(message, "\r\n", "\n"), "\n")
	body := StyleBody.Render(strings.Join(lines, "\n"))

	panel := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ColorRose).
		Padding(1, 2)

	return panel.Render(icon + StyleTitle.Render(resultTitle) + "\n\n" + body)
}

// RenderFailure draws an error line for a failed request.
func RenderFailure(err error) string {
	return StyleError.Render("✗ " + err.Error())
}
