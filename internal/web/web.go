// Package web serves the browser form: one embedded HTML page rendered from the
// persona catalog plus its static script and stylesheet.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/karolswdev/scoldme/internal/scold"
)

//go:embed templates/index.html.tmpl
var indexTemplate string

//go:embed static
var staticFiles embed.FS

// PageData is what the index template renders.
type PageData struct {
	Title       string
	Subtitle    string
	Personas    []scold.Persona
	Moods       []scold.MoodOption
	Conditions  []scold.ConditionOption
	DefaultMood scold.Mood
}

// Handler serves the index page and /static/.
type Handler struct {
	tmpl   *template.Template
	static http.Handler
}

// New parses the embedded page template.
func New() (*Handler, error) {
	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateParse, err)
	}
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStaticFS, err)
	}
	return &Handler{
		tmpl:   tmpl,
		static: http.StripPrefix("/static/", http.FileServerFS(sub)),
	}, nil
}

// Register mounts the page on GET / and the assets on GET /static/.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.serveIndex)
	mux.Handle("GET /static/", h.static)
}

// NewPageData builds the template data from the catalog.
func NewPageData() PageData {
	moods := scold.Moods()
	return PageData{
		Title:       "혼내줘 AI",
		Subtitle:    "해야 할 일을 미루고 있을 때, 내가 고른 캐릭터가 대신 나를 혼내주고 지금 당장 해야 할 행동을 한 줄로 알려줍니다",
		Personas:    scold.Personas(),
		Moods:       moods,
		Conditions:  scold.Conditions(),
		DefaultMood: moods[0].Mood,
	}
}

func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, NewPageData()); err != nil {
		log.Error().Err(err).Msg("Failed to render index page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
