// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/premios/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("views").Funcs(template.FuncMap{
	"noPollsMessage": func() string { return NoPollsMessage },
}).ParseFS(templateFS, "templates/*.html"))

// Template names
const (
	IndexPage   = "index.html"
	DetailPage  = "detail.html"
	ResultsPage = "results.html"
	ErrorPage   = "error.html"
)

// NoPollsMessage is shown on the index when nothing is published
const NoPollsMessage = "Not polls are Available"

type IndexData struct {
	Questions []models.QuestionSummary
}

type DetailData struct {
	Question     models.Question
	Choices      []models.Choice
	ErrorMessage string
}

type ResultsData struct {
	Question models.Question
	Choices  []models.Choice
}

type ErrorData struct {
	Title   string
	Message string
}

// Render executes the named template and writes it with statusCode.
// Output is buffered so a template error can still produce a 500.
func Render(w http.ResponseWriter, statusCode int, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write response", "template", name, "error", err)
	}
}

// RenderError writes the error page for statusCode
func RenderError(w http.ResponseWriter, statusCode int, message string) {
	Render(w, statusCode, ErrorPage, ErrorData{
		Title:   fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
		Message: message,
	})
}
