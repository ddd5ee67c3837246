// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tareas/internal/service"
)

// FormatTask formats a numbered task line.
// Format: "{N:>4}  {TITULO}  {DESCRIPCION}\n" with the titulo padded to
// a 24-character column.
func FormatTask(w io.Writer, num int, task service.Task) {
	titulo := normalizeText(task.Titulo)
	descripcion := normalizeText(task.Descripcion)
	fmt.Fprintf(w, "%4d  %-24s  %s\n", num, titulo, descripcion)
}

// FormatTaskDetail formats a single task with its id, one field per line.
func FormatTaskDetail(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "id:          %s\n", task.ID)
	fmt.Fprintf(w, "titulo:      %s\n", normalizeText(task.Titulo))
	fmt.Fprintf(w, "descripcion: %s\n", normalizeText(task.Descripcion))
}

// normalizeText normalizes a field for single-line display.
// - Empty or whitespace-only values become "(empty)"
// - Newlines are replaced with spaces
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	if strings.TrimSpace(s) == "" {
		return "(empty)"
	}
	return s
}
