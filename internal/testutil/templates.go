package testutil

import (
	"bytes"
	"html/template"
	"io/fs"
	"strings"
	"testing"
)

// ParseTemplates parses templates/*.gohtml from each fs into one set, the
// same way the template engine layers feature sets over the shared set.
func ParseTemplates(t *testing.T, fss ...fs.FS) *template.Template {
	t.Helper()
	tmpl := template.New("")
	for _, fsys := range fss {
		var err error
		tmpl, err = tmpl.ParseFS(fsys, "templates/*.gohtml")
		if err != nil {
			t.Fatalf("parse templates: %v", err)
		}
	}
	return tmpl
}

// Execute runs the named template and returns its output.
func Execute(t *testing.T, tmpl *template.Template, name string, data any) string {
	t.Helper()
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		t.Fatalf("execute %s: %v", name, err)
	}
	return buf.String()
}

// CountRows counts table body rows in rendered HTML.
func CountRows(html string) int {
	body := html
	if i := strings.Index(body, "<tbody>"); i >= 0 {
		body = body[i:]
	} else {
		return 0
	}
	if j := strings.Index(body, "</tbody>"); j >= 0 {
		body = body[:j]
	}
	return strings.Count(body, "<tr")
}
