// Package renderer turns the exledger results into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

// funcs available to every template.
var funcs = template.FuncMap{
	// cell escapes a value for use in a markdown table cell.
	"cell": func(v any) string {
		return strings.ReplaceAll(fmt.Sprint(v), "|", `\|`)
	},
}

// RenderPartition renders the Partition struct to a markdown string.
func RenderPartition(p *Partition) string {
	partials := map[string]string{
		"partition_title":  "partition_title.md",
		"partition_groups": "partition_groups.md",
	}
	return renderTemplate("partition", "partition.md", partials, p)
}

// RenderInterest renders the Interest struct to a markdown string.
func RenderInterest(i *Interest) string {
	partials := map[string]string{
		"interest_assets": "interest_assets.md",
	}
	if len(i.Assets) == 0 {
		partials["interest_assets"] = "interest_none.md"
	}
	return renderTemplate("interest", "interest.md", partials, i)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
