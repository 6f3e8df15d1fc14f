package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// TemplatesFS exposes the embedded template bundle so callers can extend or
// replace individual templates.
func TemplatesFS() fs.FS {
	return templatesFS
}
