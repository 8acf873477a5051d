package view

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"

	"shortlink/internal/model"
)

//go:embed admin.html
var adminHTML string

// fallback is served if the template ever fails to execute; the admin page
// must render something rather than fail the request.
const fallback = "<h1>Admin Panel</h1><p>Template not available</p>"

var adminTmpl = template.Must(template.New("admin").Parse(adminHTML))

// RenderAdmin writes the admin page listing mappings. All mapping fields pass
// through html/template escaping.
func RenderAdmin(w io.Writer, mappings []model.Mapping) error {
	var buf bytes.Buffer
	data := struct{ Mappings []model.Mapping }{Mappings: mappings}
	if err := adminTmpl.Execute(&buf, data); err != nil {
		_, werr := io.WriteString(w, fallback)
		if werr != nil {
			return werr
		}
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
