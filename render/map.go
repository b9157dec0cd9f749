package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	json "github.com/goccy/go-json"

	"airbnb-dashboard/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var mapTemplate = template.Must(template.ParseFS(templatesFS, "templates/map.html"))

// DashboardTemplate returns the parsed dashboard page template.
func DashboardTemplate() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/index.html"))
}

// MapHTML writes a self-contained Leaflet page showing every marker.
func MapHTML(w io.Writer, set *models.MarkerSet) error {
	markers, err := json.Marshal(set.Markers)
	if err != nil {
		return fmt.Errorf("render: encode markers: %w", err)
	}

	var buf bytes.Buffer
	err = mapTemplate.Execute(&buf, map[string]any{
		"CenterLat": set.CenterLat,
		"CenterLng": set.CenterLng,
		"Zoom":      set.Zoom,
		"Markers":   template.JS(markers),
	})
	if err != nil {
		return fmt.Errorf("render: map page: %w", err)
	}

	_, err = w.Write(buf.Bytes())
	return err
}
