// Package render builds the html template engine shared by web pages and
// notification emails.
package render

import (
	"io/fs"
	"net/http"
	"time"

	embedded "github.com/goserg/engelserver"
	"github.com/goserg/engelserver/internal/i18n"

	"github.com/gofiber/template/html"
)

const dateLayout = "2006-01-02"

func New(debug bool) (*html.Engine, error) {
	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(debug)
	engine.Debug(debug)
	engine.AddFunc("T", i18n.T)
	engine.AddFunc("FormatDate", FormatDate)
	engine.AddFunc("DateValue", DateValue)
	return engine, engine.Load()
}

func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02.01.2006")
}

// DateValue formats t for a date input field.
func DateValue(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// ParseDate parses a date input field value. An empty value is nil.
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
