package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// jst is Japan Standard Time (UTC+9, no DST).
var jst = time.FixedZone("JST", 9*60*60)

// dateLayouts are the timestamp shapes the API has been seen to emit.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templatesFS, "templates/*.html")
}

// MustInstall parses the templates and installs them on r together with the
// static assets under /static.
func MustInstall(r *gin.Engine) {
	r.SetHTMLTemplate(template.Must(Templates()))

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(static))
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"jaDate":     JADate,
		"inc":        func(i int) int { return i + 1 },
		"pathEscape": url.PathEscape,
	}
}

// JADate formats an API timestamp the way ja-JP dates are written (2024/1/5),
// in Japan time. Timestamps without a zone are taken as Japan time. Values
// that cannot be parsed are returned unchanged.
func JADate(raw string) string {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, jst); err == nil {
			return t.In(jst).Format("2006/1/2")
		}
	}
	return raw
}

// Page is the data every template receives.
type Page struct {
	Title       string
	CurrentPath string
	Notice      string
	Data        any
}

// Render writes the named template with status.
func Render(c *gin.Context, status int, name string, p Page) {
	c.HTML(status, name, p)
}

// NotFound renders the standard not-found page and stops the handler chain.
func NotFound(c *gin.Context, currentPath string) {
	c.HTML(http.StatusNotFound, "not_found", Page{Title: "ページが見つかりません", CurrentPath: currentPath})
	c.Abort()
}
