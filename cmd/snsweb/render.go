package main

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type Page struct {
	Title string
	Site  string
	Data  interface{}
}

func newHandler(config *Global, router *mux.Router) (*handler, error) {
	tpl, err := template.New("").Funcs(template.FuncMap{
		"cleanDate": func(d time.Time) string {
			if d.IsZero() {
				return ""
			}
			return d.Format("January 02, 2006 15:04")
		},
	}).ParseFS(embeddedTemplates, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &handler{Global: config, router: router, tpl: tpl}, nil
}

func Render(h *handler, w http.ResponseWriter, r *http.Request, title string, tpl string, data interface{}) {
	page := Page{
		Title: title,
		Site:  h.Global.Site,
		Data:  data,
	}

	if err := h.tpl.ExecuteTemplate(w, tpl, page); err != nil {
		HTTPError(h, w, r, err)
	}
}

func HTTPError(h *handler, w http.ResponseWriter, r *http.Request, err error, code ...int) {
	usedCode := http.StatusInternalServerError
	if len(code) > 0 {
		usedCode = code[0]
	}

	w.WriteHeader(usedCode)
	h.log.Println(r.Host, r.URL.Path, ":", usedCode, err)

	page := Page{
		Title: "Error",
		Site:  h.Global.Site,
		Data: struct {
			StatusCode     int
			StatusCodeText string
			Error          string
		}{
			StatusCode:     usedCode,
			StatusCodeText: http.StatusText(usedCode),
			Error:          err.Error(),
		},
	}

	if tplErr := h.tpl.ExecuteTemplate(w, "error.html", page); tplErr != nil {
		h.log.Println("rendering error page:", tplErr)
	}
}
