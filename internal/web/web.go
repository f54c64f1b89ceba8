// Package web serves the landing page: the chat-style shell with the two
// calculator panels rendered as plain HTML forms.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"calorie-calculator/internal/estimator"
	"calorie-calculator/internal/forms"
	"calorie-calculator/internal/metrics"
	"calorie-calculator/internal/models"
	"calorie-calculator/internal/panel"
	"calorie-calculator/internal/report"
)

//go:embed templates/*.html
var tmplFS embed.FS

// Fields of the last successful submission travel with the form under
// this prefix so a failed recalculation can keep showing that result.
const lastPrefix = "last_"

var funcs = template.FuncMap{
	"fixed":    report.Fixed,
	"round":    report.Round,
	"fmtFloat": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
	"percent":  func(share float64) string { return strconv.FormatFloat(share*100, 'g', 4, 64) + "%" },
	"lastName": func(name string) string { return lastPrefix + name },
}

type Pages struct {
	tmpl    *template.Template
	appName string
	version string
}

func New(appName, version string) (*Pages, error) {
	tmpl, err := template.New("index.html").Funcs(funcs).ParseFS(tmplFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Pages{tmpl: tmpl, appName: appName, version: version}, nil
}

type CalorieView struct {
	Form   forms.CalorieForm
	Result *models.CalorieOutput
	Last   url.Values
}

type StepsView struct {
	Form   forms.StepsForm
	Result *models.StepsOutput
	Last   url.Values
}

type PageData struct {
	AppName        string
	Version        string
	SidebarOpen    bool
	Active         string
	Draft          string
	Features       []string
	ActivityLevels []estimator.ActivityLevel
	Paces          []estimator.Pace
	Calories       CalorieView
	Steps          StepsView
}

// Home renders the shell. A query carrying panel fields is calculated
// right away, so a redirect after a successful submit shows the result.
func (p *Pages) Home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		shell := shellFromQuery(q)

		switch shell.Active() {
		case panel.CaloriesPanel:
			shell.Calories.Replace(forms.CalorieFormFromValues(q))
			if hasAny(q, forms.CalorieFields) {
				observe(panel.CaloriesPanel, shell.Calories.Submit)
			}
		case panel.StepsPanel:
			shell.Steps.Replace(forms.StepsFormFromValues(q))
			if hasAny(q, forms.StepsFields) {
				observe(panel.StepsPanel, shell.Steps.Submit)
			}
		}
		metrics.IncPanelOpened(shell.Active())

		p.render(w, p.page(shell))
	}
}

func (p *Pages) SubmitCalories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		shell := shellFromQuery(r.Form)
		shell.Open(panel.CaloriesPanel)

		last, hasLast := stripPrefix(r.PostForm, lastPrefix)
		current := forms.CalorieFormFromValues(r.PostForm)
		ok := resubmit(shell.Calories, forms.CalorieFormFromValues(last), current, hasLast)
		if ok {
			http.Redirect(w, r, panelURL(shell, panel.CaloriesPanel, current.Values()), http.StatusSeeOther)
			return
		}
		p.render(w, p.page(shell))
	}
}

func (p *Pages) SubmitSteps() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		shell := shellFromQuery(r.Form)
		shell.Open(panel.StepsPanel)

		last, hasLast := stripPrefix(r.PostForm, lastPrefix)
		current := forms.StepsFormFromValues(r.PostForm)
		ok := resubmit(shell.Steps, forms.StepsFormFromValues(last), current, hasLast)
		if ok {
			http.Redirect(w, r, panelURL(shell, panel.StepsPanel, current.Values()), http.StatusSeeOther)
			return
		}
		p.render(w, p.page(shell))
	}
}

// resubmit replays the last successful form, then the current one. The
// panel keeps the replayed result when the current form yields nothing.
func resubmit[F panel.Form[F, O], O any](pn *panel.Panel[F, O], last, current F, hasLast bool) bool {
	if hasLast {
		pn.Replace(last)
		observe(pn.Name(), pn.Submit)
	}
	pn.Replace(current)
	return observe(pn.Name(), pn.Submit)
}

func observe(name string, submit func() bool) bool {
	start := time.Now()
	ok := submit()
	metrics.ObserveCalculation(name, ok, time.Since(start))
	return ok
}

func (p *Pages) page(shell *panel.Shell) PageData {
	data := PageData{
		AppName:        p.appName,
		Version:        p.version,
		SidebarOpen:    shell.SidebarOpen,
		Active:         shell.Active(),
		Draft:          shell.Draft,
		Features:       panel.Features,
		ActivityLevels: estimator.ActivityLevels,
		Paces:          estimator.Paces,
		Calories:       CalorieView{Form: shell.Calories.Form()},
		Steps:          StepsView{Form: shell.Steps.Form()},
	}
	if out, ok := shell.Calories.Result(); ok {
		data.Calories.Result = &out
		data.Calories.Last = shell.Calories.ResultForm().Values()
	}
	if out, ok := shell.Steps.Result(); ok {
		data.Steps.Result = &out
		data.Steps.Last = shell.Steps.ResultForm().Values()
	}
	return data
}

func (p *Pages) render(w http.ResponseWriter, data PageData) {
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		log.Printf("web: render page: %v", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("web: write page: %v", err)
	}
}

func shellFromQuery(v url.Values) *panel.Shell {
	shell := panel.NewShell()
	if v.Get("sidebar") == "closed" {
		shell.ToggleSidebar()
	}
	shell.Draft = v.Get("draft")
	shell.Open(v.Get("panel"))
	return shell
}

func panelURL(shell *panel.Shell, name string, fields url.Values) string {
	v := url.Values{}
	for k, vals := range fields {
		v[k] = vals
	}
	v.Set("panel", name)
	if !shell.SidebarOpen {
		v.Set("sidebar", "closed")
	}
	return "/?" + v.Encode()
}

func hasAny(v url.Values, fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(v.Get(f)) != "" {
			return true
		}
	}
	return false
}

func stripPrefix(v url.Values, prefix string) (url.Values, bool) {
	out := url.Values{}
	for k, vals := range v {
		if name, ok := strings.CutPrefix(k, prefix); ok {
			out[name] = vals
		}
	}
	return out, len(out) > 0
}
