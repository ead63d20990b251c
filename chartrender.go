package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	chartrender "github.com/go-echarts/go-echarts/v2/render"
)

const chartTemplateFile = "templates/charts/_chart.gohtml"

func renderToHtml(deps *Dependencies, c interface{}) template.HTML {
	sublog := deps.logger

	var buf bytes.Buffer
	r := c.(chartrender.Renderer)
	err := r.Render(&buf)
	if err != nil {
		sublog.Error().Err(err).Msg("failed to render chart")
		return ""
	}

	return template.HTML(buf.String())
}

// chartSnippet is what templates/charts/_chart.gohtml is executed with.
type chartSnippet struct {
	Chart interface{}
	Nonce string
}

// snippetRenderer renders a chart as a bare <div> plus an inline <script>
// tagged with the request nonce, so it can be dropped into any page or JSON
// response instead of being a full HTML document.
type snippetRenderer struct {
	c      interface{}
	nonce  string
	before []func()
}

func newSnippetRenderer(c interface{}, nonce string, before ...func()) chartrender.Renderer {
	return &snippetRenderer{c: c, nonce: nonce, before: before}
}

func (r *snippetRenderer) Render(w io.Writer) error {
	const tplName = "_chart"
	for _, fn := range r.before {
		fn()
	}
	r.before = nil

	tpl, err := template.New(tplName).
		Funcs(template.FuncMap{
			"safeJS": func(s interface{}) template.JS {
				return template.JS(fmt.Sprint(s))
			},
		}).
		ParseFiles(chartTemplateFile)
	if err != nil {
		return err
	}

	return tpl.ExecuteTemplate(w, tplName, chartSnippet{Chart: r.c, Nonce: r.nonce})
}

func (r *snippetRenderer) RenderContent() []byte {
	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		return nil
	}
	return buf.Bytes()
}

func (r *snippetRenderer) RenderSnippet() chartrender.ChartSnippet {
	return chartrender.ChartSnippet{Element: string(r.RenderContent())}
}
