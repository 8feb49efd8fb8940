package content

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// DefaultStyle is the chroma style used for code blocks.
const DefaultStyle = "github"

// Renderer converts markdown bodies to HTML with GFM and highlighted code.
type Renderer struct {
	md    goldmark.Markdown
	style string
}

// NewRenderer builds a renderer for the given chroma style name.
func NewRenderer(style string) *Renderer {
	if style == "" {
		style = DefaultStyle
	}
	return &Renderer{
		style: style,
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle(style),
					highlighting.WithFormatOptions(
						html.WithClasses(true), // Use CSS classes instead of inline styles
						html.WithLineNumbers(false),
					),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

// Render converts a markdown body to trusted HTML.
func (r *Renderer) Render(body string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// WriteCSS writes the stylesheet for the highlight classes emitted by Render.
func (r *Renderer) WriteCSS(w io.Writer) error {
	formatter := html.New(html.WithClasses(true))
	return formatter.WriteCSS(w, styles.Get(r.style))
}
