package highlight

import (
	"bytes"
	"html"
	"html/template"
	"log"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Defaults used by the code editor.
const (
	DefaultLanguage = "python"
	DefaultStyle    = "monokai"
	ClassPrefix     = "hl-"
)

// Highlighter turns source text into class-annotated HTML for one language
// and one theme.
type Highlighter struct {
	language  string
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter *chromahtml.Formatter
	css       string
}

// New builds a Highlighter. Unknown languages fall back to plain text and
// unknown styles to chroma's fallback theme.
func New(language, style string) *Highlighter {
	lexer := lexers.Get(language)
	if lexer == nil {
		log.Printf("highlight: no lexer for %q, using plain text", language)
		lexer = lexers.Fallback
	}

	h := &Highlighter{
		language: language,
		lexer:    chroma.Coalesce(lexer),
		style:    styles.Get(style),
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.ClassPrefix(ClassPrefix),
			chromahtml.TabWidth(4),
		),
	}

	var css bytes.Buffer
	if err := h.formatter.WriteCSS(&css, h.style); err != nil {
		log.Printf("highlight: writing css for %q: %v", style, err)
	}
	h.css = css.String()
	return h
}

// Language returns the configured language name.
func (h *Highlighter) Language() string { return h.language }

// CSS returns the stylesheet that colours the classes Highlight emits.
func (h *Highlighter) CSS() string { return h.css }

// Highlight renders code as an HTML fragment. Malformed code is still
// tokenised; if the lexer or formatter fails, the code is returned escaped
// inside a plain <pre>.
func (h *Highlighter) Highlight(code string) template.HTML {
	it, err := h.lexer.Tokenise(nil, code)
	if err != nil {
		log.Printf("highlight: tokenise: %v", err)
		return plain(code)
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, it); err != nil {
		log.Printf("highlight: format: %v", err)
		return plain(code)
	}
	return template.HTML(buf.String())
}

func plain(code string) template.HTML {
	return template.HTML(`<pre class="` + ClassPrefix + `chroma">` + html.EscapeString(code) + `</pre>`)
}
