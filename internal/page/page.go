// Package page composes the Cosmic Code landing page: hero, feature cards,
// the code editor panel and the particle canvas.
package page

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/url"

	"github.com/ziadkadry99/cosmic-code/internal/highlight"
	"github.com/ziadkadry99/cosmic-code/internal/launches"
)

// Config is the page-wide setup fixed at startup.
type Config struct {
	Title        string
	Icon         string
	Layout       string
	SidebarState string
}

// Launcher records Execute activations.
type Launcher interface {
	Record(ctx context.Context, code, language string) (launches.Launch, error)
}

// View is the per-request part of the page.
type View struct {
	Code     string
	Executed bool
	LaunchID string
	Preview  template.HTML
}

type card struct {
	Title       string
	Description template.HTML
}

// pageData holds the data passed to the HTML template.
type pageData struct {
	Title          string
	IconURL        template.URL
	Layout         string
	SidebarState   string
	HeroTitle      string
	HeroSubtitle   string
	Cards          []card
	EditorLabel    string
	InputLabel     string
	SuccessMessage string
	PreviewHeading string
	StreamPath     string
	View           View
}

// Composer renders the page.
type Composer struct {
	cfg        Config
	hl         *highlight.Highlighter
	cards      []card
	tmpl       *template.Template
	launcher   Launcher
	streamPath string
}

// Option configures a Composer.
type Option func(*Composer)

// WithLauncher records every Execute through l.
func WithLauncher(l Launcher) Option {
	return func(c *Composer) { c.launcher = l }
}

// WithStreamPath sets the WebSocket path the particle canvas connects to.
func WithStreamPath(path string) Option {
	return func(c *Composer) { c.streamPath = path }
}

// New parses the page template and pre-renders the feature cards.
func New(cfg Config, hl *highlight.Highlighter, md *highlight.Markdown, opts ...Option) (*Composer, error) {
	tmpl, err := template.ParseFS(assets, "assets/templates/page.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	c := &Composer{
		cfg:        cfg,
		hl:         hl,
		tmpl:       tmpl,
		streamPath: "/ws/particles",
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, f := range features {
		desc, err := md.Render(f.Description)
		if err != nil {
			return nil, fmt.Errorf("rendering card %q: %w", f.Title, err)
		}
		c.cards = append(c.cards, card{Title: f.Title, Description: desc})
	}

	return c, nil
}

// Compose builds the view for a submission. Non-empty code always gets a
// preview; execute shows the launch confirmation whether or not there is code.
func (c *Composer) Compose(ctx context.Context, code string, execute bool) View {
	v := View{Code: code, Executed: execute}

	if execute && c.launcher != nil {
		l, err := c.launcher.Record(ctx, code, c.hl.Language())
		if err != nil {
			log.Printf("page: recording launch: %v", err)
		} else {
			v.LaunchID = l.ID
		}
	}

	if code != "" {
		v.Preview = c.hl.Highlight(code)
	}
	return v
}

// Render writes the full page for v.
func (c *Composer) Render(w io.Writer, v View) error {
	data := pageData{
		Title:          c.cfg.Title,
		IconURL:        iconURL(c.cfg.Icon),
		Layout:         c.cfg.Layout,
		SidebarState:   c.cfg.SidebarState,
		HeroTitle:      heroTitle,
		HeroSubtitle:   heroSubtitle,
		Cards:          c.cards,
		EditorLabel:    editorLabel,
		InputLabel:     inputLabel,
		SuccessMessage: successMessage,
		PreviewHeading: previewHeading,
		StreamPath:     c.streamPath,
		View:           v,
	}

	// Render to a buffer so a template error never leaves half a page.
	var buf bytes.Buffer
	if err := c.tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// iconURL wraps an emoji in an SVG data URL usable as a favicon.
func iconURL(icon string) template.URL {
	if icon == "" {
		return ""
	}
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><text y=".9em" font-size="90">` +
		template.HTMLEscapeString(icon) + `</text></svg>`
	return template.URL("data:image/svg+xml," + url.PathEscape(svg))
}
