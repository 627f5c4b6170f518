package highlight

import (
	"regexp"
	"strings"
	"testing"
)

func tokenClass(t *testing.T, html, token string) string {
	t.Helper()
	re := regexp.MustCompile(`<span class="([^"]+)">` + regexp.QuoteMeta(token) + `</span>`)
	m := re.FindStringSubmatch(html)
	if m == nil {
		t.Fatalf("no styled span for %q in %s", token, html)
	}
	return m[1]
}

func TestHighlightDistinguishesTokenClasses(t *testing.T) {
	h := New(DefaultLanguage, DefaultStyle)
	out := string(h.Highlight("x = 1"))
	if out == "" {
		t.Fatal("expected non-empty markup")
	}

	ident := tokenClass(t, out, "x")
	op := tokenClass(t, out, "=")
	lit := tokenClass(t, out, "1")

	if ident == op || op == lit || ident == lit {
		t.Errorf("expected distinct classes, got ident=%q op=%q literal=%q", ident, op, lit)
	}
	for _, cls := range []string{ident, op, lit} {
		if !strings.HasPrefix(cls, ClassPrefix) {
			t.Errorf("class %q missing prefix %q", cls, ClassPrefix)
		}
	}
}

func TestHighlightEscapesMarkup(t *testing.T) {
	h := New(DefaultLanguage, DefaultStyle)
	out := string(h.Highlight(`print("<script>alert(1)</script>")`))
	if strings.Contains(out, "<script>") {
		t.Errorf("raw markup leaked into output: %s", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("expected escaped script tag, got %s", out)
	}
}

func TestHighlightToleratesMalformedCode(t *testing.T) {
	h := New(DefaultLanguage, DefaultStyle)
	inputs := []string{
		"def (:\n  )))",
		"'''unterminated",
		"\x00\xff\xfe",
		strings.Repeat("(", 500),
	}
	for _, in := range inputs {
		if out := h.Highlight(in); out == "" {
			t.Errorf("expected markup for %q", in)
		}
	}
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	h := New("no-such-language", "no-such-style")
	out := string(h.Highlight("x = 1"))
	if !strings.Contains(out, "x = 1") {
		t.Errorf("expected plain text passthrough, got %s", out)
	}
	if h.CSS() == "" {
		t.Error("expected fallback stylesheet")
	}
}

func TestCSSUsesPrefix(t *testing.T) {
	h := New(DefaultLanguage, DefaultStyle)
	if !strings.Contains(h.CSS(), "."+ClassPrefix) {
		t.Errorf("expected prefixed selectors in css")
	}
}

func TestMarkdownRender(t *testing.T) {
	md := NewMarkdown(DefaultStyle)
	out, err := md.Render("Explore **interactive** lessons\n\n```python\nx = 1\n```\n")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<strong>interactive</strong>") {
		t.Errorf("expected emphasis, got %s", html)
	}
	if !strings.Contains(html, "<span") {
		t.Errorf("expected highlighted fence, got %s", html)
	}
}
