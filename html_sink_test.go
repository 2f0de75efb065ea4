package mdlines

import (
	"bytes"
	"strings"
	"testing"
)

func renderBody(t *testing.T, doc string) string {
	t.Helper()

	sink := NewHTMLSink()
	Render(doc, sink)

	var buf bytes.Buffer
	if err := sink.WriteBody(&buf); err != nil {
		t.Fatalf("WriteBody() error = %v", err)
	}
	return buf.String()
}

func TestHTMLSink_Body(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"header", "## Sub", "<h2>Sub</h2>\n"},
		{"paragraph is escaped", "a < b & c", "<p>a &lt; b &amp; c</p>\n"},
		{"blank line emits nothing but separator", "", "\n"},
		{"rule", "---", "<hr/>\n"},
		{"link", "[go](http://x/a b)", "<p><a href=\"http://x/a%20b\">go</a></p>\n"},
		{"image", "![a \"cat\"](c.png)", "<p><img src=\"c.png\" alt=\"a &#34;cat&#34;\"/></p>\n"},
		{"javascript link is blanked", "[click](javascript:alert(1))", "<p><a href=\"\">click</a></p>\n"},
		{"mixed case scheme is blanked", "[click](JavaScript:void)", "<p><a href=\"\">click</a></p>\n"},
		{"vbscript link is blanked", "[v](vbscript:msgbox)", "<p><a href=\"\">v</a></p>\n"},
		{"javascript image is blanked", "![x](javascript:alert(1))", "<p><img src=\"\" alt=\"x\"/></p>\n"},
		{
			name: "consecutive items share a list",
			doc:  "* a\n* b",
			want: "<ul><li>a</li>\n<li>b</li>\n</ul>",
		},
		{
			name: "item kind change opens a new list",
			doc:  "* a\n1. b",
			want: "<ul><li>a</li>\n</ul><ol><li>b</li>\n</ol>",
		},
		{
			name: "blank line closes a list",
			doc:  "1. a\n\n1. b",
			want: "<ol><li>a</li>\n</ol>\n<ol><li>b</li>\n</ol>",
		},
		{
			name: "block closes a list",
			doc:  "* a\ntext",
			want: "<ul><li>a</li>\n</ul><p>text</p>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := renderBody(t, tt.doc); got != tt.want {
				t.Errorf("body = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHTMLSink_WriteDocument(t *testing.T) {
	t.Parallel()

	sink := NewHTMLSink()
	Render("# First\n# Second", sink)

	if got := sink.Title(); got != "First" {
		t.Errorf("Title() = %q, want %q", got, "First")
	}

	var buf bytes.Buffer
	if err := sink.WriteDocument(&buf, HTMLDocument{CSS: "body{margin:0}"}); err != nil {
		t.Fatalf("WriteDocument() error = %v", err)
	}
	out := buf.String()

	wantParts := []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		`<meta charset="utf-8"/>`,
		"<title>First</title>",
		"<style>body{margin:0}</style>",
		"<body><h1>First</h1>",
		"<h1>Second</h1>",
		"</body></html>",
	}
	for _, part := range wantParts {
		if !strings.Contains(out, part) {
			t.Errorf("document missing %q\ngot: %s", part, out)
		}
	}
}

func TestHTMLSink_WriteDocument_Overrides(t *testing.T) {
	t.Parallel()

	sink := NewHTMLSink()
	Render("# Heading", sink)

	var buf bytes.Buffer
	if err := sink.WriteDocument(&buf, HTMLDocument{Title: "Custom", Lang: "fr", Date: "2024-03-05"}); err != nil {
		t.Fatalf("WriteDocument() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `<meta name="date" content="2024-03-05"/>`) {
		t.Errorf("date meta missing:\n%s", out)
	}

	if !strings.Contains(out, "<title>Custom</title>") {
		t.Errorf("title override missing:\n%s", out)
	}
	if !strings.Contains(out, `<html lang="fr">`) {
		t.Errorf("lang override missing:\n%s", out)
	}
	if strings.Contains(out, "<style>") {
		t.Errorf("unexpected style element:\n%s", out)
	}
}

func TestHTMLSink_WriteDocument_NoDate(t *testing.T) {
	t.Parallel()

	sink := NewHTMLSink()
	Render("text", sink)

	var buf bytes.Buffer
	if err := sink.WriteDocument(&buf, HTMLDocument{}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), `name="date"`) {
		t.Errorf("unexpected date meta:\n%s", buf.String())
	}
}

func TestHTMLSink_WriteDocument_BaseDir(t *testing.T) {
	t.Parallel()

	sink := NewHTMLSink()
	Render("![logo](img/logo.png)\n[site](https://example.com)\n[notes](notes.md)", sink)

	dir := t.TempDir()
	var buf bytes.Buffer
	if err := sink.WriteDocument(&buf, HTMLDocument{BaseDir: dir}); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		`src="file://`,
		`img/logo.png"`,
		`href="https://example.com"`,
		`notes.md"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, `src="img/logo.png"`) || strings.Contains(out, `href="notes.md"`) {
		t.Errorf("relative references were not rewritten:\n%s", out)
	}
}

func TestHTMLSink_WriteDocument_Twice(t *testing.T) {
	t.Parallel()

	sink := NewHTMLSink()
	Render("text", sink)

	var first, second bytes.Buffer
	if err := sink.WriteDocument(&first, HTMLDocument{}); err != nil {
		t.Fatal(err)
	}
	if err := sink.WriteDocument(&second, HTMLDocument{}); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Errorf("second render differs:\n%s\nvs\n%s", first.String(), second.String())
	}
}
