package mdlines

import (
	"bufio"
	"io"
	"strconv"

	"github.com/alnah/go-mdlines/internal/pathrewrite"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLDocument holds the document-level parts wrapped around the blocks.
type HTMLDocument struct {
	Title string // empty = first header, if any
	Lang  string // empty = "en"
	CSS   string // inlined in a <style> element when non-empty
	Date  string // <meta name="date"> when non-empty

	// BaseDir, when set, rewrites relative img and a references to
	// absolute file:// URLs.
	BaseDir string
}

// HTMLSink builds an HTML tree from blocks. Consecutive list items of the
// same kind share one <ul> or <ol>; any other block closes the list.
type HTMLSink struct {
	body  *html.Node
	list  *html.Node
	title string
}

// Compile-time interface check.
var _ Sink = (*HTMLSink)(nil)

// NewHTMLSink creates an empty HTMLSink.
func NewHTMLSink() *HTMLSink {
	return &HTMLSink{body: element(atom.Body)}
}

// Title returns the text of the first header seen.
func (s *HTMLSink) Title() string {
	return s.title
}

// Header appends an <h1>-<h6> element. The first header becomes the title.
func (s *HTMLSink) Header(text string, level int) {
	level = min(max(level, 1), 6)
	if s.title == "" {
		s.title = text
	}
	s.appendBlock(withText(element(atom.Lookup([]byte("h"+strconv.Itoa(level)))), text))
}

// UnorderedItem appends an <li> to the open <ul>, starting one if needed.
func (s *HTMLSink) UnorderedItem(text string) {
	s.appendItem(atom.Ul, text)
}

// OrderedItem appends an <li> to the open <ol>, starting one if needed.
func (s *HTMLSink) OrderedItem(text string) {
	s.appendItem(atom.Ol, text)
}

// Link appends a paragraph holding an anchor.
func (s *HTMLSink) Link(label, url string) {
	a := withText(element(atom.A, attr("href", safeURL(url))), label)
	p := element(atom.P)
	p.AppendChild(a)
	s.appendBlock(p)
}

// Image appends a paragraph holding an <img>.
func (s *HTMLSink) Image(alt, url string) {
	p := element(atom.P)
	p.AppendChild(element(atom.Img, attr("src", safeURL(url)), attr("alt", alt)))
	s.appendBlock(p)
}

// HorizontalRule appends an <hr>.
func (s *HTMLSink) HorizontalRule() {
	s.appendBlock(element(atom.Hr))
}

// Paragraph renders non-empty text as <p>. An empty line only ends an
// open list.
func (s *HTMLSink) Paragraph(text string) {
	if text == "" {
		s.list = nil
		return
	}
	s.appendBlock(withText(element(atom.P), text))
}

// Separator appends a newline inside the open list or the body.
func (s *HTMLSink) Separator() {
	parent := s.body
	if s.list != nil {
		parent = s.list
	}
	parent.AppendChild(&html.Node{Type: html.TextNode, Data: "\n"})
}

func (s *HTMLSink) appendBlock(n *html.Node) {
	s.list = nil
	s.body.AppendChild(n)
}

func (s *HTMLSink) appendItem(kind atom.Atom, text string) {
	if s.list == nil || s.list.DataAtom != kind {
		s.list = element(kind)
		s.body.AppendChild(s.list)
	}
	s.list.AppendChild(withText(element(atom.Li), text))
}

// WriteBody renders the collected blocks without the document wrapper.
func (s *HTMLSink) WriteBody(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for c := s.body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(bw, c); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteDocument renders a complete HTML5 document around the blocks.
func (s *HTMLSink) WriteDocument(w io.Writer, doc HTMLDocument) error {
	if s.body.Parent != nil {
		s.body.Parent.RemoveChild(s.body)
	}

	lang := doc.Lang
	if lang == "" {
		lang = "en"
	}
	title := doc.Title
	if title == "" {
		title = s.title
	}

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	head.AppendChild(element(atom.Meta,
		attr("name", "viewport"),
		attr("content", "width=device-width, initial-scale=1")))
	head.AppendChild(withText(element(atom.Title), title))
	if doc.Date != "" {
		head.AppendChild(element(atom.Meta, attr("name", "date"), attr("content", doc.Date)))
	}
	if doc.CSS != "" {
		head.AppendChild(withText(element(atom.Style), doc.CSS))
	}

	if err := pathrewrite.Rewrite(s.body, doc.BaseDir); err != nil {
		return err
	}

	root := element(atom.Html, attr("lang", lang))
	root.AppendChild(head)
	root.AppendChild(s.body)

	document := &html.Node{Type: html.DocumentNode}
	document.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	document.AppendChild(root)

	bw := bufio.NewWriter(w)
	if err := html.Render(bw, document); err != nil {
		return err
	}
	return bw.Flush()
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

// escapeURL percent-encodes characters that are not valid in a URL while
// keeping existing escapes.
func escapeURL(url string) string {
	return string(util.URLEscape([]byte(url), false))
}

// safeURL escapes url and blanks script-capable schemes (javascript:,
// vbscript:, file: and non-image data:), the way goldmark does without
// WithUnsafe.
func safeURL(url string) string {
	if gmhtml.IsDangerousURL([]byte(url)) {
		return ""
	}
	return escapeURL(url)
}
