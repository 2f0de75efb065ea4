// Package pathrewrite resolves relative image and link references against
// the directory of a local document.
//
// PDF output is printed from a temporary HTML file, so a reference such as
// "img/logo.png" would otherwise resolve against the temp directory.
package pathrewrite

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Rewrite converts relative img[src] and a[href] values under n to absolute
// file:// URLs rooted at sourceDir. Empty sourceDir leaves n unchanged.
//
// URLs, anchors, absolute paths and references escaping sourceDir are kept
// as written.
func Rewrite(n *html.Node, sourceDir string) error {
	if sourceDir == "" {
		return nil
	}

	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return err
	}

	rewriteNode(n, absSourceDir)
	return nil
}

func rewriteNode(n *html.Node, sourceDir string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			rewriteAttr(n, "src", sourceDir)
		case atom.A:
			rewriteAttr(n, "href", sourceDir)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, sourceDir)
	}
}

func rewriteAttr(n *html.Node, key, sourceDir string) {
	for i, attr := range n.Attr {
		if attr.Key != key || !IsRelative(attr.Val) {
			continue
		}

		path, fragment, _ := strings.Cut(attr.Val, "#")
		if unescaped, err := url.PathUnescape(path); err == nil {
			path = unescaped
		}

		absPath := filepath.Join(sourceDir, filepath.FromSlash(path))
		if !isUnder(absPath, sourceDir) {
			continue
		}
		n.Attr[i].Val = fileURL(absPath, fragment)
	}
}

// IsRelative reports whether ref is a relative filesystem reference.
func IsRelative(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return false
	}
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" {
		return false
	}
	return !filepath.IsAbs(ref) && !strings.HasPrefix(ref, "/")
}

// isUnder reports whether path lies inside dir.
func isUnder(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func fileURL(absPath, fragment string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(absPath), Fragment: fragment}
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path // C:/docs -> /C:/docs
	}
	return u.String()
}
