// Package htmlx extracts a page's title, indexable body text, and
// outbound links from its raw HTML.
package htmlx

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Page is the result of extracting a fetched document.
type Page struct {
	Title string
	Body  string
	Links []string
}

// Extractor turns a fetched body into a Page. base is the document's own
// URL, used to resolve relative hrefs to absolute ones.
type Extractor interface {
	Extract(base *url.URL, body []byte) (Page, error)
}

// HTMLExtractor is the Extractor backed by golang.org/x/net/html.
type HTMLExtractor struct{}

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// Extract walks body's DOM once, collecting the first <title> element's
// text, lowercased word tokens from every other text node, and absolute
// hrefs from every <a>. Text under <script> or <style> is skipped
// entirely.
func (HTMLExtractor) Extract(base *url.URL, body []byte) (Page, error) {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return Page{}, err
	}

	var words []string
	var links []string
	var title string
	var titleNode *html.Node
	var skipDepth int

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		isSkippable := n.Type == html.ElementNode && (strings.EqualFold(n.Data, "script") || strings.EqualFold(n.Data, "style"))
		if isSkippable {
			skipDepth++
		}

		if skipDepth == 0 {
			if n.Type == html.ElementNode && strings.EqualFold(n.Data, "title") && titleNode == nil {
				title = strings.TrimSpace(textContent(n))
				titleNode = n
			}
			if n.Type == html.TextNode && (titleNode == nil || n.Parent != titleNode) {
				for _, tok := range wordPattern.FindAllString(n.Data, -1) {
					words = append(words, strings.ToLower(tok))
				}
			}
			if n.Type == html.ElementNode && strings.EqualFold(n.Data, "a") {
				for _, a := range n.Attr {
					if strings.EqualFold(a.Key, "href") {
						if resolved := ResolveHref(base, a.Val); resolved != "" {
							links = append(links, resolved)
						}
					}
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if isSkippable {
			skipDepth--
		}
	}
	walk(root)

	return Page{
		Title: title,
		Body:  strings.Join(words, " "),
		Links: links,
	}, nil
}

// textContent concatenates all text descendant of n, for pulling the
// string inside a <title> element.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

// ResolveHref resolves href against base into an absolute URL, dropping
// any fragment and rejecting empty, self-fragment, javascript:, and
// data: hrefs.
func ResolveHref(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return ""
	}
	lower := strings.ToLower(href)
	if strings.HasPrefix(lower, "javascript:") || strings.HasPrefix(lower, "data:") {
		return ""
	}
	if base == nil {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}
