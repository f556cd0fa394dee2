package htmlx

import (
	"net/url"
	"strings"
	"testing"
)

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("url.Parse(%q): %v", raw, err)
	}
	return u
}

func TestExtractCollectsTitleBodyAndLinks(t *testing.T) {
	body := []byte(`
		<html>
		<head><title> My Page </title></head>
		<body>
			<p>Hello World</p>
			<a href="/sub">next</a>
			<a href="https://other.example/page">other</a>
		</body>
		</html>
	`)
	base := mustParseURL(t, "https://example.com/dir/index.html")
	p, err := HTMLExtractor{}.Extract(base, body)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if p.Title != "My Page" {
		t.Fatalf("Title = %q; want %q", p.Title, "My Page")
	}
	if !strings.Contains(p.Body, "hello") || !strings.Contains(p.Body, "world") {
		t.Fatalf("Body = %q; want hello/world", p.Body)
	}
	wantLinks := map[string]bool{
		"https://example.com/sub":         true,
		"https://other.example/page": true,
	}
	if len(p.Links) != 2 {
		t.Fatalf("Links = %#v; want 2 entries", p.Links)
	}
	for _, l := range p.Links {
		if !wantLinks[l] {
			t.Fatalf("unexpected link %q", l)
		}
	}
}

func TestExtractSkipsScriptAndStyle(t *testing.T) {
	body := []byte(`<html><body>
		<script>var banana = 1;</script>
		<style>.apple { color: red; }</style>
		<p>orange</p>
	</body></html>`)
	base := mustParseURL(t, "https://example.com/")
	p, err := HTMLExtractor{}.Extract(base, body)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if strings.Contains(p.Body, "banana") || strings.Contains(p.Body, "apple") {
		t.Fatalf("Body leaked script/style text: %q", p.Body)
	}
	if !strings.Contains(p.Body, "orange") {
		t.Fatalf("Body missing visible text: %q", p.Body)
	}
}

func TestResolveHrefRejectsFragmentsAndSchemes(t *testing.T) {
	base := mustParseURL(t, "https://example.com/a/b.html")
	cases := map[string]string{
		"":                "",
		"#top":            "",
		"javascript:void": "",
		"data:text/plain": "",
		"/c.html":         "https://example.com/c.html",
		"d.html":          "https://example.com/a/d.html",
		"e.html#frag":     "https://example.com/a/e.html",
	}
	for href, want := range cases {
		got := ResolveHref(base, href)
		if got != want {
			t.Errorf("ResolveHref(%q) = %q; want %q", href, got, want)
		}
	}
}
