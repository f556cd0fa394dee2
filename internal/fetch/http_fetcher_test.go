package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetchReturnsBodyAndMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Last-Modified", "Mon, 02 Jan 2006 15:04:05 GMT")
		w.Write([]byte("<html>hi</html>"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5*time.Second, 5*time.Second)
	res, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !strings.Contains(string(res.Body), "hi") {
		t.Fatalf("body = %q", res.Body)
	}
	if res.LastModified.IsZero() {
		t.Fatalf("LastModified not parsed")
	}
	if res.ContentLength != int64(len("<html>hi</html>")) {
		t.Fatalf("ContentLength = %d", res.ContentLength)
	}
}

func TestFetchNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5*time.Second, 5*time.Second)
	if _, err := f.Fetch(context.Background(), srv.URL); err == nil {
		t.Fatalf("expected error for 404 response")
	}
}

func TestFetchFollowsRedirectsUpToLimit(t *testing.T) {
	var mux http.ServeMux
	redirects := 0
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		redirects++
		http.Redirect(w, r, "/next", http.StatusFound)
	})
	mux.HandleFunc("/next", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("landed"))
	})
	srv := httptest.NewServer(&mux)
	defer srv.Close()

	f := NewHTTPFetcher(5*time.Second, 5*time.Second)
	res, err := f.Fetch(context.Background(), srv.URL+"/start")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(res.Body) != "landed" {
		t.Fatalf("body = %q; want landed", res.Body)
	}
}

func TestStatResolvesMetadataWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Last-Modified", "Mon, 02 Jan 2006 15:04:05 GMT")
		w.Header().Set("Content-Length", "42")
		if r.Method != http.MethodHead {
			t.Errorf("method = %s; want HEAD", r.Method)
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5*time.Second, 5*time.Second)
	lastMod, size, err := f.Stat(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if lastMod.IsZero() {
		t.Fatalf("Stat did not resolve LastModified")
	}
	if size != 42 {
		t.Fatalf("size = %d; want 42", size)
	}
}
