package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Άρθρο</title></head>
<body>
	<nav>Αρχική</nav>
	<article>
		<h1>Τίτλος</h1>
		<p>Καλός καιρός σήμερα.</p>
		<p>Μεγάλη <b>επιτυχία</b> για την ομάδα.</p>
	</article>
	<footer>Copyright 2024</footer>
</body>
</html>`

var longArticleHTML = `<!DOCTYPE html>
<html>
<head><title>Ανάλυση</title></head>
<body>
	<header><nav>Αρχική Πολιτική Αθλητικά</nav></header>
	<main>
		<article>
			<h1>Μεγάλη επιτυχία</h1>
			<p>` + strings.Repeat("Η ομάδα πέτυχε μια μεγάλη επιτυχία στον αγώνα της Κυριακής. ", 8) + `</p>
			<p>` + strings.Repeat("Οι φίλαθλοι γιόρτασαν με χαρά και αγάπη μέχρι αργά το βράδυ. ", 8) + `</p>
		</article>
	</main>
	<aside><div>Διαφήμιση</div></aside>
	<footer><p>Copyright 2024</p></footer>
</body>
</html>`

func newArticleServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/article", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(articleHTML))
	})
	mux.HandleFunc("/long", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(longArticleHTML))
	})
	mux.HandleFunc("/agent", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<p>" + r.UserAgent() + "</p>"))
	})
	mux.HandleFunc("/empty", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><div>no paragraphs</div></body></html>"))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClientArticle(t *testing.T) {
	server := newArticleServer(t)
	client := NewClient()

	text, err := client.Article(context.Background(), server.URL+"/article")
	if err != nil {
		t.Fatalf("Article failed: %v", err)
	}
	expected := "Καλός καιρός σήμερα. Μεγάλη επιτυχία για την ομάδα."
	if text != expected {
		t.Errorf("Article text = %q, want %q", text, expected)
	}
}

func TestClientUserAgent(t *testing.T) {
	server := newArticleServer(t)

	tests := []struct {
		name     string
		opts     []Option
		expected string
	}{
		{"Default", nil, DefaultUserAgent},
		{"Custom", []Option{WithUserAgent("polarity-test/1.0")}, "polarity-test/1.0"},
		{"Empty keeps default", []Option{WithUserAgent("")}, DefaultUserAgent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := NewClient(tt.opts...).Article(context.Background(), server.URL+"/agent")
			if err != nil {
				t.Fatalf("Article failed: %v", err)
			}
			if text != tt.expected {
				t.Errorf("User-Agent = %q, want %q", text, tt.expected)
			}
		})
	}
}

func TestClientStatusError(t *testing.T) {
	server := newArticleServer(t)
	client := NewClient()

	_, err := client.Article(context.Background(), server.URL+"/missing")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Expected *StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, http.StatusNotFound)
	}

	if text := client.Text(context.Background(), server.URL+"/missing"); text != "" {
		t.Errorf("Text on failure = %q, want empty", text)
	}
}

func TestClientNoParagraphs(t *testing.T) {
	server := newArticleServer(t)

	text := NewClient().Text(context.Background(), server.URL+"/empty")
	if text != "" {
		t.Errorf("Text = %q, want empty", text)
	}
}

func TestClientTimeout(t *testing.T) {
	server := newArticleServer(t)
	client := NewClient(WithTimeout(50 * time.Millisecond))

	if _, err := client.Article(context.Background(), server.URL+"/slow"); err == nil {
		t.Error("Expected timeout error")
	}
}

func TestClientInvalidURL(t *testing.T) {
	client := NewClient()

	tests := []string{"://bad", "http://127.0.0.1:0/unreachable"}
	for _, rawURL := range tests {
		if text := client.Text(context.Background(), rawURL); text != "" {
			t.Errorf("Text(%q) = %q, want empty", rawURL, text)
		}
	}
}

func TestClientReadability(t *testing.T) {
	server := newArticleServer(t)
	extractor, err := NewExtractor(Readability)
	if err != nil {
		t.Fatal(err)
	}

	text, err := NewClient(WithExtractor(extractor)).Article(context.Background(), server.URL+"/long")
	if err != nil {
		t.Fatalf("Article failed: %v", err)
	}
	if !strings.Contains(text, "μεγάλη επιτυχία") {
		t.Errorf("Expected article body in %q", text)
	}
}

func TestNewExtractor(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"", false},
		{Paragraphs, false},
		{Readability, false},
		{"boilerpipe", true},
	}

	for _, tt := range tests {
		_, err := NewExtractor(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewExtractor(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestHTMLText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty", "", ""},
		{"Plain text", "Καλός καιρός", "Καλός καιρός"},
		{"Inline markup", "<b>Κακός</b> καιρός", "Κακός καιρός"},
		{"Paragraphs", "<div>skip</div><p>ένα</p><p>δύο</p>", "ένα δύο"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTMLText(tt.input); got != tt.expected {
				t.Errorf("HTMLText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
