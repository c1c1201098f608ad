// Package page supplies the read-only page-context snapshot that prompts are
// built against. A snapshot comes from a fetched URL, a local file, or is
// empty; the core only ever reads it as a value.
package page

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const maxPageContent = 8000

type Snapshot struct {
	URL             string    `json:"url"`
	Title           string    `json:"title"`
	Domain          string    `json:"domain"`
	SelectedText    string    `json:"selectedText"`
	PageContent     string    `json:"pageContent"`
	MetaDescription string    `json:"metaDescription"`
	Timestamp       time.Time `json:"timestamp"`
}

// Fetch downloads a page and extracts its readable content.
func Fetch(ctx context.Context, rawURL string) (Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Snapshot{}, fmt.Errorf("fetch page: status %d", resp.StatusCode)
	}

	snap, err := Parse(resp.Body)
	if err != nil {
		return Snapshot{}, err
	}

	snap.URL = rawURL
	if u, err := url.Parse(rawURL); err == nil {
		snap.Domain = u.Hostname()
	}
	return snap, nil
}

// FromFile builds a snapshot from a local text file.
func FromFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read file: %w", err)
	}

	content := string(data)
	if len(content) > maxPageContent {
		content = content[:maxPageContent]
	}
	return Snapshot{
		Title:       filepath.Base(path),
		PageContent: content,
		Timestamp:   time.Now().UTC(),
	}, nil
}

// FromReader builds a snapshot from arbitrary text, such as piped stdin.
func FromReader(title string, r io.Reader) (Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read input: %w", err)
	}

	content := string(data)
	if len(content) > maxPageContent {
		content = content[:maxPageContent]
	}
	return Snapshot{
		Title:       title,
		PageContent: content,
		Timestamp:   time.Now().UTC(),
	}, nil
}

// Parse extracts title, meta description and readable text from an HTML
// document. Text is collected per content element, fragments shorter than 10
// characters dropped, joined with newlines, capped at 8000 characters.
func Parse(r io.Reader) (Snapshot, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("parse html: %w", err)
	}

	snap := Snapshot{Timestamp: time.Now().UTC()}

	var fragments []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if snap.Title == "" {
					snap.Title = strings.TrimSpace(nodeText(n))
				}
			case "meta":
				if attr(n, "name") == "description" {
					snap.MetaDescription = attr(n, "content")
				}
			case "script", "style", "noscript":
				return
			case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "td", "th", "article", "section":
				text := strings.TrimSpace(nodeText(n))
				if len(text) > 10 {
					fragments = append(fragments, text)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	content := strings.Join(fragments, "\n")
	if len(content) > maxPageContent {
		content = content[:maxPageContent]
	}
	snap.PageContent = content
	return snap, nil
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
