package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"
)

// DefaultURL is the Swift Việt Nam feed.
const DefaultURL = "https://swiftvietnam.com/index.xml"

// ErrEmptyURL is returned by a zero-value RSSLoader.
var ErrEmptyURL = errors.New("feed url is empty")

// NewsItem is one parsed feed entry.
type NewsItem struct {
	Title string
	Link  *url.URL
}

func (n NewsItem) Equal(o NewsItem) bool {
	if n.Title != o.Title {
		return false
	}
	if n.Link == nil || o.Link == nil {
		return n.Link == o.Link
	}
	return n.Link.String() == o.Link.String()
}

type Loader interface {
	Load(ctx context.Context) ([]NewsItem, error)
}

type RSSLoader struct {
	url    string
	parser *gofeed.Parser
}

func NewRSSLoader(feedURL string) *RSSLoader {
	if feedURL == "" {
		feedURL = DefaultURL
	}
	return &RSSLoader{url: feedURL, parser: gofeed.NewParser()}
}

func (l *RSSLoader) URL() string {
	return l.url
}

func (l *RSSLoader) Load(ctx context.Context) ([]NewsItem, error) {
	if l.url == "" {
		return nil, ErrEmptyURL
	}
	doc, err := l.parser.ParseURLWithContext(l.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching feed %s: %w", l.url, err)
	}
	return Items(doc), nil
}

// Parse reads a feed document from r.
func Parse(r io.Reader) ([]NewsItem, error) {
	doc, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}
	return Items(doc), nil
}

// Items converts parsed entries in document order. Entries with a blank title or
// with a link that is not an absolute URL are dropped. Titles are kept as parsed.
func Items(doc *gofeed.Feed) []NewsItem {
	if doc == nil {
		return []NewsItem{}
	}
	items := make([]NewsItem, 0, len(doc.Items))
	for _, entry := range doc.Items {
		if entry == nil {
			continue
		}
		if strings.TrimSpace(entry.Title) == "" {
			continue
		}
		link, ok := parseLink(entry.Link)
		if !ok {
			continue
		}
		items = append(items, NewsItem{Title: entry.Title, Link: link})
	}
	return items
}

func parseLink(raw string) (*url.URL, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, false
	}
	return u, true
}
