package feed

import (
	"context"
	"net/url"
)

var bulletins = []struct {
	title string
	link  string
}{
	{"Bản tin Swift #5", "https://swiftvietnam.com/posts/2020-06-17_ban_tin_swift_vietnam_so_5/"},
	{"Bản tin Swift #4", "https://swiftvietnam.com/posts/2020-06-10_ban_tin_swift_vietnam_so_4/"},
	{"Bản tin Swift #3", "https://swiftvietnam.com/posts/2020-06-03_ban_tin_swift_vietnam_so_3/"},
	{"Bản tin Swift #2", "https://swiftvietnam.com/posts/2020-05-27_ban_tin_swift_vietnam_so_2/"},
	{"Bản tin Swift #1", "https://swiftvietnam.com/posts/2020-05-20_ban_tin_swift_vietnam_so_1/"},
}

// StaticLoader serves the built-in bulletin list without touching the network.
type StaticLoader struct{}

func (StaticLoader) Load(ctx context.Context) ([]NewsItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items := make([]NewsItem, 0, len(bulletins))
	for _, b := range bulletins {
		u, err := url.Parse(b.link)
		if err != nil {
			continue
		}
		items = append(items, NewsItem{Title: b.title, Link: u})
	}
	return items, nil
}
