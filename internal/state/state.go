// Package state holds the feed list and the current selection. A FeedState is
// owned by the UI goroutine and is only changed through its methods.
package state

import (
	"net/url"

	"github.com/swiftvietnam/swiftvn/internal/feed"
)

// Token identifies one load request. Tokens increase monotonically.
type Token uint64

type FeedState struct {
	items    []feed.NewsItem
	selected *url.URL
	err      error

	issued  Token
	applied Token
}

func New() *FeedState {
	return &FeedState{items: []feed.NewsItem{}}
}

// Begin issues the token for a new load.
func (s *FeedState) Begin() Token {
	s.issued++
	return s.issued
}

// Apply replaces the item list with the result of the load identified by tok.
// Results from anything but the most recently issued token are dropped and
// Apply returns false. A failed load leaves an empty list.
func (s *FeedState) Apply(tok Token, items []feed.NewsItem, err error) bool {
	if tok != s.issued {
		return false
	}
	s.applied = tok
	s.err = err
	if err != nil {
		s.items = []feed.NewsItem{}
		return true
	}
	s.items = append(make([]feed.NewsItem, 0, len(items)), items...)
	return true
}

// Loading reports whether the latest issued load has not completed yet.
func (s *FeedState) Loading() bool {
	return s.applied != s.issued
}

func (s *FeedState) Items() []feed.NewsItem {
	return append([]feed.NewsItem(nil), s.items...)
}

func (s *FeedState) Item(i int) (feed.NewsItem, bool) {
	if i < 0 || i >= len(s.items) {
		return feed.NewsItem{}, false
	}
	return s.items[i], true
}

func (s *FeedState) Len() int {
	return len(s.items)
}

// Err is the error of the last applied load, if any.
func (s *FeedState) Err() error {
	return s.err
}

// DismissErr forgets the last load error without touching the list.
func (s *FeedState) DismissErr() {
	s.err = nil
}

// Select sets the selection to link. The link does not have to belong to the
// current list.
func (s *FeedState) Select(link *url.URL) {
	if link == nil {
		s.selected = nil
		return
	}
	u := *link
	s.selected = &u
}

func (s *FeedState) Clear() {
	s.selected = nil
}

func (s *FeedState) Selected() (*url.URL, bool) {
	if s.selected == nil {
		return nil, false
	}
	u := *s.selected
	return &u, true
}
