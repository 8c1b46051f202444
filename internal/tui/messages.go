package tui

import (
	"github.com/swiftvietnam/swiftvn/internal/feed"
	"github.com/swiftvietnam/swiftvn/internal/state"
)

type feedLoadedMsg struct {
	token state.Token
	items []feed.NewsItem
	err   error
}

type openErrMsg struct {
	err error
}
