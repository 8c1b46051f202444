package tui

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftvietnam/swiftvn/internal/feed"
	"github.com/swiftvietnam/swiftvn/internal/logging"
)

type fakeLoader struct {
	items []feed.NewsItem
	err   error
	calls int
}

func (f *fakeLoader) Load(ctx context.Context) ([]feed.NewsItem, error) {
	f.calls++
	return f.items, f.err
}

func newsItems(t *testing.T, n int) []feed.NewsItem {
	t.Helper()
	out := make([]feed.NewsItem, 0, n)
	for i := 0; i < n; i++ {
		u, err := url.Parse("https://swiftvietnam.com/posts/" + string(rune('a'+i)))
		require.NoError(t, err)
		out = append(out, feed.NewsItem{Title: "Item " + string(rune('A'+i)), Link: u})
	}
	return out
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestApp(loader feed.Loader, opener func(string) error) *App {
	return NewApp(RunOpts{Loader: loader, Opener: opener, Logger: logging.NewWithWriter(io.Discard, "error")})
}

// load starts a refresh and feeds the loader result back through Update.
func load(t *testing.T, a *App) {
	t.Helper()
	tok := a.state.Begin()
	msg := a.loadCmd(tok)()
	a.Update(msg)
}

func TestLoadPopulatesList(t *testing.T) {
	loader := &fakeLoader{items: newsItems(t, 5)}
	a := newTestApp(loader, nil)

	load(t, a)

	assert.Equal(t, 1, loader.calls)
	require.Equal(t, 5, a.state.Len())
	for i, it := range a.state.Items() {
		assert.Equal(t, loader.items[i].Title, it.Title)
	}
	assert.False(t, a.state.Loading())
	assert.Empty(t, a.notice)
}

func TestLoadFailureEmptiesList(t *testing.T) {
	loader := &fakeLoader{items: newsItems(t, 3)}
	a := newTestApp(loader, nil)
	load(t, a)
	require.Equal(t, 3, a.state.Len())

	loader.items = nil
	loader.err = errors.New("dial tcp: connection refused")
	a.cursor = 2
	load(t, a)

	assert.Equal(t, 0, a.state.Len())
	assert.Equal(t, 0, a.cursor)
	assert.NotEmpty(t, a.notice)
	assert.Error(t, a.state.Err())

	// Any key clears the notice
	a.Update(key("j"))
	assert.Empty(t, a.notice)
	assert.NoError(t, a.state.Err())
}

func TestEmptyResponseLeavesEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestApp(feed.NewRSSLoader(srv.URL), nil)
	load(t, a)

	assert.Equal(t, 0, a.state.Len())
	assert.NotEmpty(t, a.notice)
	assert.False(t, a.state.Loading())
}

func TestStaleLoadIsDropped(t *testing.T) {
	a := newTestApp(&fakeLoader{}, nil)
	older := a.state.Begin()
	newer := a.state.Begin()

	a.Update(feedLoadedMsg{token: newer, items: newsItems(t, 1)})
	a.Update(feedLoadedMsg{token: older, items: newsItems(t, 4)})

	assert.Equal(t, 1, a.state.Len())
}

func TestRefreshKeyStartsLoad(t *testing.T) {
	a := newTestApp(&fakeLoader{}, nil)
	_, cmd := a.Update(key("r"))
	assert.NotNil(t, cmd)
	assert.True(t, a.state.Loading())
}

func TestCursorMovement(t *testing.T) {
	a := newTestApp(&fakeLoader{items: newsItems(t, 3)}, nil)
	load(t, a)

	a.Update(key("k"))
	assert.Equal(t, 0, a.cursor)
	a.Update(key("j"))
	a.Update(key("j"))
	a.Update(key("j"))
	assert.Equal(t, 2, a.cursor)
	a.Update(key("k"))
	assert.Equal(t, 1, a.cursor)
}

func TestSelectOpensAndEscClears(t *testing.T) {
	var opened []string
	opener := func(u string) error {
		opened = append(opened, u)
		return nil
	}
	a := newTestApp(&fakeLoader{items: newsItems(t, 3)}, opener)
	load(t, a)

	a.Update(key("j"))
	_, cmd := a.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())

	sel, ok := a.state.Selected()
	require.True(t, ok)
	assert.Equal(t, "https://swiftvietnam.com/posts/b", sel.String())
	assert.Equal(t, []string{"https://swiftvietnam.com/posts/b"}, opened)

	a.Update(key("esc"))
	_, ok = a.state.Selected()
	assert.False(t, ok)
}

func TestSelectOnEmptyListDoesNothing(t *testing.T) {
	a := newTestApp(&fakeLoader{}, func(string) error { return nil })
	_, cmd := a.Update(key("enter"))
	assert.Nil(t, cmd)
	_, ok := a.state.Selected()
	assert.False(t, ok)
}

func TestOpenErrorKeepsSelection(t *testing.T) {
	a := newTestApp(&fakeLoader{items: newsItems(t, 1)}, func(string) error {
		return errors.New("xdg-open not found")
	})
	load(t, a)

	_, cmd := a.Update(key("o"))
	require.NotNil(t, cmd)
	a.Update(cmd())

	assert.Contains(t, a.notice, "xdg-open not found")
	_, ok := a.state.Selected()
	assert.True(t, ok)
}

func TestSelectionSurvivesReload(t *testing.T) {
	loader := &fakeLoader{items: newsItems(t, 2)}
	a := newTestApp(loader, nil)
	load(t, a)
	a.Update(key("enter"))

	loader.items = nil
	load(t, a)

	_, ok := a.state.Selected()
	assert.True(t, ok)
}

func TestHelpToggle(t *testing.T) {
	a := newTestApp(&fakeLoader{}, nil)
	a.Update(key("?"))
	assert.True(t, a.showHelp)

	// q closes help instead of quitting
	_, cmd := a.Update(key("q"))
	assert.Nil(t, cmd)
	assert.False(t, a.showHelp)
}

func TestViewRenders(t *testing.T) {
	a := newTestApp(&fakeLoader{items: newsItems(t, 2)}, nil)
	assert.Contains(t, a.View(), "Swift")

	a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	load(t, a)
	view := a.View()
	assert.Contains(t, view, "Item A")
	assert.Contains(t, view, "2 items")

	a.Update(key("enter"))
	assert.Contains(t, a.View(), "https://swiftvietnam.com/posts/a")
}
