package tui

import (
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/swiftvietnam/swiftvn/internal/feed"
)

// renderPreview shows the opened link. title is empty when the link is not in
// the current list.
func renderPreview(link *url.URL, title string, width, height int) string {
	if link == nil {
		return lipglossCenter("Press enter to open an item", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	if title == "" {
		title = link.Host
	}
	heading := previewTitleStyle.Width(contentWidth).Render(title)
	host := previewHostStyle.Render(link.Host)
	body := previewLinkStyle.Width(contentWidth).Render(link.String())
	hint := previewHintStyle.Render("Opened in your browser · esc to close")

	content := lipgloss.JoinVertical(lipgloss.Left, heading, host, "", body, "", hint)

	lines := strings.Split(content, "\n")
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

// titleFor finds the title of link in items.
func titleFor(items []feed.NewsItem, link *url.URL) string {
	if link == nil {
		return ""
	}
	want := link.String()
	for _, it := range items {
		if it.Link != nil && it.Link.String() == want {
			return it.Title
		}
	}
	return ""
}
