package tui

import (
	"strings"

	"github.com/swiftvietnam/swiftvn/internal/feed"
)

func renderListItem(it feed.NewsItem, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(it.Title, width-4))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(it.Title, width-4))
	}

	host := ""
	if it.Link != nil {
		host = it.Link.Host
	}
	meta := "  " + itemHostStyle.Render(truncateStr(host, width-4))

	return title + "\n" + meta
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// visibleRange returns the [start, end) window of items that keeps cursor on
// screen when each item takes itemHeight lines.
func visibleRange(total, cursor, height, itemHeight int) (int, int) {
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > total {
		end = total
		start = end - visible
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

func renderList(items []feed.NewsItem, cursor int, height int, width int, loading bool) string {
	if len(items) == 0 {
		msg := "No news yet. Press r to load."
		if loading {
			msg = "Loading..."
		}
		return lipglossCenter(msg, width, height)
	}

	// Each item is 2 lines + 1 blank line
	start, end := visibleRange(len(items), cursor, height, 3)

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(items[i], i == cursor, width))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

func lipglossCenter(s string, width, height int) string {
	pad := (width - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
