package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(itemCount int, width int, loading bool, opened bool) string {
	left := fmt.Sprintf(" %d items", itemCount)
	if loading {
		left += " (loading...)"
	}

	right := " enter open  r refresh  ? help  q quit "
	if opened {
		right = " esc close  r refresh  q quit "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}

func renderNotice(msg string, width int) string {
	return noticeStyle.Width(width).Render(" " + msg)
}
