package tui

import (
	"fmt"
	"strings"
	"time"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: выход"))

	return b.String()
}

// renderStatus renders the ok and error lines shown under page content.
func renderStatus(status, errMsg string) string {
	var b strings.Builder
	if status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(status))
	}
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + errMsg))
	}
	return b.String()
}

func fitText(v string, width int) string {
	if width <= 0 || len(v) <= width {
		return v
	}
	if width <= 3 {
		return v[:width]
	}
	return v[:width-3] + "..."
}

// formatRemaining renders whole seconds left, rounding up so that a fresh
// 30 second step shows 30 rather than 29.
func formatRemaining(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%2ds", secs)
}

// progressBar renders the elapsed share of a step as a fixed-width bar.
func progressBar(remaining, step time.Duration, width int) string {
	if step <= 0 || width <= 0 {
		return ""
	}
	filled := int(int64(width) * int64(remaining) / int64(step))
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func checkbox(v bool) string {
	if v {
		return "[x]"
	}
	return "[ ]"
}

func cursorMark(selected bool) string {
	if selected {
		return ">"
	}
	return " "
}
