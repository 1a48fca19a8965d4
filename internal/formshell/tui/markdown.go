package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

func renderMarkdown(input string, width int, style string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}
	if width <= 0 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithWordWrap(width),
		glamour.WithStandardStyle(style),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(input)
}

func renderMarkdownLines(content string, width int, style string) []string {
	rendered, err := renderMarkdown(content, width, style)
	if err != nil {
		rendered = content
	}
	trimmed := strings.TrimRight(rendered, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}
