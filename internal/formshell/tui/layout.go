package tui

import (
	"regexp"
	"strings"
	"unicode/utf8"

	sharedtui "github.com/mistakeknot/formshell/pkg/tui"
)

const (
	layoutBreakpointSingle  = 50
	layoutBreakpointStacked = 80
)

const (
	LayoutModeSingle  = "single"
	LayoutModeStacked = "stacked"
	LayoutModeDual    = "dual"
)

func layoutMode(width int) string {
	switch {
	case width < layoutBreakpointSingle:
		return LayoutModeSingle
	case width < layoutBreakpointStacked:
		return LayoutModeStacked
	default:
		return LayoutModeDual
	}
}

func renderFrame(header, body, footer string) string {
	return strings.Join([]string{header, body, footer}, "\n")
}

// renderDualColumnLayout puts the steps rail on the left and the question
// panel on the right.
func renderDualColumnLayout(leftTitle, leftContent, rightTitle, rightContent string, width, height int) string {
	if height <= 0 {
		return ""
	}
	leftWidth := int(float64(width) * 0.3)
	rightWidth := width - leftWidth - 3
	if rightWidth < 1 {
		rightWidth = 1
	}
	contentHeight := max(1, height-2)

	left := renderPanelTitle(leftTitle, leftWidth) + "\n" + ensureExactHeight(leftContent, contentHeight)
	right := renderPanelTitle(rightTitle, rightWidth) + "\n" + ensureExactHeight(rightContent, contentHeight)
	left = ensureExactHeight(stylePanel(left, leftWidth, height), height)
	right = ensureExactHeight(stylePanel(right, rightWidth, height), height)
	return joinHorizontal(left, right, height)
}

func renderStackedLayout(topTitle, topContent, bottomTitle, bottomContent string, width, height int) string {
	if height <= 0 {
		return ""
	}
	topHeight := (height * 40) / 100
	bottomHeight := height - topHeight - 1
	if topHeight < 3 {
		topHeight = 3
	}
	if bottomHeight < 3 {
		bottomHeight = 3
	}
	top := renderPanelTitle(topTitle, width) + "\n" + ensureExactHeight(topContent, topHeight-2)
	bottom := renderPanelTitle(bottomTitle, width) + "\n" + ensureExactHeight(bottomContent, bottomHeight-2)
	return stylePanel(top, width, topHeight) + "\n" + stylePanel(bottom, width, bottomHeight)
}

func renderSingleColumnLayout(title, content string, width, height int) string {
	if height <= 0 {
		return ""
	}
	panel := renderPanelTitle(title, width) + "\n" + ensureExactHeight(content, max(1, height-2))
	return stylePanel(panel, width, height)
}

func joinHorizontal(left, right string, height int) string {
	if height <= 0 {
		return ""
	}
	leftLines := strings.Split(left, "\n")
	rightLines := strings.Split(right, "\n")
	for len(leftLines) < height {
		leftLines = append(leftLines, "")
	}
	for len(rightLines) < height {
		rightLines = append(rightLines, "")
	}
	var b strings.Builder
	for i := 0; i < height; i++ {
		b.WriteString(leftLines[i])
		b.WriteString(" │ ")
		b.WriteString(rightLines[i])
		if i < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func stylePanel(content string, width, height int) string {
	style := sharedtui.PanelStyle
	if width > 0 {
		style = style.Width(width)
	}
	if height > 0 {
		style = style.Height(height)
	}
	return style.Render(content)
}

func ensureExactHeight(content string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func padBodyToHeight(body string, height int) string {
	if height <= 0 {
		return body
	}
	lines := []string{""}
	if strings.TrimSpace(body) != "" {
		lines = strings.Split(body, "\n")
	}
	if len(lines) >= height {
		return body
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func visibleWidth(s string) int {
	plain := ansiRegex.ReplaceAllString(s, "")
	return utf8.RuneCountInString(plain)
}

func padRight(s string, width int) string {
	if visibleWidth(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleWidth(s))
}
