package tui

import (
	"strings"

	sharedtui "github.com/mistakeknot/formshell/pkg/tui"
)

func renderConfirmOverlay(message string) string {
	lines := []string{
		sharedtui.TitleStyle.Render("⚠  Confirm"),
		"",
		sharedtui.HelpDescStyle.Render(message),
		"",
		sharedtui.HelpKeyStyle.Render("enter") + sharedtui.HelpDescStyle.Render(" confirm") +
			sharedtui.HelpDescStyle.Render(" • ") +
			sharedtui.HelpKeyStyle.Render("esc") + sharedtui.HelpDescStyle.Render(" cancel"),
	}
	return sharedtui.CardFocusedStyle.Width(50).Render(strings.Join(lines, "\n"))
}
