package view

import (
	"fmt"
	"strings"

	tuitheme "github.com/PayTrain/NASA-Space-Explorer/internal/tui/theme"
)

func Toolbar(inModal, searching bool) string {
	if searching {
		return "type to filter by title | enter: keep filter | esc: cancel"
	}
	if inModal {
		return "j/k: scroll | [ ]: prev/next | o: open | y: copy URL | esc: close | q: quit"
	}
	return "arrows/hjkl: move | enter/click: details | /: filter | o: open | y: copy | r: refresh | ?: help | q: quit"
}

func Footer(total, shown int, query string, th tuitheme.Theme) string {
	parts := []string{
		th.MetaLabel.Render("items") + " " + th.MetaValue.Render(fmt.Sprintf("%d", total)),
	}
	if query != "" {
		parts = append(parts,
			th.MetaLabel.Render("filter")+" "+th.MetaValue.Render(fmt.Sprintf("%q", query)),
			th.MetaValue.Render(fmt.Sprintf("%d match(es)", shown)),
		)
	}
	return strings.Join(parts, " • ")
}

func StatusMessage(loading, hasWarning bool, status, warning string, th tuitheme.Theme) string {
	state := "idle"
	if loading {
		state = "loading"
	}
	if hasWarning {
		state = "warning"
	}
	main := "Ready"
	if status != "" {
		main = status
	} else if hasWarning {
		main = warning
	}
	stateLabel := th.StateIdle.Render("state")
	switch state {
	case "warning":
		stateLabel = th.StateWarn.Render("state")
	case "loading":
		stateLabel = th.StateLoad.Render("state")
	}
	return fmt.Sprintf("%s: %s | %s", stateLabel, state, th.MetaValue.Render(main))
}

// HelpLines lists every key binding for the help overlay.
func HelpLines(th tuitheme.Theme) []string {
	bind := func(key, text string) string {
		return fmt.Sprintf("  %s  %s", th.HelpKey.Render(fmt.Sprintf("%-11s", key)), th.HelpText.Render(text))
	}
	return []string{
		th.ModalTitle.Render("Keys"),
		"",
		bind("arrows/hjkl", "move between cards"),
		bind("enter/click", "open item details"),
		bind("esc", "close details, clear filter, or dismiss this help"),
		bind("[ / ]", "previous / next item in details"),
		bind("j / k", "scroll details"),
		bind("pgup/pgdn", "page details"),
		bind("g / G", "first / last card"),
		bind("/", "filter items by title"),
		bind("o", "open item in browser"),
		bind("y", "copy item URL"),
		bind("r", "refresh the gallery"),
		bind("?", "toggle this help"),
		bind("q / ctrl+c", "quit"),
	}
}
