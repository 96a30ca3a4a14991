package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/PayTrain/NASA-Space-Explorer/internal/apod"
)

type Theme struct {
	Title     lipgloss.Style
	CountPill lipgloss.Style

	CardFrame       lipgloss.Style
	CardFrameActive lipgloss.Style
	CardNumber      lipgloss.Style
	CardTitle       lipgloss.Style
	CardDate        lipgloss.Style
	Placeholder     lipgloss.Style

	MediaImage       lipgloss.Style
	MediaVideo       lipgloss.Style
	MediaUnsupported lipgloss.Style

	ModalFrame lipgloss.Style
	ModalTitle lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	CloseMark  lipgloss.Style

	StateIdle lipgloss.Style
	StateWarn lipgloss.Style
	StateLoad lipgloss.Style

	SearchPrompt lipgloss.Style
	HelpKey      lipgloss.Style
	HelpText     lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpYellow := lipgloss.Color("#f9e2af")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpSky := lipgloss.Color("#89dceb")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")
	cpSurface2 := lipgloss.Color("#585b70")

	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		CountPill: lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface0).Padding(0, 1),

		CardFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cpSurface2).
			Padding(0, 1),
		CardFrameActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cpMauve).
			Padding(0, 1),
		CardNumber:  lipgloss.NewStyle().Foreground(cpOverlay1),
		CardTitle:   lipgloss.NewStyle().Bold(true).Foreground(cpText),
		CardDate:    lipgloss.NewStyle().Foreground(cpSubtext1),
		Placeholder: lipgloss.NewStyle().Italic(true).Foreground(cpOverlay1),

		MediaImage:       lipgloss.NewStyle().Foreground(cpGreen),
		MediaVideo:       lipgloss.NewStyle().Foreground(cpSky),
		MediaUnsupported: lipgloss.NewStyle().Foreground(cpOverlay1),

		ModalFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cpLavender).
			Padding(0, 2),
		ModalTitle: lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		MetaLabel:  lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue:  lipgloss.NewStyle().Foreground(cpSubtext1),
		CloseMark:  lipgloss.NewStyle().Foreground(cpOverlay1),

		StateIdle: lipgloss.NewStyle().Foreground(cpGreen),
		StateWarn: lipgloss.NewStyle().Foreground(cpRed),
		StateLoad: lipgloss.NewStyle().Foreground(cpPeach),

		SearchPrompt: lipgloss.NewStyle().Foreground(cpYellow),
		HelpKey:      lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		HelpText:     lipgloss.NewStyle().Foreground(cpOverlay1),
	}
}

// Frame returns the card border style for the given selection state.
func (t Theme) Frame(active bool) lipgloss.Style {
	if active {
		return t.CardFrameActive
	}
	return t.CardFrame
}

// StyleMediaLabel colors a media marker according to the item kind.
func (t Theme) StyleMediaLabel(kind apod.MediaKind, label string) string {
	if label == "" {
		return label
	}
	switch kind {
	case apod.KindImage:
		return t.MediaImage.Render(label)
	case apod.KindVideo:
		return t.MediaVideo.Render(label)
	default:
		return t.MediaUnsupported.Render(label)
	}
}
